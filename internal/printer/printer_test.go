package printer

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.Successf("imported %d", 3)
	p.Infof("skipped")
	p.Errorf("bad %s", "thing")
	p.Printf("  plain")

	assert.Equal(t, "✓ imported 3\n• skipped\n✗ bad thing\n  plain\n", ansi.Strip(buf.String()))
}

func TestCtx(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	ctx := NewContext(context.Background(), p)
	assert.Same(t, p, Ctx(ctx))

	assert.NotNil(t, Ctx(context.Background()))
}
