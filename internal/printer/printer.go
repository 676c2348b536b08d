// Package printer writes human facing command output with status prefixes.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/hay-kot/reviewdeck/internal/core/styles"
)

type ctxKey struct{}

// Printer writes formatted lines to an output writer.
type Printer struct {
	w io.Writer
}

// New creates a printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// NewContext returns a copy of ctx carrying p.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the printer stored in ctx, or one writing to stderr.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stderr)
}

func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *Printer) Successf(format string, args ...any) {
	p.prefixed(styles.SuccessStyle.Render("✓"), format, args...)
}

func (p *Printer) Infof(format string, args ...any) {
	p.prefixed(styles.InfoStyle.Render("•"), format, args...)
}

func (p *Printer) Errorf(format string, args ...any) {
	p.prefixed(styles.ErrorStyle.Render("✗"), format, args...)
}

func (p *Printer) prefixed(prefix, format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}
