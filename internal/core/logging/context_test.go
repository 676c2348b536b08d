package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextValues(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetRequestID(ctx))
	assert.Empty(t, GetSource(ctx))

	ctx = WithRequestID(ctx, "req-1")
	ctx = WithSource(ctx, "sqlite")

	assert.Equal(t, "req-1", GetRequestID(ctx))
	assert.Equal(t, "sqlite", GetSource(ctx))
}
