package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestContextHook_Run(t *testing.T) {
	tests := []struct {
		name      string
		ctx       context.Context
		wantKeys  map[string]string
		wantEmpty []string
	}{
		{
			name: "request and source",
			ctx:  WithSource(WithRequestID(context.Background(), "r-1"), "http"),
			wantKeys: map[string]string{
				"request_id": "r-1",
				"source":     "http",
			},
		},
		{
			name:      "request only",
			ctx:       WithRequestID(context.Background(), "r-2"),
			wantKeys:  map[string]string{"request_id": "r-2"},
			wantEmpty: []string{"source"},
		},
		{
			name:      "background context",
			ctx:       context.Background(),
			wantEmpty: []string{"request_id", "source"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := zerolog.New(&buf).Hook(ContextHook{})

			logger.Info().Ctx(tt.ctx).Msg("test")

			entry := decode(t, &buf)
			for k, v := range tt.wantKeys {
				assert.Equal(t, v, entry[k], k)
			}
			for _, k := range tt.wantEmpty {
				assert.NotContains(t, entry, k)
			}
		})
	}
}
