package response

import (
	"testing"

	"github.com/indigo-web/minihttp/config"
	"github.com/indigo-web/minihttp/http/status"
	"github.com/stretchr/testify/require"
)

func TestFields(t *testing.T) {
	cfg := config.Default().Response

	t.Run("defaults", func(t *testing.T) {
		fields := NewFields(cfg)
		require.Equal(t, "HTTP/1.1", fields.Protocol)
		require.Equal(t, status.OK, fields.Code)
		require.Equal(t, status.Status("OK"), fields.Status)
		require.Empty(t, fields.Headers)
		require.Empty(t, fields.Body)
		require.Equal(t, cfg.BodyPrealloc, cap(fields.Body))
	})

	t.Run("reset", func(t *testing.T) {
		fields := NewFields(cfg)
		fields.Code = status.NotFound
		fields.Status = "Not Found"
		fields.Protocol = "HTTP/1.0"
		fields.Headers.Set("Hello", "world")
		fields.Body = append(fields.Body, "body"...)

		fields.Reset(cfg)
		require.Equal(t, NewFields(cfg).Protocol, fields.Protocol)
		require.Equal(t, status.OK, fields.Code)
		require.Equal(t, status.Status("OK"), fields.Status)
		require.Empty(t, fields.Headers)
		require.Empty(t, fields.Body)
	})
}
