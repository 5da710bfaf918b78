package proto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromString(t *testing.T) {
	t.Run("known", func(t *testing.T) {
		require.Equal(t, HTTP10, FromString("HTTP/1.0"))
		require.Equal(t, HTTP11, FromString("HTTP/1.1"))
		require.Equal(t, HTTP2, FromString("HTTP/2"))
		require.Equal(t, HTTP2, FromString("HTTP/2.0"))
	})

	t.Run("unknown", func(t *testing.T) {
		for _, token := range []string{"", "HTTP/1.2", "HTTP/x.y", "HTTPS/1.1", "HTTP/1.1 ", "SPDY/3"} {
			require.Equal(t, Unknown, FromString(token), token)
		}
	})

	t.Run("string", func(t *testing.T) {
		require.Equal(t, "HTTP/1.1", HTTP11.String())
		require.Equal(t, "HTTP/1.0", HTTP10.String())
		require.Empty(t, Unknown.String())
		require.Empty(t, HTTP1.String())
	})
}
