package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseContentLengthValidCases(t *testing.T) {
	t.Run("SingleNum", func(t *testing.T) {
		num, err := parseContentLength("1")
		require.NoError(t, err)
		require.Equal(t, 1, num)
	})

	t.Run("TenNums", func(t *testing.T) {
		num, err := parseContentLength("1234567890")
		require.NoError(t, err)
		require.Equal(t, 1234567890, num)
	})

	t.Run("LeadingZero", func(t *testing.T) {
		num, err := parseContentLength("0042")
		require.NoError(t, err)
		require.Equal(t, 42, num)
	})

	t.Run("Zero", func(t *testing.T) {
		num, err := parseContentLength("0")
		require.NoError(t, err)
		require.Zero(t, num)
	})

	t.Run("Plus", func(t *testing.T) {
		num, err := parseContentLength("+7")
		require.NoError(t, err)
		require.Equal(t, 7, num)
	})
}

func TestParseContentLengthInvalidCases(t *testing.T) {
	for _, raw := range []string{
		"", "+", "-5", "123g456", "hello, world!", " 5", "5 ", "1_000", "0x10",
		"9223372036854775808", "99999999999999999999",
	} {
		num, err := parseContentLength(raw)
		require.Zero(t, num, raw)
		require.Equal(t, ErrInvalidHeader, err, raw)
	}
}
