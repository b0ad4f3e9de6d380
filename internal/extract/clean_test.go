package extract_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/devHamzaIrshad/study-buddy-agent/internal/extract"
)

func TestClean(t *testing.T) {
	t.Parallel()

	require.Equal(t, "", extract.Clean(""))
	require.Equal(t, "a b", extract.Clean("a \t  b"))
	require.Equal(t, "a\n\nb", extract.Clean("a\n\n\n\n\nb"))
	require.Equal(t, "trimmed", extract.Clean("  trimmed \n"))
}

func TestText(t *testing.T) {
	t.Parallel()

	t.Run("CleansDecodedText", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, "hello world", extract.Text([]byte("  hello   world \n")))
	})

	t.Run("DropsInvalidUTF8", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, "ab", extract.Text([]byte{'a', 0xff, 'b'}))
	})
}
