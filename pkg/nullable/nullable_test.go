package nullable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestString(t *testing.T) {
	require.Nil(t, String(nil))
	require.Nil(t, String(ptr("")))
	require.Equal(t, "x", *String(ptr("x")))
}

func TestEqual(t *testing.T) {
	require.True(t, Equal(nil, nil))
	require.True(t, Equal(ptr("a"), ptr("a")))
	require.False(t, Equal(ptr("a"), nil))
	require.False(t, Equal(nil, ptr("a")))
	require.False(t, Equal(ptr("a"), ptr("b")))
}
