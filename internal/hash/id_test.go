package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestID_Deterministic(t *testing.T) {
	require.Equal(t, ID("Option<bool>"), ID("Option<bool>"))
	require.Equal(t, ID(""), ID(""))
}

func TestID_DistinguishesNames(t *testing.T) {
	names := []string{
		"",
		"bool",
		"u8", "u16", "u32", "u64", "u128",
		"i8", "i16", "i32", "i64", "i128",
		"compact",
		"Option<bool>",
		"Vec<u8>",
		"my.module/Record",
	}

	seen := make(map[uint64]string, len(names))
	for _, name := range names {
		id := ID(name)
		prev, dup := seen[id]
		require.False(t, dup, "names %q and %q collide", prev, name)
		seen[id] = name
	}
}

func TestID_KnownVector(t *testing.T) {
	// Published xxHash64 test vector with seed 0.
	require.Equal(t, uint64(0xef46db3751d8e999), ID(""))
}
