package rlcore

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUint64MarshalsAsQuotedDecimal(t *testing.T) {
	u := Uint64(18446744073709551615) // max uint64, would lose precision as a float64
	b, err := json.Marshal(u)
	require.NoError(t, err)
	assert.Equal(t, `"18446744073709551615"`, string(b))
}

func TestUint64UnmarshalsFromString(t *testing.T) {
	var u Uint64
	require.NoError(t, json.Unmarshal([]byte(`"42"`), &u))
	assert.Equal(t, Uint64(42), u)
}

func TestUint64UnmarshalsFromBareNumber(t *testing.T) {
	var u Uint64
	require.NoError(t, json.Unmarshal([]byte(`42`), &u))
	assert.Equal(t, Uint64(42), u)
}

func TestUint64RoundTrip(t *testing.T) {
	want := Uint64(123456789012345)
	b, err := json.Marshal(want)
	require.NoError(t, err)
	var got Uint64
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, want, got)
}
