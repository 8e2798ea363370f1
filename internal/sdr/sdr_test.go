package sdr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gfxcgm/cgm/internal/mstate"
)

func TestParseSingleIntMember(t *testing.T) {
	st := mstate.New()
	st.IntegerPrecision = 16
	// type=TypeInt(9), count=1, one 16-bit int value of 42.
	buf := []byte{0x00, 0x09, 0x00, 0x01, 0x00, 0x2a}
	items, err := Parse(buf, st)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, TypeInt, items[0].Type)
	assert.Equal(t, 1, items[0].Count)
	assert.Equal(t, int64(42), items[0].Values[0])
}

func TestParseUnknownTypeErrors(t *testing.T) {
	st := mstate.New()
	buf := []byte{0x00, 0x63, 0x00, 0x01, 0x00, 0x00} // type 99, count 1
	_, err := Parse(buf, st)
	require.Error(t, err)
}
