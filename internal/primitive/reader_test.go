package primitive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gfxcgm/cgm/internal/mstate"
)

func TestReadIntBoundaries(t *testing.T) {
	cases := []struct {
		prec int
		buf  []byte
		want int64
	}{
		{8, []byte{0x80}, -128},
		{8, []byte{0x7f}, 127},
		{16, []byte{0x00, 0x10}, 16},
		{32, []byte{0x80, 0x00, 0x00, 0x00}, -2147483648},
		{32, []byte{0x7f, 0xff, 0xff, 0xff}, 2147483647},
	}
	for _, c := range cases {
		st := mstate.New()
		st.IntegerPrecision = c.prec
		r := NewReader(c.buf, st)
		got, err := r.ReadInt()
		require.NoError(t, err)
		assert.Equal(t, c.want, got)
	}
}

func TestReadIntTruncated(t *testing.T) {
	st := mstate.New()
	r := NewReader([]byte{0x00}, st)
	_, err := r.ReadInt()
	require.ErrorIs(t, err, ErrTruncated)
}

func TestReadRealFixed32(t *testing.T) {
	st := mstate.New() // Fixed32 is the default.
	r := NewReader([]byte{0x00, 0x10, 0x80, 0x00}, st)
	got, err := r.ReadReal()
	require.NoError(t, err)
	assert.InDelta(t, 16.5, got, 1e-9)
}

func TestReadRealFloating32(t *testing.T) {
	st := mstate.New()
	st.RealPrecision = mstate.Floating32
	// 1.5 in IEEE-754 single precision.
	r := NewReader([]byte{0x3f, 0xc0, 0x00, 0x00}, st)
	got, err := r.ReadReal()
	require.NoError(t, err)
	assert.InDelta(t, 1.5, got, 1e-9)
}

func TestReadPointIntegerVDC(t *testing.T) {
	st := mstate.New()
	st.VDCIntegerPrecision = 16
	r := NewReader([]byte{0x00, 0x10, 0x00, 0x20}, st)
	p, err := r.ReadPoint()
	require.NoError(t, err)
	assert.Equal(t, int64(16), p.X.Int)
	assert.Equal(t, int64(32), p.Y.Int)
}

func TestReadStringShortForm(t *testing.T) {
	st := mstate.New()
	buf := append([]byte{5}, []byte("hello")...)
	r := NewReader(buf, st)
	got, err := r.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))
}

func TestReadStringLongFormContinuation(t *testing.T) {
	st := mstate.New()
	first := make([]byte, 300)
	for i := range first {
		first[i] = 'A'
	}
	second := []byte("tail")

	var buf []byte
	buf = append(buf, 255)
	buf = append(buf, byte(0x80|(len(first)>>8)), byte(len(first)&0xff))
	buf = append(buf, first...)
	buf = append(buf, 255)
	buf = append(buf, byte(len(second)>>8), byte(len(second)&0xff))
	buf = append(buf, second...)

	r := NewReader(buf, st)
	got, err := r.ReadString()
	require.NoError(t, err)
	assert.Equal(t, len(first)+len(second), len(got))
	assert.Equal(t, "tail", string(got[len(first):]))
}

func TestReadColourIndexed(t *testing.T) {
	st := mstate.New() // Indexed by default, 8-bit index.
	r := NewReader([]byte{0x07}, st)
	c, err := r.ReadColour()
	require.NoError(t, err)
	assert.True(t, c.Indexed)
	assert.Equal(t, uint64(7), c.Index)
}

func TestReadColourDirectRGB(t *testing.T) {
	st := mstate.New()
	st.ColourSelectionMode = mstate.ColourDirect
	r := NewReader([]byte{10, 20, 30}, st)
	c, err := r.ReadColour()
	require.NoError(t, err)
	assert.False(t, c.Indexed)
	assert.Equal(t, []uint64{10, 20, 30}, c.Components)
}

func TestReadColourDirectCMYK(t *testing.T) {
	st := mstate.New()
	st.ColourSelectionMode = mstate.ColourDirect
	st.ColourModel = mstate.ColourCMYK
	r := NewReader([]byte{1, 2, 3, 4}, st)
	c, err := r.ReadColour()
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2, 3, 4}, c.Components)
}
