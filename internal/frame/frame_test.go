package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func header(class, id, paramLen int) []byte {
	word := uint16(class&0xf)<<12 | uint16(id&0x7f)<<5 | uint16(paramLen&0x1f)
	return []byte{byte(word >> 8), byte(word)}
}

func shortFormCommand(class, id int, args []byte) []byte {
	buf := append([]byte{}, header(class, id, len(args))...)
	buf = append(buf, args...)
	if len(args)%2 != 0 {
		buf = append(buf, 0)
	}
	return buf
}

func TestNextShortForm(t *testing.T) {
	buf := shortFormCommand(1, 1, []byte{0x00, 0x04})
	f := NewFramer(buf)
	cmd, err := f.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, cmd.Class)
	assert.Equal(t, 1, cmd.ElementID)
	assert.Equal(t, []byte{0x00, 0x04}, cmd.Args)
	assert.True(t, f.Done())
}

func TestNextOddLengthPadded(t *testing.T) {
	buf := shortFormCommand(1, 1, []byte{0x01, 0x02, 0x03})
	f := NewFramer(buf)
	cmd, err := f.Next()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, cmd.Args)
	assert.True(t, f.Done())
}

func TestNextLongFormSinglePartition(t *testing.T) {
	args := make([]byte, 100)
	for i := range args {
		args[i] = byte(i)
	}
	buf := append([]byte{}, header(4, 1, 31)...)
	lenWord := uint16(len(args)) // continuation bit clear
	buf = append(buf, byte(lenWord>>8), byte(lenWord))
	buf = append(buf, args...)

	f := NewFramer(buf)
	cmd, err := f.Next()
	require.NoError(t, err)
	assert.Equal(t, args, cmd.Args)
}

func TestNextLongFormContinuation(t *testing.T) {
	part1 := make([]byte, 20000)
	for i := range part1 {
		part1[i] = byte(i)
	}
	part2 := make([]byte, 15000)
	for i := range part2 {
		part2[i] = byte(i)
	}

	buf := append([]byte{}, header(4, 1, 31)...)
	w1 := uint16(0x8000) | uint16(len(part1))
	buf = append(buf, byte(w1>>8), byte(w1))
	buf = append(buf, part1...)
	w2 := uint16(len(part2))
	buf = append(buf, byte(w2>>8), byte(w2))
	buf = append(buf, part2...)

	f := NewFramer(buf)
	cmd, err := f.Next()
	require.NoError(t, err)
	assert.Len(t, cmd.Args, len(part1)+len(part2))
	assert.Equal(t, part1, cmd.Args[:len(part1)])
}

func TestNextCorruptHeaderTruncated(t *testing.T) {
	f := NewFramer([]byte{0x00})
	_, err := f.Next()
	require.ErrorIs(t, err, ErrCorruptHeader)
}

func TestIsEndMetafile(t *testing.T) {
	assert.True(t, IsEndMetafile(Command{Class: 0, ElementID: 2}))
	assert.False(t, IsEndMetafile(Command{Class: 0, ElementID: 1}))
}

// TestFramerPreservesLength checks spec §8 property 1: summed framed
// bytes account for the whole input, modulo trailing pad.
func TestFramerPreservesLength(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		class := rapid.IntRange(0, 9).Draw(t, "class")
		id := rapid.IntRange(0, 127).Draw(t, "id")
		argLen := rapid.IntRange(0, 30).Draw(t, "argLen")
		args := rapid.SliceOfN(rapid.Byte(), argLen, argLen).Draw(t, "args")

		buf := shortFormCommand(class, id, args)
		f := NewFramer(buf)
		cmd, err := f.Next()
		require.NoError(t, err)
		assert.Equal(t, class, cmd.Class)
		assert.Equal(t, id, cmd.ElementID)
		assert.Equal(t, args, cmd.Args)
		assert.True(t, f.Done())
	})
}
