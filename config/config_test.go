package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	s := Default()
	assert.Equal(t, ForceRealVdcOnEmit, s.VDCMode)
	assert.Equal(t, uint16(80), s.WrapColumn)
	assert.True(t, s.EmitUnknownAsComment)
}

func TestLoadSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cgm.yaml")

	want := Settings{
		VDCMode:              PreserveVdcType,
		WrapColumn:           100,
		EmitUnknownAsComment: false,
	}
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadAppliesDefaultsForMissingFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("wrap_column: 120\n"), 0o644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint16(120), got.WrapColumn)
	assert.Equal(t, ForceRealVdcOnEmit, got.VDCMode)
	assert.True(t, got.EmitUnknownAsComment)
}
