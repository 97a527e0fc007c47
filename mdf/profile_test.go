package mdf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProfileEncoding(t *testing.T) {
	p, err := NewProfile("2m", "", 150, 170, 144, 164)
	require.NoError(t, err)

	assert.Equal(t, []byte{0xDC, 0x05, 0xA4, 0x06}, p.Needle)
	assert.Equal(t, []byte{0xA0, 0x05, 0x68, 0x06}, p.Replacement)
	assert.Equal(t, 3, p.Limit)
}

func TestNewProfileInvalid(t *testing.T) {
	_, err := NewProfile("x", "", 170, 150, 144, 164)
	assert.ErrorIs(t, err, ErrorBadProfile)

	_, err = NewProfile("x", "", 150, 170, 144, 0)
	assert.ErrorIs(t, err, ErrorBadProfile)

	_, err = NewProfile("x", "", 150, 170, 144, 7000)
	assert.ErrorIs(t, err, ErrorBadProfile)
}

func TestBuiltinProfiles(t *testing.T) {
	profiles := BuiltinProfiles()

	p, ok := FindProfile(profiles, "2m")
	require.True(t, ok)
	assert.Equal(t, []byte{0xA0, 0x05, 0x68, 0x06}, p.Replacement)

	p, ok = FindProfile(profiles, "2m-only")
	require.True(t, ok)
	assert.Equal(t, []byte{0xDC, 0x05, 0xA4, 0x06}, p.Needle)
	assert.Equal(t, []byte{0xA0, 0x05, 0xC8, 0x05}, p.Replacement)

	_, ok = FindProfile(profiles, "70cm")
	assert.False(t, ok)
}

func TestLoadProfiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[profile]]
name = "2m-narrow"
description = "Lower band range to 144-154 MHz"
from_low = 150.0
from_high = 170.0
to_low = 144.0
to_high = 154.0

[[profile]]
name = "single"
from_low = 150.0
from_high = 170.0
to_low = 145.0
to_high = 165.0
limit = 1
`), 0644))

	profiles, err := LoadProfiles(path)
	require.NoError(t, err)
	require.Len(t, profiles, 2)

	assert.Equal(t, "2m-narrow", profiles[0].Name)
	assert.Equal(t, []byte{0xDC, 0x05, 0xA4, 0x06}, profiles[0].Needle)
	assert.Equal(t, []byte{0xA0, 0x05, 0x04, 0x06}, profiles[0].Replacement)
	assert.Equal(t, 3, profiles[0].Limit)

	assert.Equal(t, 1, profiles[1].Limit)
}

func TestLoadProfilesErrors(t *testing.T) {
	_, err := LoadProfiles(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "noname.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[profile]]
from_low = 150.0
from_high = 170.0
to_low = 144.0
to_high = 164.0
`), 0644))

	_, err = LoadProfiles(path)
	assert.ErrorIs(t, err, ErrorBadProfile)
}
