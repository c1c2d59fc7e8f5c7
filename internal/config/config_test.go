package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		in     Settings
		verify func(t *testing.T, s Settings)
	}{
		{
			name: "empty fields restored",
			in:   Settings{},
			verify: func(t *testing.T, s Settings) {
				assert.Equal(t, DefaultLayout, s.Layout)
				assert.Equal(t, "Local", s.Timezone)
				assert.Equal(t, []string{".md", ".txt"}, s.Extensions)
			},
		},
		{
			name: "negative delay clamps to zero",
			in:   Settings{MinDelaySeconds: -10},
			verify: func(t *testing.T, s Settings) {
				assert.Equal(t, 0, s.MinDelaySeconds)
			},
		},
		{
			name: "huge delay clamps to maximum",
			in:   Settings{MinDelaySeconds: 999999},
			verify: func(t *testing.T, s Settings) {
				assert.Equal(t, MaxDelaySeconds, s.MinDelaySeconds)
			},
		},
		{
			name: "offset clamps to +-14h",
			in:   Settings{UTCOffsetMinutes: 2000},
			verify: func(t *testing.T, s Settings) {
				assert.Equal(t, 14*60, s.UTCOffsetMinutes)
			},
		},
		{
			name: "negative offset clamps symmetrically",
			in:   Settings{UTCOffsetMinutes: -2000},
			verify: func(t *testing.T, s Settings) {
				assert.Equal(t, -14*60, s.UTCOffsetMinutes)
			},
		},
		{
			name: "in-range values untouched",
			in: Settings{
				Layout:          "15:04",
				MinDelaySeconds: 30,
				Timezone:        "UTC",
				Extensions:      []string{".org"},
			},
			verify: func(t *testing.T, s Settings) {
				assert.Equal(t, "15:04", s.Layout)
				assert.Equal(t, 30, s.MinDelaySeconds)
				assert.Equal(t, "UTC", s.Timezone)
				assert.Equal(t, []string{".org"}, s.Extensions)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.in
			s.Normalize()
			tt.verify(t, s)
		})
	}
}

func TestLoadAbsentFileYieldsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope", "config.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoadCorruptFileYieldsDefaultsWithError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	s, err := Load(path)
	assert.Error(t, err)
	assert.Equal(t, Default(), s)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.json")

	want := Default()
	want.Layout = "15:04:05"
	want.Timezone = "UTC"
	want.MinDelaySeconds = 12
	want.UseUTCOffset = true
	want.UTCOffsetMinutes = -90
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSaveClampsBeforeWriting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	s := Default()
	s.MinDelaySeconds = -5
	require.NoError(t, Save(path, s))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, got.MinDelaySeconds)
}
