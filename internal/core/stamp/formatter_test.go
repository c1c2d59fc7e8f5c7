package stamp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yhmin/linestamp/internal/config"
)

func testSettings() config.Settings {
	s := config.Default()
	s.Layout = "2006-01-02 15:04:05-07:00"
	return s
}

func TestFormatterZones(t *testing.T) {
	instant := time.Date(2025, 8, 31, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		mutate func(*config.Settings)
		want   string
	}{
		{
			name:   "utc",
			mutate: func(s *config.Settings) { s.Timezone = "UTC" },
			want:   "2025-08-31 12:00:00+00:00",
		},
		{
			name:   "named zone",
			mutate: func(s *config.Settings) { s.Timezone = "Asia/Shanghai" },
			want:   "2025-08-31 20:00:00+08:00",
		},
		{
			name: "manual offset wins over named zone",
			mutate: func(s *config.Settings) {
				s.Timezone = "Asia/Shanghai"
				s.UseUTCOffset = true
				s.UTCOffsetMinutes = -300
			},
			want: "2025-08-31 07:00:00-05:00",
		},
		{
			name: "zero manual offset falls back to named zone",
			mutate: func(s *config.Settings) {
				s.Timezone = "UTC"
				s.UseUTCOffset = true
				s.UTCOffsetMinutes = 0
			},
			want: "2025-08-31 12:00:00+00:00",
		},
		{
			name: "disabled manual offset is ignored",
			mutate: func(s *config.Settings) {
				s.Timezone = "UTC"
				s.UseUTCOffset = false
				s.UTCOffsetMinutes = 90
			},
			want: "2025-08-31 12:00:00+00:00",
		},
		{
			name: "half hour manual offset",
			mutate: func(s *config.Settings) {
				s.UseUTCOffset = true
				s.UTCOffsetMinutes = 330
			},
			want: "2025-08-31 17:30:00+05:30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testSettings()
			tt.mutate(&cfg)

			f, err := NewFormatter(cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Format(instant))
		})
	}
}

func TestFormatterInvalidZone(t *testing.T) {
	cfg := testSettings()
	cfg.Timezone = "Not/AZone"

	_, err := NewFormatter(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid timezone")
}

func TestFallbackFormatter(t *testing.T) {
	cfg := testSettings()
	cfg.Timezone = "Not/AZone"

	f := NewFallbackFormatter(cfg)
	require.NotNil(t, f)
	// Falls back to the local zone and still renders.
	assert.NotEmpty(t, f.Format(time.Now()))
}

func TestRenderSuffix(t *testing.T) {
	instant := time.Date(2025, 8, 31, 12, 0, 0, 0, time.UTC)

	cfg := testSettings()
	cfg.Timezone = "UTC"
	f, err := NewFormatter(cfg)
	require.NoError(t, err)
	assert.Equal(t, "2025-08-31 12:00:00+00:00 ", f.Render(instant))

	cfg.NewlineAfter = true
	f, err = NewFormatter(cfg)
	require.NoError(t, err)
	assert.Equal(t, "2025-08-31 12:00:00+00:00\n", f.Render(instant))
}
