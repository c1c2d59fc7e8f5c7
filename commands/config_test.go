package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yhmin/linestamp/internal/config"
)

func TestApplySetting(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		value  string
		verify func(t *testing.T, s config.Settings)
	}{
		{
			name:  "layout",
			key:   "layout",
			value: "15:04",
			verify: func(t *testing.T, s config.Settings) {
				assert.Equal(t, "15:04", s.Layout)
			},
		},
		{
			name:  "timezone",
			key:   "timezone",
			value: "Asia/Shanghai",
			verify: func(t *testing.T, s config.Settings) {
				assert.Equal(t, "Asia/Shanghai", s.Timezone)
			},
		},
		{
			name:  "delay",
			key:   "min_delay_seconds",
			value: "30",
			verify: func(t *testing.T, s config.Settings) {
				assert.Equal(t, 30, s.MinDelaySeconds)
			},
		},
		{
			name:  "stamp lists off",
			key:   "stamp_lists",
			value: "false",
			verify: func(t *testing.T, s config.Settings) {
				assert.False(t, s.StampLists)
			},
		},
		{
			name:  "extensions normalized with dots",
			key:   "extensions",
			value: "md, org,txt",
			verify: func(t *testing.T, s config.Settings) {
				assert.Equal(t, []string{".md", ".org", ".txt"}, s.Extensions)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := config.Default()
			require.NoError(t, applySetting(&s, tt.key, tt.value))
			tt.verify(t, s)
		})
	}
}

// Non-numeric input keeps the stored value instead of failing or zeroing it.
func TestApplySettingBadNumberKeepsPrevious(t *testing.T) {
	s := config.Default()
	s.MinDelaySeconds = 15
	s.UTCOffsetMinutes = 60

	require.NoError(t, applySetting(&s, "min_delay_seconds", "soon"))
	assert.Equal(t, 15, s.MinDelaySeconds)

	require.NoError(t, applySetting(&s, "utc_offset_minutes", "east"))
	assert.Equal(t, 60, s.UTCOffsetMinutes)
}

func TestApplySettingBadInput(t *testing.T) {
	s := config.Default()
	assert.Error(t, applySetting(&s, "no_such_key", "1"))
	assert.Error(t, applySetting(&s, "stamp_lists", "maybe"))
}
