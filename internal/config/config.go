package config

// Settings is the immutable-per-evaluation configuration snapshot consumed
// by the insertion engine and its hosts.
type Settings struct {
	// Layout is the Go reference layout used to render and recognize stamps.
	Layout string `json:"layout"`

	// StampLists appends timestamps to list bullet lines after the marker.
	StampLists bool `json:"stamp_lists"`

	// NewlineAfter suffixes the stamp with a newline instead of a space.
	NewlineAfter bool `json:"newline_after"`

	// MinDelaySeconds throttles insertions; 0 inserts on every trigger.
	MinDelaySeconds int `json:"min_delay_seconds"`

	// Timezone is "Local", "UTC", or an IANA zone name.
	Timezone string `json:"timezone"`

	// UTCOffsetMinutes is a manual fixed offset applied instead of the
	// named zone when UseUTCOffset is set and the value is non-zero.
	UTCOffsetMinutes int  `json:"utc_offset_minutes"`
	UseUTCOffset     bool `json:"use_utc_offset"`

	// Extensions limits which files the watch command considers.
	Extensions []string `json:"extensions"`
}

const (
	DefaultLayout = "2006-01-02 15:04:05-07:00"

	// MaxDelaySeconds caps the insertion throttle.
	MaxDelaySeconds = 3600

	// Offsets beyond +-14h do not exist in any real zone.
	maxOffsetMinutes = 14 * 60
)

// Default returns the settings used when no config file exists.
func Default() Settings {
	return Settings{
		Layout:     DefaultLayout,
		StampLists: true,
		Timezone:   "Local",
		Extensions: []string{".md", ".txt"},
	}
}

// Normalize clamps out-of-range values and restores empty fields to their
// defaults. It never fails; bad input degrades to something safe.
func (s *Settings) Normalize() {
	if s.Layout == "" {
		s.Layout = DefaultLayout
	}
	if s.Timezone == "" {
		s.Timezone = "Local"
	}
	if s.MinDelaySeconds < 0 {
		s.MinDelaySeconds = 0
	}
	if s.MinDelaySeconds > MaxDelaySeconds {
		s.MinDelaySeconds = MaxDelaySeconds
	}
	if s.UTCOffsetMinutes > maxOffsetMinutes {
		s.UTCOffsetMinutes = maxOffsetMinutes
	}
	if s.UTCOffsetMinutes < -maxOffsetMinutes {
		s.UTCOffsetMinutes = -maxOffsetMinutes
	}
	if len(s.Extensions) == 0 {
		s.Extensions = []string{".md", ".txt"}
	}
}
