// Package stamp renders timestamps in the configured zone and layout.
package stamp

import (
	"fmt"
	"time"

	"github.com/yhmin/linestamp/internal/config"
)

// Formatter turns an instant into the text inserted into a line. Zone
// resolution happens once at construction; a Formatter is immutable after
// that and safe to share.
type Formatter struct {
	layout string
	loc    *time.Location
	suffix string
}

// NewFormatter resolves the zone selection from cfg. A manual UTC offset,
// when enabled and non-zero, wins over the named zone. An unknown IANA name
// is an error so the caller can surface it; hosts that must not fail fall
// back via NewFallbackFormatter.
func NewFormatter(cfg config.Settings) (*Formatter, error) {
	loc, err := resolveZone(cfg)
	if err != nil {
		return nil, err
	}

	suffix := " "
	if cfg.NewlineAfter {
		suffix = "\n"
	}
	return &Formatter{layout: cfg.Layout, loc: loc, suffix: suffix}, nil
}

// NewFallbackFormatter is NewFormatter degrading to the system-local zone
// instead of failing on a bad zone name.
func NewFallbackFormatter(cfg config.Settings) *Formatter {
	f, err := NewFormatter(cfg)
	if err != nil {
		cfg.Timezone = "Local"
		cfg.UseUTCOffset = false
		f, _ = NewFormatter(cfg)
	}
	return f
}

func resolveZone(cfg config.Settings) (*time.Location, error) {
	if cfg.UseUTCOffset && cfg.UTCOffsetMinutes != 0 {
		min := cfg.UTCOffsetMinutes
		name := fmt.Sprintf("UTC%+03d:%02d", min/60, abs(min)%60)
		return time.FixedZone(name, min*60), nil
	}

	switch cfg.Timezone {
	case "", "Local":
		return time.Local, nil
	case "UTC":
		return time.UTC, nil
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}
	return loc, nil
}

// Format renders the bare stamp for t.
func (f *Formatter) Format(t time.Time) string {
	return t.In(f.loc).Format(f.layout)
}

// Render renders the stamp plus its configured trailing space or newline,
// ready for insertion.
func (f *Formatter) Render(t time.Time) string {
	return f.Format(t) + f.suffix
}

// Layout returns the configured Go reference layout.
func (f *Formatter) Layout() string {
	return f.layout
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
