package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// Environment variables read by DefaultSettings.
const (
	EnvStopEarly = "SHORTPWD_STOP_EARLY"
	EnvFactor    = "SHORTPWD_FACTOR"
	EnvStyle     = "SHORTPWD_STYLE"
	EnvAnchors   = "SHORTPWD_ANCHORS"
)

// DefaultFactor is the share of the terminal width the path may occupy.
const DefaultFactor = 0.8

// Settings holds the options of one render.
type Settings struct {
	StopEarly bool
	Factor    float64
	Style     string
	// ExtraAnchors are added to the built-in anchor names.
	ExtraAnchors []string
}

// DefaultSettings returns the defaults with environment overrides applied.
// Malformed values are reported by Validate rather than silently dropped.
func DefaultSettings() (*Settings, error) {
	s := &Settings{
		StopEarly: false,
		Factor:    DefaultFactor,
		Style:     "markup",
	}

	if v := os.Getenv(EnvStopEarly); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s=%q: %w", EnvStopEarly, v, err)
		}
		s.StopEarly = b
	}

	if v := os.Getenv(EnvFactor); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s=%q: %w", EnvFactor, v, err)
		}
		s.Factor = f
	}

	if v := os.Getenv(EnvStyle); v != "" {
		s.Style = strings.ToLower(strings.TrimSpace(v))
	}

	if v := os.Getenv(EnvAnchors); v != "" {
		s.ExtraAnchors = SplitList(v)
	}

	return s, nil
}

// Validate validates the settings
func (s *Settings) Validate() error {
	if math.IsNaN(s.Factor) || math.IsInf(s.Factor, 0) || s.Factor <= 0 {
		return fmt.Errorf("factor must be positive, got %v", s.Factor)
	}

	validStyles := map[string]bool{
		"markup": true,
		"ansi":   true,
		"plain":  true,
		"auto":   true,
	}
	if !validStyles[s.Style] {
		return fmt.Errorf("unknown style %q (want markup, ansi, plain or auto)", s.Style)
	}

	return nil
}

// Budget returns the number of runes available for a terminal of the given
// width.
func (s *Settings) Budget(width int) int {
	return int(float64(width) * s.Factor)
}

// SplitList splits a comma-separated list, dropping blanks.
func SplitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
