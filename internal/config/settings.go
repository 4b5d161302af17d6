package config

import (
	"fyne.io/fyne/v2"

	"github.com/scoreloop/recapboard/internal/statsapi"
)

// Settings keys for Fyne preferences
const (
	KeyScheduleURL = "schedule_url"
	KeyTargetFPS   = "target_fps"
	KeyLogLevel    = "log_level"
)

// Default values
const (
	// DefaultTargetFPS caps the render loop. Menus like this repaint fine at
	// ten frames a second, and the cap keeps idle CPU usage down.
	DefaultTargetFPS = 10
	DefaultLogLevel  = "info"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetScheduleURL returns the configured schedule endpoint
func (s *Settings) GetScheduleURL() string {
	url := s.app.Preferences().String(KeyScheduleURL)
	if url == "" {
		s.SetScheduleURL(statsapi.DefaultScheduleURL)
		return statsapi.DefaultScheduleURL
	}
	return url
}

// SetScheduleURL sets the schedule endpoint
func (s *Settings) SetScheduleURL(url string) {
	s.app.Preferences().SetString(KeyScheduleURL, url)
}

// GetTargetFPS returns the configured render loop frame rate
func (s *Settings) GetTargetFPS() int {
	value := s.app.Preferences().Int(KeyTargetFPS)
	if value <= 0 {
		s.SetTargetFPS(DefaultTargetFPS)
		return DefaultTargetFPS
	}
	return value
}

// SetTargetFPS sets the render loop frame rate, clamped to a sane range
func (s *Settings) SetTargetFPS(fps int) {
	if fps < 1 {
		fps = 1
	}
	if fps > 60 {
		fps = 60
	}
	s.app.Preferences().SetInt(KeyTargetFPS, fps)
}

// GetLogLevel returns the configured log level
func (s *Settings) GetLogLevel() string {
	level := s.app.Preferences().String(KeyLogLevel)
	if level == "" {
		s.SetLogLevel(DefaultLogLevel)
		return DefaultLogLevel
	}
	return level
}

// SetLogLevel sets the log level
func (s *Settings) SetLogLevel(level string) {
	s.app.Preferences().SetString(KeyLogLevel, level)
}
