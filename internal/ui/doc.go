package ui

// Package ui contains the Fyne-based desktop user interface for the board.
// It runs the fixed-rate repaint loop over the lineup, maps arrow keys to
// cursor moves, and renders the fatal error screen when the schedule fetch
// fails.
