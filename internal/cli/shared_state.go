package cli

import "github.com/alexanderramin/horizon/internal/config"

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Overview layout, toggled from the dashboard.
	Mode config.ViewMode

	// Terminal dimensions
	Width  int
	Height int
}

// ToggleMode switches between the executive and detailed layouts.
func (s *SharedState) ToggleMode() {
	if s.Mode == config.ViewDetailed {
		s.Mode = config.ViewExecutive
		return
	}
	s.Mode = config.ViewDetailed
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and
// status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}
