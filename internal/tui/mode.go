package tui

// Mode represents the current interaction mode of the TUI
type Mode int

const (
	ListMode  Mode = iota // Navigating and editing the task list
	InputMode             // Typing the title of a new task
)

func (m Mode) String() string {
	switch m {
	case InputMode:
		return "input"
	default:
		return "list"
	}
}
