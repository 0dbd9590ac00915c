package styles

import (
	"fmt"
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"

	"github.com/thenoetrevino/focup/internal/config"
	"github.com/thenoetrevino/focup/internal/models"
)

var (
	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	ValueStyle    lipgloss.Style

	// Status styles
	DoneStyle    lipgloss.Style
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style

	rendererCache sync.Map // map[int]*glamour.TermRenderer
)

// Init initializes all CLI styles with the given theme
func Init(theme config.Theme) {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Accent))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Normal))

	DoneStyle = lipgloss.NewStyle().
		Strikethrough(true).
		Foreground(lipgloss.Color(theme.Subtle))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Accent))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Error))
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// RenderTaskLine renders a task as "[x] #id title"
func RenderTaskLine(task models.Task) string {
	id := SubtitleStyle.Render(fmt.Sprintf("#%d", task.ID))
	if task.IsCompleted {
		return "[x] " + id + " " + DoneStyle.Render(task.Title)
	}
	return "[ ] " + id + " " + ValueStyle.Render(task.Title)
}

// markdownEscaper backslash-escapes the punctuation markdown treats as syntax
var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	">", `\>`,
	"#", `\#`,
	"~", `\~`,
	"|", `\|`,
	"!", `\!`,
	"\n", " ",
	"\r", " ",
)

// EscapeMarkdown makes s render as literal text inside a markdown line
func EscapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

// Checklist builds a markdown task list, newest first
func Checklist(tasks []models.Task) string {
	var b strings.Builder
	b.WriteString("# Tasks\n\n")
	if len(tasks) == 0 {
		b.WriteString("_No tasks yet._\n")
		return b.String()
	}
	for _, task := range tasks {
		mark := " "
		if task.IsCompleted {
			mark = "x"
		}
		fmt.Fprintf(&b, "- [%s] %s `#%d`\n", mark, EscapeMarkdown(task.Title), task.ID)
	}
	return b.String()
}

// RenderMarkdown renders markdown for the terminal at the given wrap width
func RenderMarkdown(markdown string, width int) (string, error) {
	renderer, err := getRenderer(width)
	if err != nil {
		return "", err
	}
	return renderer.Render(markdown)
}

func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}
