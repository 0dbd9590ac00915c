package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case subscribedMsg:
		m.sub = msg.sub
		return m, waitForSnapshot(m.sub)

	case SnapshotMsg:
		m.applySnapshot(msg.Snapshot)
		return m, waitForSnapshot(m.sub)

	case feedClosedMsg:
		m.sub = nil
		return m, nil

	case backgroundErrorMsg:
		m.err = msg.Err
		return m, waitForError(m.ctx, m.errs)

	case ErrorMsg:
		m.err = msg.Err
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		if m.mode == InputMode {
			return m.handleInputMode(msg)
		}
		return m.handleListMode(msg)
	}

	if m.mode == InputMode {
		return m.updateForm(msg)
	}
	return m, nil
}

// ============================================================================
// LIST MODE HANDLERS
// ============================================================================

func (m Model) handleListMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch {
	case key == m.keys.Quit:
		return m.quit()
	case key == m.keys.AddTask:
		return m.startInput()
	case key == m.keys.ToggleTask || key == "x":
		return m.toggleSelected()
	case key == m.keys.DeleteTask:
		return m.deleteSelected()
	case key == m.keys.NextTask || key == "down":
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
	case key == m.keys.PrevTask || key == "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case key == "esc":
		m.err = nil
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.close()
	return m, tea.Quit
}

func (m Model) startInput() (tea.Model, tea.Cmd) {
	m.mode = InputMode
	m.err = nil
	m.draft = new(string)
	m.form = newTaskForm(m.draft, m.theme)
	return m, m.form.Init()
}

func (m Model) toggleSelected() (tea.Model, tea.Cmd) {
	task, ok := m.selectedTask()
	if !ok {
		return m, nil
	}
	if err := m.app.SetCompleted(task, !task.IsCompleted); err != nil {
		m.err = err
	}
	return m, nil
}

func (m Model) deleteSelected() (tea.Model, tea.Cmd) {
	task, ok := m.selectedTask()
	if !ok {
		return m, nil
	}
	if err := m.app.DeleteTask(task); err != nil {
		m.err = err
	}
	return m, nil
}

// ============================================================================
// INPUT MODE HANDLERS
// ============================================================================

func (m Model) handleInputMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	model, cmd := m.updateForm(msg)
	m = model.(Model)
	if m.mode != InputMode || msg.String() != "enter" {
		return m, cmd
	}

	// enter on the only field submits without waiting for the form's
	// field and group messages to round-trip
	return m.handleInputConfirm()
}

// updateForm forwards msg to the prompt and acts on its final state
func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.form == nil {
		m.mode = ListMode
		return m, nil
	}

	model, cmd := m.form.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		m.form = form
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m.handleInputConfirm()
	case huh.StateAborted:
		return m.handleInputCancel()
	}
	return m, cmd
}

// handleInputConfirm submits the title. Blank input is ignored and the
// prompt stays open.
func (m Model) handleInputConfirm() (tea.Model, tea.Cmd) {
	title := ""
	if m.draft != nil {
		title = *m.draft
	}
	if strings.TrimSpace(title) == "" {
		return m, nil
	}

	if err := m.app.AddTask(title); err != nil {
		m.err = err
	}
	return m.handleInputCancel()
}

func (m Model) handleInputCancel() (tea.Model, tea.Cmd) {
	m.mode = ListMode
	m.form = nil
	m.draft = nil
	return m, nil
}
