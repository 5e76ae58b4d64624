package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/evanschultz/demoapp/internal/domain"
)

// home-screen identifiers and copy.
const (
	homeScreenID     = "home-screen"
	homeTitle        = "My Tasks"
	taskInputHint    = "Add a new task..."
	emptyStateTitle  = "No tasks yet!"
	emptyStateDetail = "Add your first task above"
	addButtonLabel   = "+ Add"
)

// task control id prefixes; the task id follows the prefix.
const (
	taskTogglePrefix = "task-toggle-"
	taskTitlePrefix  = "task-title-"
	taskDeletePrefix = "task-delete-"
)

// homeFocus identifies which home control receives key presses.
type homeFocus int

const (
	focusInput homeFocus = iota
	focusList
)

// homeModel is the task-list screen: a counter, an input with an add button, and the task list or empty state.
type homeModel struct {
	svc      TaskService
	keys     homeKeyMap
	help     help.Model
	input    textinput.Model
	focus    homeFocus
	selected int
	status   string
	width    int
	copyText func(string) error
}

// newHomeModel constructs the task-list screen with the input focused.
func newHomeModel(svc TaskService, keys homeKeyMap, copyText func(string) error) homeModel {
	in := textinput.New()
	in.Prompt = "› "
	in.Placeholder = taskInputHint
	in.CharLimit = 200
	in.SetWidth(36)
	_ = in.Focus()
	h := help.New()
	h.ShowAll = false
	return homeModel{
		svc:      svc,
		keys:     keys,
		help:     h,
		input:    in,
		focus:    focusInput,
		copyText: copyText,
	}
}

// update applies one message to the screen.
func (m homeModel) update(msg tea.Msg) (homeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.SetWidth(clamp(msg.Width-24, 16, 60))
		return m, nil
	case tea.KeyPressMsg:
		if m.focus == focusInput {
			return m.handleInputKey(msg)
		}
		return m.handleListKey(msg)
	case tea.MouseClickMsg:
		return m.handleClick(msg)
	default:
		if m.focus != focusInput {
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

// handleInputKey routes keys while the text input owns focus.
func (m homeModel) handleInputKey(msg tea.KeyPressMsg) (homeModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.submit):
		return m.pressAdd(), nil
	case key.Matches(msg, m.keys.leaveInput):
		m.focusList()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleListKey routes keys while the task list owns focus.
func (m homeModel) handleListKey(msg tea.KeyPressMsg) (homeModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.toggleHelp):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.focusInput):
		cmd := m.focusInputField()
		return m, cmd
	case key.Matches(msg, m.keys.moveUp):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case key.Matches(msg, m.keys.moveDown):
		if m.selected < len(m.svc.Tasks())-1 {
			m.selected++
		}
		return m, nil
	case key.Matches(msg, m.keys.toggle):
		if task, ok := m.selectedTask(); ok {
			return m.pressToggle(task.ID), nil
		}
		return m, nil
	case key.Matches(msg, m.keys.deleteTask):
		if task, ok := m.selectedTask(); ok {
			return m.pressDelete(task.ID), nil
		}
		return m, nil
	case key.Matches(msg, m.keys.copyTitle):
		return m.copySelectedTitle(), nil
	default:
		return m, nil
	}
}

// handleClick presses whichever control sits under a left click.
func (m homeModel) handleClick(msg tea.MouseClickMsg) (homeModel, tea.Cmd) {
	if msg.Button != tea.MouseLeft {
		return m, nil
	}
	_, boxes := m.frame().render()
	id, ok := hitTest(boxes, msg.X-framePadX, msg.Y-framePadY)
	if !ok {
		return m, nil
	}
	switch {
	case id == "add-button":
		return m.pressAdd(), nil
	case id == "task-input":
		cmd := m.focusInputField()
		return m, cmd
	}
	if taskID, ok := strings.CutPrefix(id, taskDeletePrefix); ok {
		return m.pressDelete(taskID), nil
	}
	if taskID, ok := strings.CutPrefix(id, taskTogglePrefix); ok {
		return m.pressToggle(taskID), nil
	}
	if taskID, ok := strings.CutPrefix(id, taskTitlePrefix); ok {
		return m.pressToggle(taskID), nil
	}
	return m, nil
}

// pressAdd submits the input buffer. Only a successful add clears the buffer.
func (m homeModel) pressAdd() homeModel {
	task, ok := m.svc.AddTask(m.input.Value())
	if !ok {
		m.status = "task title is required"
		return m
	}
	m.input.SetValue("")
	m.status = fmt.Sprintf("added %q", truncate(task.Title, 32))
	if similar, found := m.svc.SimilarTask(task.ID, task.Title); found {
		m.status += fmt.Sprintf(" (similar to %q)", truncate(similar.Title, 32))
	}
	return m
}

// pressToggle flips completion for one task and moves the cursor onto it.
func (m homeModel) pressToggle(taskID string) homeModel {
	task, ok := m.svc.ToggleTask(taskID)
	if !ok {
		return m
	}
	m.selectTaskID(task.ID)
	if task.Completed {
		m.status = fmt.Sprintf("completed %q", truncate(task.Title, 32))
	} else {
		m.status = fmt.Sprintf("reopened %q", truncate(task.Title, 32))
	}
	return m
}

// pressDelete removes one task and keeps the cursor in range.
func (m homeModel) pressDelete(taskID string) homeModel {
	task, ok := m.svc.DeleteTask(taskID)
	if !ok {
		return m
	}
	m.selected = clamp(m.selected, 0, len(m.svc.Tasks())-1)
	m.status = fmt.Sprintf("deleted %q", truncate(task.Title, 32))
	return m
}

// copySelectedTitle writes the selected task title to the clipboard.
func (m homeModel) copySelectedTitle() homeModel {
	task, ok := m.selectedTask()
	if !ok {
		m.status = "no task selected"
		return m
	}
	if m.copyText == nil {
		m.status = "clipboard unavailable"
		return m
	}
	if err := m.copyText(task.Title); err != nil {
		m.status = "copy failed: " + err.Error()
		return m
	}
	m.status = fmt.Sprintf("copied %q", truncate(task.Title, 32))
	return m
}

// focusInputField moves focus to the text input.
func (m *homeModel) focusInputField() tea.Cmd {
	m.focus = focusInput
	return m.input.Focus()
}

// focusList moves focus to the task list.
func (m *homeModel) focusList() {
	m.focus = focusList
	m.input.Blur()
	m.selected = clamp(m.selected, 0, len(m.svc.Tasks())-1)
}

// selectedTask returns the task under the list cursor.
func (m homeModel) selectedTask() (domain.Task, bool) {
	tasks := m.svc.Tasks()
	if len(tasks) == 0 {
		return domain.Task{}, false
	}
	return tasks[clamp(m.selected, 0, len(tasks)-1)], true
}

// selectTaskID moves the list cursor onto the task with the given id.
func (m *homeModel) selectTaskID(taskID string) {
	for idx, task := range m.svc.Tasks() {
		if task.ID == taskID {
			m.selected = idx
			return
		}
	}
}

// frame builds the identified view tree for the current state.
func (m homeModel) frame() *frame {
	muted := lipgloss.Color("241")
	accent := lipgloss.Color("62")
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	mutedStyle := lipgloss.NewStyle().Foreground(muted)
	inputStyle := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("239")).Padding(0, 1)
	if m.focus == focusInput {
		inputStyle = inputStyle.BorderForeground(accent)
	}
	buttonStyle := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Foreground(accent).Bold(true).Padding(0, 1)
	doneStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Strikethrough(true)
	toggleStyle := lipgloss.NewStyle().Foreground(accent)
	deleteStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	cursorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("239"))

	summary := m.svc.Summary()
	f := newFrame(homeScreenID)
	f.line(element{ID: "home-title", Text: homeTitle, Style: titleStyle})
	f.line(element{ID: "task-counter", Text: summary.String(), Style: mutedStyle})
	f.blank()
	f.line(
		element{ID: "task-input", Text: m.input.Value(), Display: inputStyle.Render(m.input.View()), Active: m.focus == focusInput},
		element{ID: "add-button", Text: addButtonLabel, Style: buttonStyle},
	)
	f.blank()

	if summary.Empty() {
		f.begin("empty-state")
		f.line(element{Text: emptyStateTitle, Style: titleStyle})
		f.line(element{Text: emptyStateDetail, Style: mutedStyle})
		f.end()
	} else {
		f.begin("task-list")
		for idx, task := range m.svc.Tasks() {
			selected := m.focus == focusList && idx == m.selected
			cursor := " "
			if selected {
				cursor = "│"
			}
			box := "[ ]"
			titleStyleForTask := lipgloss.NewStyle()
			if task.Completed {
				box = "[x]"
				titleStyleForTask = doneStyle
			}
			if selected {
				titleStyleForTask = titleStyleForTask.Foreground(lipgloss.Color("212")).Bold(true)
			}
			f.line(
				element{Text: cursor, Style: cursorStyle},
				element{ID: taskTogglePrefix + task.ID, Text: box, Style: toggleStyle, Active: task.Completed},
				element{ID: taskTitlePrefix + task.ID, Text: task.Title, Style: titleStyleForTask, Active: task.Completed},
				element{ID: taskDeletePrefix + task.ID, Text: "✕", Style: deleteStyle},
			)
		}
		f.end()
	}

	if strings.TrimSpace(m.status) != "" {
		f.blank()
		f.line(element{ID: "home-status", Text: m.status, Style: statusStyle})
	}
	return f
}

// view renders the screen body and its help line.
func (m homeModel) view() string {
	body, _ := m.frame().render()
	return composeScreen(body, m.help, m.keys, m.width)
}
