package tui

import (
	"strings"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/atotto/clipboard"
	"github.com/evanschultz/demoapp/internal/app"
	"github.com/evanschultz/demoapp/internal/domain"
)

// TaskService represents the task operations the home screen drives.
type TaskService interface {
	Tasks() []domain.Task
	AddTask(string) (domain.Task, bool)
	ToggleTask(string) (domain.Task, bool)
	DeleteTask(string) (domain.Task, bool)
	Summary() app.Summary
	SimilarTask(string, string) (domain.Task, bool)
}

// screen identifies which screen owns input.
type screen int

// screenOnboarding and related constants define package defaults.
const (
	screenOnboarding screen = iota
	screenHome
)

// framePadX and framePadY are the outer padding around every screen body.
const (
	framePadX = 2
	framePadY = 1
)

// Model represents the root program model.
type Model struct {
	svc    TaskService
	screen screen

	home       homeModel
	onboarding onboardingModel

	showOnboarding bool
	onComplete     func()
	slides         []domain.Slide
	keyConfig      KeyConfig
	copyText       func(string) error
	markdownStyle  string

	ready  bool
	width  int
	height int
}

// NewModel constructs a new value for this package.
func NewModel(svc TaskService, opts ...Option) Model {
	m := Model{
		svc:            svc,
		showOnboarding: true,
		slides:         domain.DefaultSlides(),
		copyText:       clipboard.WriteAll,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&m)
		}
	}

	homeKeys := newHomeKeyMap()
	homeKeys.applyConfig(m.keyConfig)
	onboardingKeys := newOnboardingKeyMap()
	onboardingKeys.applyConfig(m.keyConfig)

	m.home = newHomeModel(svc, homeKeys, m.copyText)
	m.onboarding = newOnboardingModel(m.slides, m.onComplete, onboardingKeys, newMarkdownRenderer(m.markdownStyle))
	m.screen = screenHome
	if m.showOnboarding {
		m.screen = screenOnboarding
	}
	return m
}

// Init handles init.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update updates state for the requested operation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		m.width = msg.Width
		m.height = msg.Height
		m.home, _ = m.home.update(msg)
		m.onboarding, _ = m.onboarding.update(msg)
		return m, nil
	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	if m.screen == screenOnboarding {
		var cmd tea.Cmd
		m.onboarding, cmd = m.onboarding.update(msg)
		if !m.onboarding.completed {
			return m, cmd
		}
		m.screen = screenHome
		focusCmd := m.home.focusInputField()
		return m, tea.Batch(cmd, focusCmd)
	}

	var cmd tea.Cmd
	m.home, cmd = m.home.update(msg)
	return m, cmd
}

// View renders the active screen.
func (m Model) View() tea.View {
	content := "loading..."
	if m.ready {
		if m.screen == screenOnboarding {
			content = m.onboarding.view()
		} else {
			content = m.home.view()
		}
	}
	v := tea.NewView(content)
	v.MouseMode = tea.MouseModeCellMotion
	v.AltScreen = true
	return v
}

// activeFrame returns the view tree of the active screen.
func (m Model) activeFrame() *frame {
	if m.screen == screenOnboarding {
		return m.onboarding.frame()
	}
	return m.home.frame()
}

// composeScreen pads one screen body and appends its help line.
func composeScreen(body string, h help.Model, keys help.KeyMap, width int) string {
	if width > 0 {
		h.SetWidth(max(0, width-2*framePadX))
	}
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpLine := helpStyle.Render(h.View(keys))
	content := body
	if strings.TrimSpace(helpLine) != "" {
		content += "\n\n" + helpLine
	}
	return lipgloss.NewStyle().Padding(framePadY, framePadX).Render(content)
}

// clamp bounds v to the inclusive [minV, maxV] range.
func clamp(v, minV, maxV int) int {
	if maxV < minV {
		return minV
	}
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}

// truncate truncates the requested operation.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	if max <= 1 {
		return string(rs[:max])
	}
	return string(rs[:max-1]) + "…"
}
