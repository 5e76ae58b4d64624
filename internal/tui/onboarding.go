package tui

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/evanschultz/demoapp/internal/app"
	"github.com/evanschultz/demoapp/internal/domain"
)

// onboarding-screen identifiers and copy.
const (
	onboardingScreenID = "onboarding-screen"
	paginationPrefix   = "pagination-dot-"
	nextLabel          = "Next"
	backLabel          = "Back"
	finishLabel        = "Get Started"
)

// onboardingModel is the walkthrough screen. completed flips once the finish control is pressed.
type onboardingModel struct {
	flow      app.Onboarding
	keys      onboardingKeyMap
	help      help.Model
	markdown  *markdownRenderer
	completed bool
	width     int
}

// newOnboardingModel constructs the walkthrough on its first slide.
func newOnboardingModel(slides []domain.Slide, onComplete func(), keys onboardingKeyMap, markdown *markdownRenderer) onboardingModel {
	h := help.New()
	h.ShowAll = false
	return onboardingModel{
		flow:     app.NewOnboarding(slides, onComplete),
		keys:     keys,
		help:     h,
		markdown: markdown,
	}
}

// update applies one message to the screen.
func (m onboardingModel) update(msg tea.Msg) (onboardingModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	case tea.MouseClickMsg:
		return m.handleClick(msg), nil
	default:
		return m, nil
	}
}

// handleKey routes walkthrough keys. Controls that are not rendered do nothing.
func (m onboardingModel) handleKey(msg tea.KeyPressMsg) (onboardingModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.toggleHelp):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.back):
		return m.pressBack(), nil
	case key.Matches(msg, m.keys.next):
		return m.pressNext(), nil
	case key.Matches(msg, m.keys.primary):
		if m.flow.IsLast() {
			return m.pressFinish(), nil
		}
		return m.pressNext(), nil
	default:
		return m, nil
	}
}

// handleClick presses whichever control sits under a left click.
func (m onboardingModel) handleClick(msg tea.MouseClickMsg) onboardingModel {
	if msg.Button != tea.MouseLeft {
		return m
	}
	_, boxes := m.frame().render()
	id, ok := hitTest(boxes, msg.X-framePadX, msg.Y-framePadY)
	if !ok {
		return m
	}
	switch id {
	case "back-button":
		return m.pressBack()
	case "next-button":
		return m.pressNext()
	case "finish-button":
		return m.pressFinish()
	}
	if raw, ok := strings.CutPrefix(id, paginationPrefix); ok {
		if idx, err := strconv.Atoi(raw); err == nil {
			m.flow.GoTo(idx)
		}
	}
	return m
}

// pressNext advances one slide; on the last slide it is a no-op.
func (m onboardingModel) pressNext() onboardingModel {
	m.flow.Next()
	return m
}

// pressBack steps back one slide; on the first slide it is a no-op.
func (m onboardingModel) pressBack() onboardingModel {
	m.flow.Back()
	return m
}

// pressFinish runs the completion callback once per press while the last slide shows.
func (m onboardingModel) pressFinish() onboardingModel {
	if m.flow.Finish() {
		m.completed = true
	}
	return m
}

// frame builds the identified view tree for the current slide.
func (m onboardingModel) frame() *frame {
	accent := lipgloss.Color("62")
	dim := lipgloss.Color("239")
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	activeDot := lipgloss.NewStyle().Foreground(accent).Bold(true)
	inactiveDot := lipgloss.NewStyle().Foreground(dim)
	buttonStyle := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(dim).Padding(0, 2)
	primaryStyle := buttonStyle.BorderForeground(accent).Foreground(accent).Bold(true)

	slide := m.flow.Current()
	f := newFrame(onboardingScreenID)
	f.line(element{ID: "onboarding-emoji", Text: slide.Emoji})
	f.blank()
	f.line(element{ID: "onboarding-title", Text: slide.Title, Style: titleStyle})
	f.line(element{
		ID:      "onboarding-description",
		Text:    slide.Description,
		Display: m.markdown.render(slide.Description, max(0, m.width-2*framePadX)),
	})
	f.blank()

	dots := make([]element, 0, m.flow.Len())
	for idx := range m.flow.Len() {
		dot := element{ID: fmt.Sprintf("%s%d", paginationPrefix, idx), Text: "○", Style: inactiveDot}
		if idx == m.flow.Index() {
			dot.Text = "●"
			dot.Style = activeDot
			dot.Active = true
		}
		dots = append(dots, dot)
	}
	f.line(dots...)
	f.blank()

	buttons := make([]element, 0, 2)
	if m.flow.CanGoBack() {
		buttons = append(buttons, element{ID: "back-button", Text: backLabel, Style: buttonStyle})
	}
	if m.flow.IsLast() {
		buttons = append(buttons, element{ID: "finish-button", Text: finishLabel, Style: primaryStyle})
	} else {
		buttons = append(buttons, element{ID: "next-button", Text: nextLabel, Style: primaryStyle})
	}
	f.line(buttons...)
	return f
}

// view renders the screen body and its help line.
func (m onboardingModel) view() string {
	body, _ := m.frame().render()
	return composeScreen(body, m.help, m.keys, m.width)
}
