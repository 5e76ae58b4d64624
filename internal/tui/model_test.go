package tui

import (
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/evanschultz/demoapp/internal/adapters/storage/memory"
	"github.com/evanschultz/demoapp/internal/app"
	"github.com/evanschultz/demoapp/internal/domain"
)

// newTestService builds a task list over the in-memory repository with predictable ids.
func newTestService(seed ...domain.Task) *app.TaskList {
	next := 0
	idGen := func() string {
		next++
		return fmt.Sprintf("new-%d", next)
	}
	return app.NewTaskList(memory.New(), idGen, app.TaskListConfig{Seed: seed, SimilarityThreshold: 2})
}

// newHomeOnlyModel builds a ready root model that skips the walkthrough.
func newHomeOnlyModel(t *testing.T, svc TaskService, opts ...Option) Model {
	t.Helper()
	opts = append([]Option{WithOnboarding(false), WithClipboard(func(string) error { return nil })}, opts...)
	return loadReadyModel(t, NewModel(svc, opts...))
}

// TestNewModelStartsOnOnboarding verifies the walkthrough shows first by default.
func TestNewModelStartsOnOnboarding(t *testing.T) {
	m := loadReadyModel(t, NewModel(newTestService(app.DefaultSeedTasks()...)))
	if m.screen != screenOnboarding {
		t.Fatalf("expected onboarding screen, got %v", m.screen)
	}
	f := m.activeFrame()
	if !f.has(onboardingScreenID) {
		t.Fatalf("expected %q root id", onboardingScreenID)
	}
	title, ok := f.find("onboarding-title")
	if !ok || title.Text != "Welcome to Demo App" {
		t.Fatalf("unexpected first slide title %#v", title)
	}
}

// TestModelSkipsOnboardingWhenDisabled verifies the task list shows immediately when the walkthrough is off.
func TestModelSkipsOnboardingWhenDisabled(t *testing.T) {
	m := newHomeOnlyModel(t, newTestService(app.DefaultSeedTasks()...))
	if m.screen != screenHome {
		t.Fatalf("expected home screen, got %v", m.screen)
	}
	if !m.activeFrame().has(homeScreenID) {
		t.Fatalf("expected %q root id", homeScreenID)
	}
}

// TestModelOnboardingCompletionSwitchesToHome verifies finishing the walkthrough runs the callback and shows tasks.
func TestModelOnboardingCompletionSwitchesToHome(t *testing.T) {
	calls := 0
	m := loadReadyModel(t, NewModel(
		newTestService(app.DefaultSeedTasks()...),
		WithOnComplete(func() { calls++ }),
		WithClipboard(func(string) error { return nil }),
	))

	m = applyMsg(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	m = applyMsg(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if m.screen != screenOnboarding || calls != 0 {
		t.Fatalf("expected last slide without completion, screen=%v calls=%d", m.screen, calls)
	}
	if !m.activeFrame().has("finish-button") {
		t.Fatal("expected finish button on last slide")
	}

	m = applyMsg(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if calls != 1 {
		t.Fatalf("expected one completion call, got %d", calls)
	}
	if m.screen != screenHome {
		t.Fatalf("expected home screen after finish, got %v", m.screen)
	}
	if m.home.focus != focusInput {
		t.Fatalf("expected input focus after finish, got %v", m.home.focus)
	}
	counter, _ := m.activeFrame().find("task-counter")
	if counter.Text != "0 of 2 completed" {
		t.Fatalf("unexpected counter %q", counter.Text)
	}
}

// TestModelCtrlCQuitsFromEveryScreen verifies ctrl+c quits even while typing.
func TestModelCtrlCQuitsFromEveryScreen(t *testing.T) {
	ctrlC := tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	for name, m := range map[string]Model{
		"onboarding": loadReadyModel(t, NewModel(newTestService())),
		"home":       newHomeOnlyModel(t, newTestService()),
	} {
		t.Run(name, func(t *testing.T) {
			_, cmd := m.Update(ctrlC)
			if cmd == nil {
				t.Fatal("expected quit command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Fatalf("expected quit msg, got %T", cmd())
			}
		})
	}
}

// TestModelQuitKeyRespectsInputFocus verifies q types into the input but quits from the list.
func TestModelQuitKeyRespectsInputFocus(t *testing.T) {
	m := newHomeOnlyModel(t, newTestService())
	updated, cmd := m.Update(keyRune('q'))
	if cmd != nil {
		if _, ok := cmd().(tea.QuitMsg); ok {
			t.Fatal("expected q to type while input has focus")
		}
	}
	m = updated.(Model)
	if got := m.home.input.Value(); got != "q" {
		t.Fatalf("expected q in input, got %q", got)
	}

	m = applyMsg(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	_, cmd = m.Update(keyRune('q'))
	if cmd == nil {
		t.Fatal("expected quit command from list focus")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected quit msg, got %T", cmd())
	}
}

// TestModelViewStates verifies the loading placeholder and the rendered screens.
func TestModelViewStates(t *testing.T) {
	m := NewModel(newTestService(), WithOnboarding(false))
	if got := fmt.Sprint(m.View().Content); !strings.Contains(got, "loading...") {
		t.Fatalf("expected loading view before size, got %q", got)
	}
	m = loadReadyModel(t, m)
	v := m.View()
	if !v.AltScreen || v.MouseMode != tea.MouseModeCellMotion {
		t.Fatalf("unexpected view flags alt=%v mouse=%v", v.AltScreen, v.MouseMode)
	}
	if rendered := fmt.Sprint(v.Content); !containsAll(rendered, homeTitle, "0 of 0 completed", emptyStateTitle) {
		t.Fatalf("unexpected home view %q", rendered)
	}
}

// TestHelpersCoverage verifies clamp and truncate edge cases.
func TestHelpersCoverage(t *testing.T) {
	if got := clamp(5, 0, 3); got != 3 {
		t.Fatalf("clamp high got %d", got)
	}
	if got := clamp(-2, 0, 3); got != 0 {
		t.Fatalf("clamp low got %d", got)
	}
	if got := clamp(2, 0, -1); got != 0 {
		t.Fatalf("clamp inverted got %d", got)
	}
	if got := truncate("abcdef", 4); got != "abc…" {
		t.Fatalf("truncate got %q", got)
	}
	if got := truncate("abc", 0); got != "" {
		t.Fatalf("truncate zero got %q", got)
	}
	if got := truncate("ab", 5); got != "ab" {
		t.Fatalf("truncate short got %q", got)
	}
}

func loadReadyModel(t *testing.T, m Model) Model {
	t.Helper()
	return applyMsg(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
}

// applyMsg runs one update and drops the returned command; cursor blink ticks would otherwise block.
func applyMsg(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	out, ok := updated.(Model)
	if !ok {
		t.Fatalf("expected Model, got %T", updated)
	}
	return out
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m = applyMsg(t, m, keyRune(r))
	}
	return m
}

// clickElement sends a left click at the top-left cell of the identified element.
func clickElement(t *testing.T, m Model, id string) Model {
	t.Helper()
	_, boxes := m.activeFrame().render()
	for _, box := range boxes {
		if box.id == id {
			return applyMsg(t, m, tea.MouseClickMsg{X: box.x + framePadX, Y: box.y + framePadY, Button: tea.MouseLeft})
		}
	}
	t.Fatalf("element %q not rendered", id)
	return m
}

func keyRune(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func containsAll(s string, parts ...string) bool {
	for _, part := range parts {
		if !strings.Contains(s, part) {
			return false
		}
	}
	return true
}
