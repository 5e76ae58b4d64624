package tui

import (
	"slices"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/evanschultz/demoapp/internal/domain"
)

func newTestOnboarding(onComplete func(), slides ...domain.Slide) onboardingModel {
	if len(slides) == 0 {
		slides = domain.DefaultSlides()
	}
	m := newOnboardingModel(slides, onComplete, newOnboardingKeyMap(), newMarkdownRenderer("notty"))
	m, _ = m.update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

func pressOnboarding(m onboardingModel, msgs ...tea.Msg) onboardingModel {
	for _, msg := range msgs {
		m, _ = m.update(msg)
	}
	return m
}

func clickOnboarding(t *testing.T, m onboardingModel, id string) onboardingModel {
	t.Helper()
	_, boxes := m.frame().render()
	for _, box := range boxes {
		if box.id == id {
			m, _ = m.update(tea.MouseClickMsg{X: box.x + framePadX, Y: box.y + framePadY, Button: tea.MouseLeft})
			return m
		}
	}
	t.Fatalf("element %q not rendered", id)
	return m
}

// TestOnboardingFirstSlide verifies the opening slide, pagination and controls.
func TestOnboardingFirstSlide(t *testing.T) {
	m := newTestOnboarding(nil)
	f := m.frame()

	emoji, _ := f.find("onboarding-emoji")
	title, _ := f.find("onboarding-title")
	if emoji.Text != "👋" || title.Text != "Welcome to Demo App" {
		t.Fatalf("unexpected first slide emoji=%q title=%q", emoji.Text, title.Text)
	}
	if got := f.ids(paginationPrefix); !slices.Equal(got, []string{"pagination-dot-0", "pagination-dot-1", "pagination-dot-2"}) {
		t.Fatalf("unexpected pagination ids %#v", got)
	}
	dot, _ := f.find("pagination-dot-0")
	if !dot.Active || dot.Text != "●" {
		t.Fatalf("expected first dot active, got %#v", dot)
	}
	if f.has("back-button") || f.has("finish-button") || !f.has("next-button") {
		t.Fatal("expected only the next control on the first slide")
	}
}

// TestOnboardingDescriptionKeepsMarkdownSource verifies the queryable text stays raw while display is rendered.
func TestOnboardingDescriptionKeepsMarkdownSource(t *testing.T) {
	m := newTestOnboarding(nil)
	m = pressOnboarding(m, keyRune('l'))
	desc, ok := m.frame().find("onboarding-description")
	if !ok {
		t.Fatal("expected description element")
	}
	if desc.Text != domain.DefaultSlides()[1].Description {
		t.Fatalf("unexpected description text %q", desc.Text)
	}
	if desc.Display == "" {
		t.Fatal("expected rendered description display")
	}
}

// TestOnboardingNextClampsAtLastSlide verifies next stops on the final slide.
func TestOnboardingNextClampsAtLastSlide(t *testing.T) {
	m := newTestOnboarding(nil)
	m = clickOnboarding(t, m, "next-button")
	m = clickOnboarding(t, m, "next-button")
	if m.flow.Index() != 2 {
		t.Fatalf("expected last slide, got %d", m.flow.Index())
	}
	f := m.frame()
	if f.has("next-button") || !f.has("finish-button") || !f.has("back-button") {
		t.Fatal("expected back and finish controls on the last slide")
	}
	m = pressOnboarding(m, keyRune('l'), tea.KeyPressMsg{Code: tea.KeyRight})
	if m.flow.Index() != 2 {
		t.Fatalf("expected next to stay clamped, got %d", m.flow.Index())
	}
	title, _ := m.frame().find("onboarding-title")
	if title.Text != "CI/CD Integration" {
		t.Fatalf("unexpected last title %q", title.Text)
	}
}

// TestOnboardingBackClampsAtFirstSlide verifies back never moves before the first slide.
func TestOnboardingBackClampsAtFirstSlide(t *testing.T) {
	m := newTestOnboarding(nil)
	m = pressOnboarding(m, tea.KeyPressMsg{Code: tea.KeyLeft}, keyRune('h'))
	if m.flow.Index() != 0 {
		t.Fatalf("expected first slide, got %d", m.flow.Index())
	}
	m = pressOnboarding(m, keyRune('l'))
	m = clickOnboarding(t, m, "back-button")
	if m.flow.Index() != 0 {
		t.Fatalf("expected back to first slide, got %d", m.flow.Index())
	}
	if m.frame().has("back-button") {
		t.Fatal("expected back control hidden on the first slide")
	}
}

// TestOnboardingPaginationClickJumps verifies clicking a dot jumps to that slide.
func TestOnboardingPaginationClickJumps(t *testing.T) {
	m := newTestOnboarding(nil)
	m = clickOnboarding(t, m, "pagination-dot-2")
	if m.flow.Index() != 2 {
		t.Fatalf("expected jump to last slide, got %d", m.flow.Index())
	}
	dot, _ := m.frame().find("pagination-dot-2")
	if !dot.Active {
		t.Fatal("expected last dot active")
	}
}

// TestOnboardingFinishCallsOncePerPress verifies every finish press runs the callback exactly once.
func TestOnboardingFinishCallsOncePerPress(t *testing.T) {
	calls := 0
	m := newTestOnboarding(func() { calls++ })

	m = pressOnboarding(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if calls != 0 || m.completed {
		t.Fatalf("expected enter to advance without finishing, calls=%d", calls)
	}
	m = pressOnboarding(m, keyRune('l'))
	m = clickOnboarding(t, m, "finish-button")
	if calls != 1 || !m.completed {
		t.Fatalf("expected one call after first press, calls=%d completed=%v", calls, m.completed)
	}
	m = pressOnboarding(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if calls != 2 {
		t.Fatalf("expected a second call for a second press, got %d", calls)
	}
}

// TestOnboardingFinishWithoutCallback verifies finishing without a callback is safe.
func TestOnboardingFinishWithoutCallback(t *testing.T) {
	m := newTestOnboarding(nil)
	m = clickOnboarding(t, m, "pagination-dot-2")
	m = clickOnboarding(t, m, "finish-button")
	if !m.completed {
		t.Fatal("expected completion without a callback")
	}
}

// TestOnboardingSingleSlide verifies a one-slide walkthrough offers only the finish control.
func TestOnboardingSingleSlide(t *testing.T) {
	calls := 0
	m := newTestOnboarding(func() { calls++ }, domain.Slide{Title: "Only", Description: "One slide", Emoji: "⭐"})
	f := m.frame()
	if f.has("back-button") || f.has("next-button") || !f.has("finish-button") {
		t.Fatal("expected only finish control on a single slide")
	}
	m = pressOnboarding(m, keyRune('l'), tea.KeyPressMsg{Code: tea.KeyEnter})
	if calls != 1 || m.flow.Index() != 0 {
		t.Fatalf("unexpected single slide state calls=%d index=%d", calls, m.flow.Index())
	}
}

// TestOnboardingQuitAndHelpKeys verifies q quits and ? expands the help line.
func TestOnboardingQuitAndHelpKeys(t *testing.T) {
	m := newTestOnboarding(nil)
	m, cmd := m.update(keyRune('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected quit msg, got %T", cmd())
	}
	m = pressOnboarding(m, keyRune('?'))
	if !m.help.ShowAll {
		t.Fatal("expected full help after ?")
	}
}
