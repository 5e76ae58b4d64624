package tui

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"charm.land/bubbles/v2/key"
)

// homeKeyMap represents task-list key bindings.
type homeKeyMap struct {
	submit     key.Binding
	leaveInput key.Binding
	focusInput key.Binding
	moveUp     key.Binding
	moveDown   key.Binding
	toggle     key.Binding
	deleteTask key.Binding
	copyTitle  key.Binding
	toggleHelp key.Binding
	quit       key.Binding
}

// newHomeKeyMap constructs home key map.
func newHomeKeyMap() homeKeyMap {
	return homeKeyMap{
		submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add task")),
		leaveInput: key.NewBinding(key.WithKeys("tab", "esc", "down"), key.WithHelp("tab/esc", "go to list")),
		focusInput: key.NewBinding(key.WithKeys("a", "i", "tab"), key.WithHelp("a/i", "new task")),
		moveUp:     key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		moveDown:   key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		toggle:     key.NewBinding(key.WithKeys(" ", "space", "enter", "x"), key.WithHelp("space", "toggle done")),
		deleteTask: key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		copyTitle:  key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy title")),
		toggleHelp: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

// applyConfig overrides configurable bindings; blank values keep the built-in keys.
func (k *homeKeyMap) applyConfig(cfg KeyConfig) {
	if strings.TrimSpace(cfg.Toggle) != "" || cfg.Toggle == " " {
		configureBinding(&k.toggle, cfg.Toggle, "space", "toggle done")
	}
	if strings.TrimSpace(cfg.Delete) != "" {
		configureBinding(&k.deleteTask, cfg.Delete, "d", "delete")
	}
	if strings.TrimSpace(cfg.FocusInput) != "" {
		configureBinding(&k.focusInput, cfg.FocusInput, "a", "new task")
	}
	if strings.TrimSpace(cfg.Copy) != "" {
		configureBinding(&k.copyTitle, cfg.Copy, "y", "copy title")
	}
}

// ShortHelp handles short help.
func (k homeKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.submit, k.focusInput, k.toggle, k.deleteTask, k.toggleHelp, k.quit}
}

// FullHelp handles full help.
func (k homeKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.submit, k.leaveInput, k.focusInput},
		{k.moveUp, k.moveDown, k.toggle, k.deleteTask, k.copyTitle},
		{k.toggleHelp, k.quit},
	}
}

// onboardingKeyMap represents walkthrough key bindings.
type onboardingKeyMap struct {
	next       key.Binding
	back       key.Binding
	primary    key.Binding
	toggleHelp key.Binding
	quit       key.Binding
}

// newOnboardingKeyMap constructs onboarding key map.
func newOnboardingKeyMap() onboardingKeyMap {
	return onboardingKeyMap{
		next:       key.NewBinding(key.WithKeys("right", "l", "n"), key.WithHelp("→/l", "next")),
		back:       key.NewBinding(key.WithKeys("left", "h", "b"), key.WithHelp("←/h", "back")),
		primary:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "continue")),
		toggleHelp: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

// applyConfig overrides configurable bindings; blank values keep the built-in keys.
func (k *onboardingKeyMap) applyConfig(cfg KeyConfig) {
	if strings.TrimSpace(cfg.Next) != "" {
		configureBinding(&k.next, cfg.Next, "l", "next")
	}
	if strings.TrimSpace(cfg.Back) != "" {
		configureBinding(&k.back, cfg.Back, "h", "back")
	}
}

// ShortHelp handles short help.
func (k onboardingKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.back, k.next, k.primary, k.quit}
}

// FullHelp handles full help.
func (k onboardingKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.back, k.next, k.primary},
		{k.toggleHelp, k.quit},
	}
}

// parseBindingKeys converts one configured key into matcher keys plus the help label.
func parseBindingKeys(raw, fallback string) ([]string, string) {
	if raw != " " {
		raw = strings.TrimSpace(raw)
	}
	if raw == "" {
		raw = fallback
	}
	if raw == " " || strings.EqualFold(raw, "space") {
		return []string{" ", "space"}, "space"
	}
	if utf8.RuneCountInString(raw) == 1 {
		r, _ := utf8.DecodeRuneInString(raw)
		if unicode.IsUpper(r) {
			return []string{raw, "shift+" + strings.ToLower(raw)}, raw
		}
		return []string{raw}, raw
	}
	return []string{strings.ToLower(raw)}, raw
}

// configureBinding applies one configured key override to a binding.
func configureBinding(b *key.Binding, raw, fallback, desc string) {
	keys, helpKey := parseBindingKeys(raw, fallback)
	b.SetKeys(keys...)
	b.SetHelp(helpKey, desc)
}
