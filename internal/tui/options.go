package tui

import "github.com/evanschultz/demoapp/internal/domain"

// KeyConfig holds user key overrides. Blank fields keep the built-in bindings.
type KeyConfig struct {
	Toggle     string
	Delete     string
	FocusInput string
	Copy       string
	Next       string
	Back       string
}

type Option func(*Model)

// WithOnboarding toggles whether the walkthrough shows before the task list.
func WithOnboarding(enabled bool) Option {
	return func(m *Model) {
		m.showOnboarding = enabled
	}
}

// WithOnComplete sets the callback invoked each time the walkthrough's finish control is pressed.
func WithOnComplete(fn func()) Option {
	return func(m *Model) {
		m.onComplete = fn
	}
}

func WithSlides(slides []domain.Slide) Option {
	return func(m *Model) {
		m.slides = append([]domain.Slide(nil), slides...)
	}
}

func WithKeyConfig(cfg KeyConfig) Option {
	return func(m *Model) {
		m.keyConfig = cfg
	}
}

// WithClipboard replaces the clipboard writer used by the copy-title action.
func WithClipboard(fn func(string) error) Option {
	return func(m *Model) {
		if fn != nil {
			m.copyText = fn
		}
	}
}

// WithMarkdownStyle selects the glamour standard style used for slide descriptions.
func WithMarkdownStyle(style string) Option {
	return func(m *Model) {
		m.markdownStyle = style
	}
}
