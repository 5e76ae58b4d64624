package domain

import "strings"

// Slide is one page of the onboarding walkthrough. Its index is its position in the sequence.
type Slide struct {
	Title       string
	Description string
	Emoji       string
}

// defaultSlides stores the built-in onboarding sequence.
var defaultSlides = []Slide{
	{
		Title:       "Welcome to Demo App",
		Description: "Learn how to write effective unit tests for your app",
		Emoji:       "👋",
	},
	{
		Title:       "Test with Confidence",
		Description: "Catch regressions early with **fast**, focused tests",
		Emoji:       "✅",
	},
	{
		Title:       "CI/CD Integration",
		Description: "Run every test on each push and ship with peace of mind",
		Emoji:       "🚀",
	},
}

// DefaultSlides returns a copy of the built-in onboarding sequence.
func DefaultSlides() []Slide {
	return append([]Slide(nil), defaultSlides...)
}

// NormalizeSlides trims slide fields and rejects sequences that would leave the walkthrough empty.
func NormalizeSlides(in []Slide) ([]Slide, error) {
	out := make([]Slide, 0, len(in))
	for _, slide := range in {
		slide.Title = strings.TrimSpace(slide.Title)
		slide.Description = strings.TrimSpace(slide.Description)
		slide.Emoji = strings.TrimSpace(slide.Emoji)
		if slide.Title == "" {
			continue
		}
		out = append(out, slide)
	}
	if len(out) == 0 {
		return nil, ErrNoSlides
	}
	return out, nil
}
