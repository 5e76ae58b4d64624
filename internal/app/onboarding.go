package app

import "github.com/evanschultz/demoapp/internal/domain"

// Onboarding is the slide-index state machine behind the onboarding walkthrough.
// The index is always clamped to [0, last]; there is no state past the last slide.
type Onboarding struct {
	slides     []domain.Slide
	index      int
	onComplete func()
}

// NewOnboarding constructs a new value for this package. An empty or all-blank sequence falls back to the defaults.
func NewOnboarding(slides []domain.Slide, onComplete func()) Onboarding {
	normalized, err := domain.NormalizeSlides(slides)
	if err != nil {
		normalized = domain.DefaultSlides()
	}
	return Onboarding{
		slides:     normalized,
		onComplete: onComplete,
	}
}

// Next advances one slide. It reports false on the last slide.
func (o *Onboarding) Next() bool {
	return o.GoTo(o.index + 1)
}

// Back steps one slide back. It reports false on the first slide.
func (o *Onboarding) Back() bool {
	return o.GoTo(o.index - 1)
}

// GoTo moves to idx clamped to the valid range and reports whether the index changed.
func (o *Onboarding) GoTo(idx int) bool {
	next := min(max(idx, 0), o.lastIndex())
	if next == o.index {
		return false
	}
	o.index = next
	return true
}

// Finish invokes the completion callback once per call while the last slide is showing.
func (o *Onboarding) Finish() bool {
	if !o.IsLast() {
		return false
	}
	if o.onComplete != nil {
		o.onComplete()
	}
	return true
}

// Current returns the slide at the current index.
func (o Onboarding) Current() domain.Slide {
	return o.slides[o.index]
}

// Index returns the current slide index.
func (o Onboarding) Index() int {
	return o.index
}

// Len returns the number of slides.
func (o Onboarding) Len() int {
	return len(o.slides)
}

// Slides returns a copy of the slide sequence.
func (o Onboarding) Slides() []domain.Slide {
	return append([]domain.Slide(nil), o.slides...)
}

// CanGoBack reports whether a previous slide exists.
func (o Onboarding) CanGoBack() bool {
	return o.index > 0
}

// IsLast reports whether the last slide is showing.
func (o Onboarding) IsLast() bool {
	return o.index == o.lastIndex()
}

func (o Onboarding) lastIndex() int {
	return len(o.slides) - 1
}
