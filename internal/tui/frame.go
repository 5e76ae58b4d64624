package tui

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// element is one identified piece of a rendered frame. Text is the plain queryable value; Display, when set,
// replaces the styled Text in the rendered output.
type element struct {
	ID      string
	Text    string
	Display string
	Style   lipgloss.Style
	Active  bool
}

// render returns the terminal content for the element.
func (e element) render() string {
	if e.Display != "" {
		return e.Display
	}
	return e.Style.Render(e.Text)
}

// frameSection names a contiguous run of frame lines, such as a list container.
type frameSection struct {
	id    string
	start int
	end   int
}

// hitBox records where one identified element landed in the rendered output.
type hitBox struct {
	id string
	x  int
	y  int
	w  int
	h  int
}

// frame is the identified view tree a screen renders into. Lines render top to bottom; the elements of one
// line are joined horizontally with a one-column gap.
type frame struct {
	id       string
	lines    [][]element
	sections []frameSection
	open     []int
}

// newFrame constructs an empty frame rooted at id.
func newFrame(id string) *frame {
	return &frame{id: id}
}

// line appends one row of elements.
func (f *frame) line(elements ...element) {
	f.lines = append(f.lines, elements)
}

// blank appends an empty spacer row.
func (f *frame) blank() {
	f.lines = append(f.lines, nil)
}

// begin opens a named section at the next line.
func (f *frame) begin(id string) {
	f.sections = append(f.sections, frameSection{id: id, start: len(f.lines), end: len(f.lines)})
	f.open = append(f.open, len(f.sections)-1)
}

// end closes the most recently opened section.
func (f *frame) end() {
	if len(f.open) == 0 {
		return
	}
	idx := f.open[len(f.open)-1]
	f.open = f.open[:len(f.open)-1]
	f.sections[idx].end = len(f.lines)
}

// find returns the element with the given id.
func (f *frame) find(id string) (element, bool) {
	if id == "" {
		return element{}, false
	}
	for _, line := range f.lines {
		for _, el := range line {
			if el.ID == id {
				return el, true
			}
		}
	}
	return element{}, false
}

// has reports whether id names the frame root, a section or an element.
func (f *frame) has(id string) bool {
	if id == "" {
		return false
	}
	if id == f.id {
		return true
	}
	if _, ok := f.section(id); ok {
		return true
	}
	_, ok := f.find(id)
	return ok
}

// ids returns element ids starting with prefix in render order.
func (f *frame) ids(prefix string) []string {
	out := []string{}
	for _, line := range f.lines {
		for _, el := range line {
			if el.ID != "" && strings.HasPrefix(el.ID, prefix) {
				out = append(out, el.ID)
			}
		}
	}
	return out
}

// containsText reports whether any element carries exactly text.
func (f *frame) containsText(text string) bool {
	for _, line := range f.lines {
		for _, el := range line {
			if el.Text == text {
				return true
			}
		}
	}
	return false
}

// section returns the named section.
func (f *frame) section(id string) (frameSection, bool) {
	for _, s := range f.sections {
		if s.id == id {
			return s, true
		}
	}
	return frameSection{}, false
}

// sectionText joins the plain text of every element inside the named section, one line per row.
func (f *frame) sectionText(id string) string {
	s, ok := f.section(id)
	if !ok {
		return ""
	}
	rows := make([]string, 0, s.end-s.start)
	for _, line := range f.lines[s.start:s.end] {
		parts := make([]string, 0, len(line))
		for _, el := range line {
			if el.Text != "" {
				parts = append(parts, el.Text)
			}
		}
		rows = append(rows, strings.Join(parts, " "))
	}
	return strings.Join(rows, "\n")
}

// render draws the frame and returns the hit boxes of every identified element, relative to the frame origin.
func (f *frame) render() (string, []hitBox) {
	rows := make([]string, 0, len(f.lines))
	boxes := []hitBox{}
	y := 0
	for _, line := range f.lines {
		if len(line) == 0 {
			rows = append(rows, "")
			y++
			continue
		}
		parts := make([]string, 0, len(line)*2)
		x := 0
		for idx, el := range line {
			if idx > 0 {
				parts = append(parts, " ")
				x++
			}
			rendered := el.render()
			w := lipgloss.Width(rendered)
			h := lipgloss.Height(rendered)
			if el.ID != "" {
				boxes = append(boxes, hitBox{id: el.ID, x: x, y: y, w: w, h: h})
			}
			parts = append(parts, rendered)
			x += w
		}
		joined := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
		rows = append(rows, joined)
		y += lipgloss.Height(joined)
	}
	return strings.Join(rows, "\n"), boxes
}

// hitTest returns the id of the element covering the given frame-relative cell.
func hitTest(boxes []hitBox, x, y int) (string, bool) {
	for _, box := range boxes {
		if x >= box.x && x < box.x+box.w && y >= box.y && y < box.y+box.h {
			return box.id, true
		}
	}
	return "", false
}
