// Package draft holds the in-memory model of a recipe under composition: the
// option-backed fields, the growable ingredient and step lists, the submit
// gate, and the multipart encoder that turns a valid draft into the payload
// the creation endpoint accepts.
package draft

import (
	"errors"
	"strings"
)

// Option is one selectable catalog entry, as served by the option endpoints.
type Option struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// ToTasteLabel is the sentinel measure label whose lines carry no amount.
const ToTasteLabel = "To taste"

// LineItem bundles one ingredient line: selection, free-text amount and
// measure unit travel together, so the line lists can never drift out of
// alignment the way index-parallel arrays could.
type LineItem struct {
	Ingredient *Option
	Amount     string
	Measure    *Option
}

// AmountRequired reports whether the line's amount input applies. Lines
// measured "to taste" take no numeric amount.
func (l LineItem) AmountRequired() bool {
	return l.Measure == nil || !strings.EqualFold(l.Measure.Label, ToTasteLabel)
}

const (
	// minLines is the floor for both lists: a draft always shows at least
	// two ingredient lines and two step editors.
	minLines = 2

	minPortion = 1
	maxPortion = 12
)

var (
	ErrLineFloor   = errors.New("at least two ingredient lines are required")
	ErrStepFloor   = errors.New("at least two cooking steps are required")
	ErrLineIndex   = errors.New("ingredient line index out of range")
	ErrNotLastStep = errors.New("only the last cooking step can be removed")
)

// Draft is the client-held recipe under construction. It lives only in the
// authoring session and is discarded after a successful submission.
type Draft struct {
	Title       string
	KitchenID   int
	CategoryID  int
	CookingTime string // minutes, kept as entered
	Portion     int
	Weight      string // grams, kept as entered
	Lines       []LineItem
	Steps       []string
	Image       []byte
	ImageName   string
}

// New returns an empty draft with the two mandatory ingredient lines and
// step editors already present and a single portion selected.
func New() *Draft {
	return &Draft{
		Portion: minPortion,
		Lines:   make([]LineItem, minLines),
		Steps:   make([]string, minLines),
	}
}

// AddLine appends one empty ingredient line.
func (d *Draft) AddLine() {
	d.Lines = append(d.Lines, LineItem{})
}

// RemoveLine splices out the line at index i. Removal is refused while the
// draft is at the two-line floor.
func (d *Draft) RemoveLine(i int) error {
	if len(d.Lines) <= minLines {
		return ErrLineFloor
	}
	if i < 0 || i >= len(d.Lines) {
		return ErrLineIndex
	}
	d.Lines = append(d.Lines[:i:i], d.Lines[i+1:]...)
	return nil
}

// AddStep appends one empty cooking step.
func (d *Draft) AddStep() {
	d.Steps = append(d.Steps, "")
}

// RemoveStep removes the step at index i. Unlike ingredient lines, steps are
// only removable from the end, and never below the two-step floor.
func (d *Draft) RemoveStep(i int) error {
	if len(d.Steps) <= minLines {
		return ErrStepFloor
	}
	if i != len(d.Steps)-1 {
		return ErrNotLastStep
	}
	d.Steps = d.Steps[:i]
	return nil
}

// IncrementPortion raises the portion count, capped at twelve.
func (d *Draft) IncrementPortion() {
	if d.Portion < maxPortion {
		d.Portion++
	}
}

// DecrementPortion lowers the portion count, never below one.
func (d *Draft) DecrementPortion() {
	if d.Portion > minPortion {
		d.Portion--
	}
}

// Reset returns the draft to its initial empty state, as after a successful
// submission.
func (d *Draft) Reset() {
	*d = *New()
}
