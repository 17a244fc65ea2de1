package points

import (
	"github.com/KirkDiggler/grimdank-editor/internal/errors"
)

// Mode says whether an entity's point value is typed in or computed
type Mode int

const (
	// Manual: no rules attached, the value is editable
	Manual Mode = iota
	// Derived: rules attached, the value is base plus rule costs and read-only
	Derived
)

// String returns the mode name
func (m Mode) String() string {
	switch m {
	case Manual:
		return "manual"
	case Derived:
		return "derived"
	default:
		return "unknown"
	}
}

// Field is the point value of an entity under edit. It keeps the last
// manually entered value as the base so that detaching every rule restores
// exactly that value.
type Field struct {
	mode   Mode
	manual int
}

// NewField creates a field in Manual mode holding manual
func NewField(manual int) *Field {
	if manual < 0 {
		manual = 0
	}
	return &Field{mode: Manual, manual: manual}
}

// Mode returns the current mode
func (f *Field) Mode() Mode {
	return f.mode
}

// Base returns the retained manual value
func (f *Field) Base() int {
	return f.manual
}

// Sync moves the field between modes after the rule count changed
func (f *Field) Sync(ruleCount int) {
	if ruleCount > 0 {
		f.mode = Derived
		return
	}
	f.mode = Manual
}

// Set writes a manual value. It fails while the field is derived.
func (f *Field) Set(value int) error {
	if f.mode == Derived {
		return errors.FailedPrecondition("points are derived from attached rules").
			WithMeta("mode", f.mode.String())
	}
	if value < 0 {
		return errors.InvalidArgumentf("points cannot be negative: %d", value)
	}
	f.manual = value
	return nil
}

// Value returns what the field displays
func (f *Field) Value(rules []RuleCost) int {
	if f.mode == Manual {
		return f.manual
	}
	return TotalPoints(f.manual, rules)
}
