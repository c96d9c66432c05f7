package decorify

import "errors"

// Sentinel errors for rule store mutations.
var (
	// ErrRuleIndex indicates a rule index outside the current list.
	ErrRuleIndex = errors.New("rule index out of range")
	// ErrEmptyPattern indicates a rule with an empty pattern.
	ErrEmptyPattern = errors.New("rule pattern is empty")
	// ErrEmptyMarker indicates a rule with an empty marker.
	ErrEmptyMarker = errors.New("rule marker is empty")
)
