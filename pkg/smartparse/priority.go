package smartparse

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Priority is the ordinal urgency of a task. Higher values sort first.
type Priority int

const (
	PriorityLow    Priority = 0
	PriorityMedium Priority = 1
	PriorityHigh   Priority = 2
)

// String returns the stored name: LOW, MEDIUM or HIGH.
func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "LOW"
	case PriorityHigh:
		return "HIGH"
	default:
		return "MEDIUM"
	}
}

// DisplayName returns the human label: Low, Medium or High.
func (p Priority) DisplayName() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityHigh:
		return "High"
	default:
		return "Medium"
	}
}

// PriorityFromValue maps a stored numeric level back to a Priority; unknown values become MEDIUM.
func PriorityFromValue(v int) Priority {
	switch Priority(v) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(v)
	default:
		return PriorityMedium
	}
}

// ParsePriority accepts a name (any case) or a numeric level.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "LOW", "0":
		return PriorityLow, nil
	case "MEDIUM", "1", "":
		return PriorityMedium, nil
	case "HIGH", "2":
		return PriorityHigh, nil
	}
	return PriorityMedium, fmt.Errorf("unknown priority %q", s)
}

// MarshalJSON implements json.Marshaler.
func (p Priority) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON implements json.Unmarshaler. Both names and numbers are accepted.
func (p *Priority) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		parsed, err := ParsePriority(name)
		if err != nil {
			return err
		}
		*p = parsed
		return nil
	}

	var level int
	if err := json.Unmarshal(data, &level); err != nil {
		return fmt.Errorf("invalid priority %s", string(data))
	}
	*p = PriorityFromValue(level)
	return nil
}
