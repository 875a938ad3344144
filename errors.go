package xychart

import (
	"fmt"
)

type ValidationError struct {
	SpecID   string
	Row      int
	Accessor string
	Value    any
	Reason   string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("spec %s: row %d: %s: %s (%v)", e.SpecID, e.Row, e.Accessor, e.Reason, e.Value)
}

type DomainError struct {
	Axis    string
	GroupID string
	Message string
}

func (e DomainError) Error() string {
	if e.GroupID != "" {
		return fmt.Sprintf("%s domain (group %s): %s", e.Axis, e.GroupID, e.Message)
	}
	return fmt.Sprintf("%s domain: %s", e.Axis, e.Message)
}
