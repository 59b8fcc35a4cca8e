package journal

import "fmt"

// ValidationError reports a draft that cannot be saved. The store is never
// mutated when one is returned.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("journal: %s", e.Reason)
}

// NotFoundError reports an operation aimed at an entry that is not selected
// or not present.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return "journal: no entry selected"
	}
	return fmt.Sprintf("journal: no entry with id %s", e.ID)
}
