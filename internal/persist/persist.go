// Package persist saves nested plan drafts against a backend whose write
// API is shallow: one create/update endpoint per entity level, no bulk
// nested create. Children are therefore saved one at a time, in draft
// order, each call awaited before the next. Sibling order is significant
// and some backends assign it by arrival sequence.
package persist

import (
	"errors"

	"github.com/gymdesk/gymdesk/internal/api"
)

// State tracks where a save operation currently is.
type State string

const (
	StateIdle                State = "idle"
	StateSavingParent        State = "saving_parent"
	StateSavingChildren      State = "saving_children"
	StateSavingGrandchildren State = "saving_grandchildren"
	StateDone                State = "done"
	StateFailed              State = "failed"
)

// Notifier receives the single user-facing outcome of a save.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}

// userMessage picks the text shown in the failure toast: the backend's
// message when we have one, otherwise the generic fallback.
func userMessage(err error) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return api.GenericErrorMessage
}
