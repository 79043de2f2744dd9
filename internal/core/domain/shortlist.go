package domain

import (
	"fmt"
	"time"
)

type ToggleAction string

const (
	ActionAdd    ToggleAction = "add"
	ActionRemove ToggleAction = "remove"
)

// A ToggleRequest is a validated shortlist mutation.
type ToggleRequest struct {
	ProductID string
	Action    ToggleAction
}

func NewToggleRequest(productID, action string) (ToggleRequest, error) {
	if productID == "" {
		return ToggleRequest{}, fmt.Errorf("%w: product id is empty", ErrInvalidRequest)
	}
	a := ToggleAction(action)
	if a != ActionAdd && a != ActionRemove {
		return ToggleRequest{}, fmt.Errorf("%w: unknown action %q", ErrInvalidRequest, action)
	}
	return ToggleRequest{ProductID: productID, Action: a}, nil
}

type ToggleOutcome int

const (
	ToggleCreated ToggleOutcome = iota + 1
	ToggleAlreadyExists
	ToggleRemoved
)

func (o ToggleOutcome) String() string {
	switch o {
	case ToggleCreated:
		return "created"
	case ToggleAlreadyExists:
		return "already exists"
	case ToggleRemoved:
		return "removed"
	}
	return "unknown"
}

// A ShortlistEvent records an applied toggle.
type ShortlistEvent struct {
	UserID     string
	ProductID  string
	Action     ToggleAction
	Changed    bool
	OccurredAt time.Time
}
