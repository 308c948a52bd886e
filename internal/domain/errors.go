package domain

import "errors"

var (
	// ErrUnknownControl is returned for events naming a checkbox the
	// definition does not have.
	ErrUnknownControl = errors.New("unknown control")
	// ErrUnknownRadio is returned for events naming a missing radio.
	ErrUnknownRadio = errors.New("unknown radio")
	// ErrUnknownChoice is returned when a radio is set to a value it does
	// not offer.
	ErrUnknownChoice = errors.New("unknown choice")
	// ErrSessionNotFound is returned by chooserd for unknown session IDs.
	ErrSessionNotFound = errors.New("session not found")
	// ErrInvalidDefinition wraps every definition validation failure.
	ErrInvalidDefinition = errors.New("invalid definition")
)
