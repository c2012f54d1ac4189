package domain

import "errors"

var (
	ErrNoRosterLoaded     = errors.New("no roster loaded")
	ErrEntryNotFound      = errors.New("roster entry not found")
	ErrSessionAlreadyOpen = errors.New("disambiguation session already open")
	ErrSessionNotFound    = errors.New("disambiguation session not found")
	ErrPresentationFailed = errors.New("presentation failed")
	ErrInvalidSelection   = errors.New("invalid selection")
	ErrMessageNotFound    = errors.New("history message not found")
)
