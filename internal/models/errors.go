package models

import "errors"

// Custom errors
var (
	ErrUnknownStrategy    = errors.New("unknown strategy")
	ErrUnknownFundManager = errors.New("unknown fund manager")
	ErrAmbiguousRanking   = errors.New("ambiguous predicted ranking")
	ErrInvalidHorse       = errors.New("invalid horse")
	ErrInvalidTicket      = errors.New("invalid ticket")
	ErrNotFound           = errors.New("record not found")
)
