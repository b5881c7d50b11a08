package service

import "errors"

// Sentinel kinds for query errors.
var (
	ErrNotStarted   = errors.New("service not started")
	ErrUnknownBoard = errors.New("unknown board")
	ErrNotFound     = errors.New("not found")
	ErrInvalidLimit = errors.New("invalid board limit")
)
