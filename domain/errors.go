package domain

import "errors"

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session has expired")
	ErrNoSessionToken  = errors.New("no session token held")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Storage errors
var (
	ErrRecordNotFound = errors.New("record not found")
)

// OAuth errors
var (
	ErrExchangeFailed = errors.New("identity exchange failed")
	ErrNoProfileEmail = errors.New("no email in provider profile")
)
