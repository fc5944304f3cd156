package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong email or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrTokenRevoked     = errors.New("token revoked")
	ErrValidation       = errors.New("validation error")

	ErrOwnerNotFound   = errors.New("owner doesn't exists")
	ErrWrongOwner      = errors.New("resource belongs to another user")
	ErrProfileNotFound = errors.New("profile doesn't exists")
	ErrLogNotFound     = errors.New("craving log doesn't exists")
	ErrLogExists       = errors.New("craving log already exists")

	ErrUnparseableTime    = errors.New("unparseable time")
	ErrInvalidSchedule    = errors.New("schedule can't be configured")
	ErrOverrideNotAllowed = errors.New("override not allowed in lockdown")
	ErrInCheatWindow      = errors.New("inside cheat meal window")
)
