package service

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mishasvintus/gamenight/internal/repository"
)

// Error kinds. Every error returned by this package matches exactly one of them via errors.Is.
var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrBadInput           = errors.New("bad input")
	ErrConflict           = errors.New("conflict")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrLookupFailure      = errors.New("library lookup failed")
)

var (
	ErrGroupNotFound      = fmt.Errorf("group %w", ErrNotFound)
	ErrUserNotFound       = fmt.Errorf("user %w", ErrNotFound)
	ErrMembershipNotFound = fmt.Errorf("membership %w", ErrNotFound)
	ErrInviteNotFound     = fmt.Errorf("pending invite %w", ErrNotFound)
	ErrMembershipExists   = fmt.Errorf("membership %w", ErrAlreadyExists)
	ErrGroupNameRequired  = fmt.Errorf("%w: group name is required", ErrBadInput)
	ErrConcurrentUpdate   = fmt.Errorf("%w: membership was modified concurrently, retry", ErrConflict)
)

// storageError classifies an error returned by a store call.
// sql.ErrNoRows becomes notFound; anything unrecognised is reported as storage unavailable.
func storageError(op string, err error, notFound error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows) && notFound != nil:
		return notFound
	case errors.Is(err, repository.ErrDuplicate):
		return ErrMembershipExists
	case errors.Is(err, repository.ErrStaleVersion):
		return ErrConcurrentUpdate
	default:
		return fmt.Errorf("%w: %s: %w", ErrStorageUnavailable, op, err)
	}
}
