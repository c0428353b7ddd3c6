package services

import "errors"

// Service-level failures the HTTP layer maps to statuses. Anything else that
// comes out of a service is a store error and surfaces as a 500.
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrBattleNotFound       = errors.New("battle not found or already has an opponent")
	ErrSelfJoin             = errors.New("creator cannot join their own battle")
	ErrBattleNotCancellable = errors.New("battle is no longer waiting and cannot be cancelled")
)
