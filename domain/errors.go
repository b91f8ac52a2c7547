package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given param is not valid")
	// ErrInvalidOperation will throw if the action is rejected by a business rule,
	// e.g. an account trying to follow itself
	ErrInvalidOperation = errors.New("operation is not allowed")
	// ErrForbidden will throw if the caller does not own the mutated item
	ErrForbidden = errors.New("you are not allowed to modify this item")
	// ErrStorageUnavailable will throw on transient storage I/O failures
	ErrStorageUnavailable = errors.New("storage is temporarily unavailable")
	// ErrCacheMiss signals the advisory cache holds no entry for the key
	ErrCacheMiss = errors.New("cache miss")
	// ErrCacheIncomplete signals the cached set is truncated, so absence
	// from it proves nothing; only the edge table can answer
	ErrCacheIncomplete = errors.New("cached set is incomplete")
)
