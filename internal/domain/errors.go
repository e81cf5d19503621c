package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrCollectionNotFound = errors.New("collection not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrImageNotFound      = errors.New("image not found")
	ErrCannotRemoveOwner  = errors.New("cannot remove owner from collection")
	ErrSelfRelation       = errors.New("collection cannot be related to itself")
	ErrAlreadyRelated     = errors.New("collections are already related")
	ErrUnauthorized       = errors.New("unauthorized")
)
