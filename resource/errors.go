package resource

import "errors"

var (
	// ErrUnknownAttribute is returned when a name is not part of the kind's schema.
	ErrUnknownAttribute = errors.New("unknown attribute")

	// ErrAttributeType is returned by typed getters when a cached value has an unexpected type.
	ErrAttributeType = errors.New("unexpected attribute type")

	// ErrNoOwner is returned when a repository's owner login is not known.
	ErrNoOwner = errors.New("repository owner is unknown")

	// ErrRepoNameRequired is returned by CreateRepo when no name was given.
	ErrRepoNameRequired = errors.New("repository name is required")

	// ErrBranchNotFound is returned when a repository has no branch of the requested name.
	ErrBranchNotFound = errors.New("branch not found")
)
