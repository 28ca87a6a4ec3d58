package entities

import (
	gitforgeEntities "github.com/rios0rios0/gitforge/pkg/global/domain/entities"
)

// Repository is the provider-neutral description of a remote repository.
type Repository = gitforgeEntities.Repository
