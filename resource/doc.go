// Package resource models the remote resource graph (users, repositories,
// branches, commits and people) as lazily loaded entities.
//
// Every entity keeps an identity value, which is always known and never
// fetched, and an attribute cache. Reading an attribute that is not cached
// triggers one fetch of the entity's full record, which replaces the whole
// cache; Reload discards the cache and fetches again. Relationship accessors
// build further entities that share the same Client.
//
// Entities are not safe for concurrent use.
package resource
