package client

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// Tag types used by the built-in endpoints.
const (
	TagTypeProjects = "Projects"
	TagTypeTasks    = "Tasks"
	TagTypeUsers    = "Users"
	TagTypeTeams    = "Teams"
)

// Tag labels a cached query result. A zero ID denotes the generic tag for
// the whole type; a non-zero ID scopes the tag to a single record.
type Tag struct {
	Type string
	ID   uint64
}

// matches reports whether an invalidation of tag inv reaches an entry
// carrying tag t. A generic entry tag subscribes to every invalidation of
// its type, and a generic invalidation reaches every entry of its type.
func (t Tag) matches(inv Tag) bool {
	if t.Type != inv.Type {
		return false
	}
	return t.ID == 0 || inv.ID == 0 || t.ID == inv.ID
}

type cacheEntry struct {
	value any
	tags  []Tag
	stale bool
}

// queryCache is a read-through cache keyed by (endpoint, parameters).
// Entries carry tags; invalidating a tag marks every matching entry stale
// so the next read refetches. The singleflight group guarantees at most
// one in-flight request per key.
type queryCache struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
	group   singleflight.Group
}

func newQueryCache() *queryCache {
	return &queryCache{
		entries: make(map[string]*cacheEntry),
	}
}

// get returns the cached value for key when present and fresh.
func (qc *queryCache) get(key string) (any, bool) {
	qc.mu.Lock()
	defer qc.mu.Unlock()

	entry, ok := qc.entries[key]
	if !ok || entry.stale {
		return nil, false
	}
	return entry.value, true
}

// set stores a value under key with its tag set.
func (qc *queryCache) set(key string, value any, tags []Tag) {
	qc.mu.Lock()
	defer qc.mu.Unlock()

	qc.entries[key] = &cacheEntry{
		value: value,
		tags:  tags,
	}
}

// invalidate marks stale every entry carrying a tag matched by any of the
// given tags.
func (qc *queryCache) invalidate(tags []Tag) {
	qc.mu.Lock()
	defer qc.mu.Unlock()

	for _, entry := range qc.entries {
		if entry.stale {
			continue
		}
	match:
		for _, entryTag := range entry.tags {
			for _, inv := range tags {
				if entryTag.matches(inv) {
					entry.stale = true
					break match
				}
			}
		}
	}
}

// clear drops every entry. Used when the session identity changes.
func (qc *queryCache) clear() {
	qc.mu.Lock()
	defer qc.mu.Unlock()

	qc.entries = make(map[string]*cacheEntry)
}
