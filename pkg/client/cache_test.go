package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagMatches(t *testing.T) {
	tests := []struct {
		name  string
		entry Tag
		inv   Tag
		want  bool
	}{
		{
			name:  "same type and id",
			entry: Tag{Type: TagTypeTasks, ID: 1},
			inv:   Tag{Type: TagTypeTasks, ID: 1},
			want:  true,
		},
		{
			name:  "same type different id",
			entry: Tag{Type: TagTypeTasks, ID: 1},
			inv:   Tag{Type: TagTypeTasks, ID: 2},
			want:  false,
		},
		{
			name:  "different type same id",
			entry: Tag{Type: TagTypeTasks, ID: 1},
			inv:   Tag{Type: TagTypeProjects, ID: 1},
			want:  false,
		},
		{
			name:  "generic entry tag catches specific invalidation",
			entry: Tag{Type: TagTypeTasks},
			inv:   Tag{Type: TagTypeTasks, ID: 7},
			want:  true,
		},
		{
			name:  "generic invalidation reaches specific entry tag",
			entry: Tag{Type: TagTypeTasks, ID: 7},
			inv:   Tag{Type: TagTypeTasks},
			want:  true,
		},
		{
			name:  "generic both",
			entry: Tag{Type: TagTypeProjects},
			inv:   Tag{Type: TagTypeProjects},
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entry.matches(tt.inv))
		})
	}
}

func TestQueryCache_GetSet(t *testing.T) {
	qc := newQueryCache()

	_, ok := qc.get("tasks?projectId=1")
	assert.False(t, ok)

	qc.set("tasks?projectId=1", "value", []Tag{{Type: TagTypeTasks, ID: 1}})

	got, ok := qc.get("tasks?projectId=1")
	assert.True(t, ok)
	assert.Equal(t, "value", got)
}

func TestQueryCache_InvalidateMarksMatchingEntriesStale(t *testing.T) {
	qc := newQueryCache()
	qc.set("a", 1, []Tag{{Type: TagTypeTasks, ID: 1}, {Type: TagTypeTasks, ID: 2}})
	qc.set("b", 2, []Tag{{Type: TagTypeTasks, ID: 3}})
	qc.set("c", 3, []Tag{{Type: TagTypeProjects}})

	qc.invalidate([]Tag{{Type: TagTypeTasks, ID: 2}})

	_, ok := qc.get("a")
	assert.False(t, ok, "entry tagged with the invalidated id should be stale")

	_, ok = qc.get("b")
	assert.True(t, ok, "entry with unrelated ids should stay fresh")

	_, ok = qc.get("c")
	assert.True(t, ok, "entry of a different type should stay fresh")
}

func TestQueryCache_SetRefreshesStaleEntry(t *testing.T) {
	qc := newQueryCache()
	qc.set("a", 1, []Tag{{Type: TagTypeTasks, ID: 1}})
	qc.invalidate([]Tag{{Type: TagTypeTasks, ID: 1}})

	_, ok := qc.get("a")
	assert.False(t, ok)

	qc.set("a", 2, []Tag{{Type: TagTypeTasks, ID: 1}})

	got, ok := qc.get("a")
	assert.True(t, ok)
	assert.Equal(t, 2, got)
}

func TestQueryCache_UntaggedEntrySurvivesInvalidation(t *testing.T) {
	qc := newQueryCache()
	qc.set("search?query=revamp", "results", nil)

	qc.invalidate([]Tag{{Type: TagTypeTasks}, {Type: TagTypeProjects}, {Type: TagTypeUsers}})

	got, ok := qc.get("search?query=revamp")
	assert.True(t, ok)
	assert.Equal(t, "results", got)
}

func TestQueryCache_Clear(t *testing.T) {
	qc := newQueryCache()
	qc.set("a", 1, []Tag{{Type: TagTypeUsers}})
	qc.set("b", 2, nil)

	qc.clear()

	_, ok := qc.get("a")
	assert.False(t, ok)
	_, ok = qc.get("b")
	assert.False(t, ok)
}
