package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewID_UniqueAndValid(t *testing.T) {
	seen := make(map[string]struct{})
	for range 100 {
		id := NewID()
		assert.True(t, IsID(id), "generated id %q must be a UUID", id)
		_, dup := seen[id]
		assert.False(t, dup)
		seen[id] = struct{}{}
	}
}

func TestIsID_Rejects(t *testing.T) {
	assert.False(t, IsID(""))
	assert.False(t, IsID("peer-a"))
}
