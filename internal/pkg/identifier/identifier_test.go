package identifier

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCarriesPrefix(t *testing.T) {
	id := New(PrefixEmployee)
	assert.True(t, strings.HasPrefix(id, "emp-"), id)

	parts := strings.Split(id, "-")
	assert.Len(t, parts, 3)
	assert.Len(t, parts[2], 8)
}

func TestNewIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := New(PrefixAttendance)
		assert.False(t, seen[id], id)
		seen[id] = true
	}
}
