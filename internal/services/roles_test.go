package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleTable_Complements(t *testing.T) {
	table := NewRoleTable(map[string][]string{
		" Singer ": {"Music-Director", "", "producer"},
		"":         {"singer"},
	})

	assert.True(t, table.Complements("singer", "music-director"))
	assert.True(t, table.Complements("singer", "producer"))
	assert.False(t, table.Complements("music-director", "singer"))
	assert.False(t, table.Complements("singer", ""))
	assert.False(t, table.Complements("", "singer"))
	assert.False(t, table.Complements("drummer", "bassist"))
}

func TestDefaultRoleTable_KnownPairs(t *testing.T) {
	table := DefaultRoleTable()

	assert.True(t, table.Complements("singer", "music-director"))
	assert.True(t, table.Complements("music-director", "singer"))
	assert.True(t, table.Complements("rapper", "producer"))
	assert.True(t, table.Complements("video-director", "singer"))
	assert.False(t, table.Complements("singer", "video-director"))
	assert.False(t, table.Complements("singer", "singer"))
}
