package service

import (
	"testing"

	"hackathon-dashboard-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	cases := map[string]string{
		"Alice":            "alice",
		"  Alice  ":        "alice",
		"alice   johnson":  "alice johnson",
		"ALICE\tJohnson":   "alice johnson",
		" Alice Johnson  ": "alice johnson",
		"":                 "",
		"   ":              "",
	}
	for input, want := range cases {
		assert.Equal(t, want, NormalizeName(input), "input %q", input)
	}
}

func TestResolveName(t *testing.T) {
	coaches := []models.Coach{
		{Name: "Dana Smith"},
		{Name: "Erik Brown"},
		{Name: "dana  smith"},
	}
	nameOf := func(c models.Coach) string { return c.Name }

	t.Run("exact match resolves", func(t *testing.T) {
		res := ResolveName("Erik Brown", coaches, nameOf)
		assert.Equal(t, Resolved, res.Status)
		assert.Equal(t, "Erik Brown", res.Match.Name)
	})

	t.Run("normalized variants collide as ambiguous", func(t *testing.T) {
		res := ResolveName("DANA SMITH", coaches, nameOf)
		assert.Equal(t, Ambiguous, res.Status)
		assert.Len(t, res.Matches, 2)
	})

	t.Run("unknown name is unresolved", func(t *testing.T) {
		res := ResolveName("Nobody Here", coaches, nameOf)
		assert.Equal(t, Unresolved, res.Status)
	})

	t.Run("no substring matching", func(t *testing.T) {
		res := ResolveName("Erik", coaches, nameOf)
		assert.Equal(t, Unresolved, res.Status)
	})

	t.Run("empty candidate set", func(t *testing.T) {
		res := ResolveName("Anyone", nil, nameOf)
		assert.Equal(t, Unresolved, res.Status)
	})
}
