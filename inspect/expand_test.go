package inspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewOpenSet(t *testing.T) {
	s := NewOpenSet("$ROOT", "$ROOT.a")
	assert.True(t, s.IsOpen("$ROOT"))
	assert.True(t, s.IsOpen("$ROOT.a"))
	assert.False(t, s.IsOpen("$ROOT.b"))
}

func TestOpenSetToggle(t *testing.T) {
	s := NewOpenSet()
	assert.True(t, s.Toggle("x"))
	assert.True(t, s.IsOpen("x"))
	assert.False(t, s.Toggle("x"))
	assert.False(t, s.IsOpen("x"))
}

func TestOpenSetSet(t *testing.T) {
	s := NewOpenSet()
	s.Set("a", true)
	assert.True(t, s.IsOpen("a"))
	s.Set("a", false)
	assert.False(t, s.IsOpen("a"))
	// closed ids are removed, not stored as false
	assert.NotContains(t, s, "a")
}
