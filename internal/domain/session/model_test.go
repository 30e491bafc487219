package session_test

import (
	"testing"

	"github.com/rpggio/resiliency/internal/domain/session"
	"github.com/stretchr/testify/require"
)

func TestCompareAdd(t *testing.T) {
	var c session.Compare
	c, ok := c.Add("a")
	require.True(t, ok)
	require.Equal(t, session.DefaultCompareFields, c[0].FieldsToCompare)

	c, ok = c.Add("a")
	require.False(t, ok)
	require.Len(t, c, 1)

	c, _ = c.Add("b")
	c, _ = c.Add("c")
	full, ok := c.Add("d")
	require.False(t, ok)
	require.Equal(t, []string{"a", "b", "c"}, full.IDs())
}

func TestCompareAddDoesNotAlias(t *testing.T) {
	base, _ := session.Compare{}.Add("a")
	left, _ := base.Add("b")
	right, _ := base.Add("c")
	require.Equal(t, []string{"a", "b"}, left.IDs())
	require.Equal(t, []string{"a", "c"}, right.IDs())
}

func TestDetailsToggle(t *testing.T) {
	d := session.Details{}
	require.False(t, d.Toggle().Open)

	d = d.Select("x")
	require.True(t, d.Open)
	d = d.Toggle()
	require.False(t, d.Open)
	require.Equal(t, "x", d.ActiveRecord)
}
