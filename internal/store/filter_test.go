package store

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilter(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		f := &Filter{}
		require.Equal(t, "", f.Where())
		require.Empty(t, f.Args())
		require.Equal(t, 1, f.Placeholder())
	})

	t.Run("single condition", func(t *testing.T) {
		f := &Filter{}
		f.Eq("p.category_id", 3)
		require.Equal(t, "WHERE p.category_id = $1", f.Where())
		require.Equal(t, []any{3}, f.Args())
		require.Equal(t, 2, f.Placeholder())
	})

	t.Run("multiple conditions are conjunctive", func(t *testing.T) {
		f := &Filter{}
		f.Eq("p.category_id", 3)
		f.Eq("p.type", "reel")
		f.Eq("p.with_reservation", true)
		require.Equal(t, "WHERE p.category_id = $1 AND p.type = $2 AND p.with_reservation = $3", f.Where())
		require.Equal(t, []any{3, "reel", true}, f.Args())
		require.Equal(t, 4, f.Placeholder())
	})

	t.Run("Args returns a copy", func(t *testing.T) {
		f := &Filter{}
		f.Eq("p.type", "post")
		args := f.Args()
		args[0] = "changed"
		require.Equal(t, []any{"post"}, f.Args())
	})
}
