package dto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTotalPages(t *testing.T) {
	require.Equal(t, 0, TotalPages(10, 0))
	require.Equal(t, 0, TotalPages(0, 10))
	require.Equal(t, 1, TotalPages(1, 10))
	require.Equal(t, 1, TotalPages(10, 10))
	require.Equal(t, 2, TotalPages(11, 10))
	require.Equal(t, 5, TotalPages(42, 10))
}

func TestNewPostPagination(t *testing.T) {
	t.Run("first page", func(t *testing.T) {
		p := NewPostPagination(1, 10, 42)
		require.Equal(t, 1, p.CurrentPage)
		require.Equal(t, 5, p.TotalPages)
		require.Equal(t, 42, p.TotalPosts)
		require.Equal(t, 10, p.PostsPerPage)
		require.True(t, p.HasNextPage)
		require.False(t, p.HasPrevPage)
	})

	t.Run("middle page", func(t *testing.T) {
		p := NewPostPagination(3, 10, 42)
		require.True(t, p.HasNextPage)
		require.True(t, p.HasPrevPage)
	})

	t.Run("last page", func(t *testing.T) {
		p := NewPostPagination(5, 10, 42)
		require.False(t, p.HasNextPage)
		require.True(t, p.HasPrevPage)
	})

	t.Run("empty result", func(t *testing.T) {
		p := NewPostPagination(1, 10, 0)
		require.Equal(t, 0, p.TotalPages)
		require.False(t, p.HasNextPage)
		require.False(t, p.HasPrevPage)
	})
}

func TestNewAdvertiserPagination(t *testing.T) {
	p := NewAdvertiserPagination(2, 10, 27)
	require.Equal(t, 2, p.CurrentPage)
	require.Equal(t, 3, p.TotalPages)
	require.Equal(t, 27, p.TotalPosts)
	require.Equal(t, 10, p.PostsPerPage)
}

func TestNewSavedPagination(t *testing.T) {
	p := NewSavedPagination(1, 10, 13)
	require.Equal(t, 1, p.CurrentPage)
	require.Equal(t, 2, p.TotalPages)
	require.Equal(t, 13, p.TotalSaved)
	require.Equal(t, 10, p.PostsPerPage)
}
