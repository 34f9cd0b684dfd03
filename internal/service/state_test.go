package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState(t *testing.T) {
	t.Run("defaults sort", func(t *testing.T) {
		s := NewState("", "")
		assert.Equal(t, SortQualityDesc, s.Sort())
		assert.Nil(t, s.Snapshot())
		assert.Empty(t, s.Visible())
	})

	t.Run("visible follows search and sort", func(t *testing.T) {
		s := NewState("", SortNameAsc)
		s.Replace(Build("Chose your professor,Общее качество\nBeta,5\nAlpha,3\nalbert,4\n", DefaultSchema()))

		require.Len(t, s.Visible(), 3)
		assert.Equal(t, "albert", s.Visible()[0].Name)

		s.SetSearch("AL")
		s.SetSort(SortQualityDesc)
		visible := s.Visible()
		require.Len(t, visible, 2)
		assert.Equal(t, "albert", visible[0].Name)
		assert.Equal(t, "Alpha", visible[1].Name)
		assert.Equal(t, "AL", s.Search())
	})

	t.Run("find by exact name", func(t *testing.T) {
		s := NewState("", SortNameAsc)
		_, ok := s.Find("Beta")
		assert.False(t, ok)

		s.Replace(Build("Chose your professor\nBeta\nBeta\n", DefaultSchema()))
		p, ok := s.Find("Beta")
		require.True(t, ok)
		assert.Equal(t, 2, p.Count)

		_, ok = s.Find("beta")
		assert.False(t, ok)
	})
}
