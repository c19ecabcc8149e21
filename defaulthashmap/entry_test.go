package defaulthashmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultHashMap_Entry(t *testing.T) {
	t.Run("vacant slot reports no value and creates nothing", func(t *testing.T) {
		m := NewDefaultHashMap[string, int]()
		e := m.Entry("a")
		assert.Equal(t, "a", e.Key())
		assert.False(t, e.Occupied())
		_, ok := e.Value()
		assert.False(t, ok)
		assert.Equal(t, 0, m.Len())
	})

	t.Run("OrInsert fills a vacant slot", func(t *testing.T) {
		m := NewDefaultHashMap[string, int]()
		p := m.Entry("a").OrInsert(5)
		require.NotNil(t, p)
		assert.Equal(t, 5, *p)
		assert.Equal(t, 5, m.Get("a"))
	})

	t.Run("OrInsert keeps an occupied slot", func(t *testing.T) {
		m := NewDefaultHashMap[string, int]()
		m.Insert("a", 1)
		p := m.Entry("a").OrInsert(5)
		assert.Equal(t, 1, *p)
	})

	t.Run("OrInsertWith is lazy", func(t *testing.T) {
		m := NewDefaultHashMap[string, int]()
		m.Insert("a", 1)
		called := false
		m.Entry("a").OrInsertWith(func() int {
			called = true
			return 5
		})
		assert.False(t, called)

		p := m.Entry("b").OrInsertWith(func() int { return 7 })
		assert.Equal(t, 7, *p)
	})

	t.Run("AndModify mutates only occupied slots", func(t *testing.T) {
		m := NewDefaultHashMap[int, int]()
		m.Insert(1, 2)

		m.Entry(1).AndModify(func(v *int) { *v += 10 })
		assert.Equal(t, 12, m.Get(1))

		m.Entry(2).AndModify(func(v *int) { *v += 10 })
		assert.False(t, m.Has(2))
	})

	t.Run("AndModify chains with OrInsert", func(t *testing.T) {
		m := NewDefaultHashMap[string, int]()
		for range 3 {
			m.Entry("hits").AndModify(func(v *int) { *v++ }).OrInsert(1)
		}
		assert.Equal(t, 3, m.Get("hits"))
	})

	t.Run("entry observes later map changes", func(t *testing.T) {
		m := NewDefaultHashMap[string, int]()
		e := m.Entry("a")
		assert.False(t, e.Occupied())
		m.Insert("a", 9)
		assert.True(t, e.Occupied())
		v, ok := e.Value()
		assert.True(t, ok)
		assert.Equal(t, 9, v)
	})
}
