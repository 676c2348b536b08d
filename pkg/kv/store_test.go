package kv

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore_GetSet(t *testing.T) {
	s := New[string, int]()

	s.Set("foo", 42)
	val, ok := s.Get("foo")
	assert.True(t, ok)
	assert.Equal(t, 42, val)

	_, ok = s.Get("bar")
	assert.False(t, ok)
}

func TestStore_Delete(t *testing.T) {
	s := NewBounded[string, string](2)
	s.Set("key", "value")
	s.Set("other", "value")

	s.Delete("key")
	s.Delete("missing")

	_, ok := s.Get("key")
	assert.False(t, ok)

	// freed slot is reusable without evicting "other"
	s.Set("third", "value")
	assert.ElementsMatch(t, []string{"other", "third"}, s.Keys())
}

func TestStore_BoundedEvictsOldest(t *testing.T) {
	s := NewBounded[string, int](2)
	s.Set("a", 1)
	s.Set("b", 2)
	s.Set("a", 10) // overwrite keeps age
	s.Set("c", 3)

	_, ok := s.Get("a")
	assert.False(t, ok, "oldest key evicted")
	assert.ElementsMatch(t, []string{"b", "c"}, s.Keys())
}

func TestStore_UnboundedByDefault(t *testing.T) {
	s := NewBounded[int, int](0)
	for i := range 50 {
		s.Set(i, i)
	}
	assert.Equal(t, 50, s.Len())
}

func TestStore_GetOrSet(t *testing.T) {
	s := New[string, int]()
	calls := 0
	fn := func() int {
		calls++
		return 7
	}

	assert.Equal(t, 7, s.GetOrSet("k", fn))
	assert.Equal(t, 7, s.GetOrSet("k", fn))
	assert.Equal(t, 1, calls)
}

func TestStore_Clear(t *testing.T) {
	s := NewBounded[string, int](5)
	s.Set("a", 1)
	s.Set("b", 2)

	s.Clear()

	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Keys())
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := New[int, int]()
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			s.Set(n, n*2)
		}(i)
		go func(n int) {
			defer wg.Done()
			s.GetOrSet(n, func() int { return n * 2 })
		}(i)
	}

	wg.Wait()

	assert.Equal(t, 100, s.Len())
}
