package registry

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vid_tube/internal/common"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry[string]()

	isNew, err := r.Register("users", "collection-users")
	require.NoError(t, err)
	assert.True(t, isNew)

	item, exists := r.Get("users")
	assert.True(t, exists)
	assert.Equal(t, "collection-users", item)

	// Ghi đè item cũ trả về isNew = false
	isNew, err = r.Register("users", "collection-users-v2")
	require.NoError(t, err)
	assert.False(t, isNew)

	item, _ = r.Get("users")
	assert.Equal(t, "collection-users-v2", item)
}

func TestRegistry_RegisterEmptyName(t *testing.T) {
	r := NewRegistry[int]()
	_, err := r.Register("", 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInvalidInput))
}

func TestRegistry_GetMissing(t *testing.T) {
	r := NewRegistry[string]()
	item, exists := r.Get("videos")
	assert.False(t, exists)
	assert.Equal(t, "", item)
}

func TestRegistry_MustGetPanics(t *testing.T) {
	r := NewRegistry[string]()
	assert.Panics(t, func() { r.MustGet("likes") })
}

func TestRegistry_GetOrCreate(t *testing.T) {
	r := NewRegistry[int]()
	calls := 0
	creator := func() (int, error) {
		calls++
		return 42, nil
	}

	item, err := r.GetOrCreate("counter", creator)
	require.NoError(t, err)
	assert.Equal(t, 42, item)

	// Lần hai trả về item đã có, không gọi lại creator
	item, err = r.GetOrCreate("counter", creator)
	require.NoError(t, err)
	assert.Equal(t, 42, item)
	assert.Equal(t, 1, calls)
}

func TestRegistry_UpdateMissing(t *testing.T) {
	r := NewRegistry[int]()
	err := r.Update("videos", func(v int) (int, error) { return v + 1, nil })
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestRegistry_ClearAndCount(t *testing.T) {
	r := NewRegistry[int]()
	r.Register("a", 1)
	r.Register("b", 2)
	assert.Equal(t, 2, r.Count())

	r.Clear("a")
	assert.Equal(t, 1, r.Count())

	r.ClearAll()
	assert.Equal(t, 0, r.Count())
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry[int]()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			r.Register(fmt.Sprintf("item-%d", n%10), n)
		}(i)
		go func(n int) {
			defer wg.Done()
			r.Get(fmt.Sprintf("item-%d", n%10))
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 10, r.Count())
}
