package roundrobin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sync/errgroup"

	"go.expect.digital/container/roundrobin"
)

func TestPickerNext(t *testing.T) {
	t.Parallel()

	p := roundrobin.New("a", "b", "c")

	assert.Equal(t, 3, p.Len())
	assert.Equal(t, []string{"a", "b", "c"}, p.Entries())

	// Two full cycles in order.
	var got []string

	for i := 0; i < 6; i++ {
		v, err := p.Next()
		assert.NoError(t, err)

		got = append(got, v)
	}

	assert.Equal(t, []string{"a", "b", "c", "a", "b", "c"}, got)
}

func TestPickerNextEmpty(t *testing.T) {
	t.Parallel()

	p := roundrobin.New[string]()

	assert.Zero(t, p.Len())
	assert.Nil(t, p.Entries())

	_, err := p.Next()
	assert.ErrorIs(t, err, roundrobin.ErrNoEntries)
}

func TestPickerAdd(t *testing.T) {
	t.Parallel()

	p := roundrobin.New("b")

	p.Add("a")

	assert.Equal(t, []string{"a", "b"}, p.Entries())

	// Adding restarts the cycle at the front.
	v, err := p.Next()
	assert.NoError(t, err)
	assert.Equal(t, "a", v)

	v, err = p.Next()
	assert.NoError(t, err)
	assert.Equal(t, "b", v)
}

func TestPickerRemove(t *testing.T) {
	t.Parallel()

	p := roundrobin.New("a", "b", "c")

	assert.True(t, p.Remove("b"))
	assert.Equal(t, []string{"a", "c"}, p.Entries())

	assert.False(t, p.Remove("b"))
	assert.False(t, p.Remove("x"))

	assert.True(t, p.Remove("a"), "removing the front entry")
	assert.Equal(t, []string{"c"}, p.Entries())

	assert.True(t, p.Remove("c"))
	assert.Zero(t, p.Len())

	assert.False(t, p.Remove("c"))

	_, err := p.Next()
	assert.ErrorIs(t, err, roundrobin.ErrNoEntries)
}

func TestPickerRemoveCurrent(t *testing.T) {
	t.Parallel()

	p := roundrobin.New("a", "b", "c")

	v, err := p.Next()
	assert.NoError(t, err)
	assert.Equal(t, "a", v)

	// Removing the entry the cursor would hand out next must not break the
	// rotation; it restarts at the front.
	assert.True(t, p.Remove("b"))

	v, err = p.Next()
	assert.NoError(t, err)
	assert.Equal(t, "a", v)

	v, err = p.Next()
	assert.NoError(t, err)
	assert.Equal(t, "c", v)
}

func TestPickerNextParallel(t *testing.T) {
	t.Parallel()

	entries := map[string]bool{"a": true, "b": true, "c": true}
	p := roundrobin.New("a", "b", "c")

	var eg errgroup.Group

	for i := 0; i < 1_000; i++ {
		eg.Go(func() error {
			v, err := p.Next()
			if err != nil {
				return err
			}

			assert.True(t, entries[v], "picked unknown entry %q", v)

			return nil
		})
	}

	assert.NoError(t, eg.Wait())
	assert.Equal(t, 3, p.Len())
}
