package hearts

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogfront/internal/cms"
)

type fakeWriter struct {
	calls     int
	lastValue int
	fail      error
	// serverHearts overrides the echoed value when >= 0, simulating a backend
	// that reconciled concurrent writes.
	serverHearts int
}

func (f *fakeWriter) UpdateHearts(ctx context.Context, postID string, hearts int) (*cms.Post, error) {
	f.calls++
	f.lastValue = hearts
	if f.fail != nil {
		return nil, f.fail
	}
	confirmed := hearts
	if f.serverHearts >= 0 {
		confirmed = f.serverHearts
	}
	return &cms.Post{ID: postID, Hearts: confirmed}, nil
}

func newFakeWriter() *fakeWriter {
	return &fakeWriter{serverHearts: -1}
}

func TestIncrementWritesAbsoluteValue(t *testing.T) {
	w := newFakeWriter()
	c := NewCounter(w, "p1", 5, false)

	require.NoError(t, c.Increment(context.Background()))
	assert.Equal(t, 1, w.calls)
	assert.Equal(t, 6, w.lastValue)
	assert.Equal(t, 6, c.Value())
	assert.True(t, c.Liked())
}

func TestIncrementRollsBackOnFailure(t *testing.T) {
	for _, initial := range []int{0, 1, 5, 100} {
		w := newFakeWriter()
		w.fail = errors.New("boom")
		c := NewCounter(w, "p1", initial, false)

		err := c.Increment(context.Background())
		require.Error(t, err)
		assert.Equal(t, initial, c.Value(), "displayed value must return to its pre-mutation state")
		assert.False(t, c.Liked(), "liked flag must be cleared after rollback")
	}
}

func TestIncrementRollsBackOnStatusFailure(t *testing.T) {
	w := newFakeWriter()
	w.fail = &cms.StatusError{Code: 500}
	c := NewCounter(w, "p1", 5, false)

	err := c.Increment(context.Background())
	require.Error(t, err)
	var se *cms.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 5, c.Value())
	assert.False(t, c.Liked())
}

func TestRepeatedIncrementIsNoOp(t *testing.T) {
	w := newFakeWriter()
	c := NewCounter(w, "p1", 3, false)

	require.NoError(t, c.Increment(context.Background()))
	require.NoError(t, c.Increment(context.Background()))

	assert.Equal(t, 1, w.calls, "second click must not reach the backend")
	assert.Equal(t, 4, c.Value(), "two clicks move the display by exactly one")
}

func TestAlreadyLikedNeverWrites(t *testing.T) {
	w := newFakeWriter()
	c := NewCounter(w, "p1", 7, true)

	require.NoError(t, c.Increment(context.Background()))
	assert.Zero(t, w.calls)
	assert.Equal(t, 7, c.Value())
}

func TestIncrementAdoptsConfirmedValue(t *testing.T) {
	w := newFakeWriter()
	w.serverHearts = 12 // another client got there first
	c := NewCounter(w, "p1", 5, false)

	require.NoError(t, c.Increment(context.Background()))
	assert.Equal(t, 12, c.Value())
	assert.True(t, c.Liked())
}

func TestRetryAfterFailureSucceeds(t *testing.T) {
	w := newFakeWriter()
	w.fail = errors.New("network down")
	c := NewCounter(w, "p1", 5, false)

	require.Error(t, c.Increment(context.Background()))

	w.fail = nil
	require.NoError(t, c.Increment(context.Background()))
	assert.Equal(t, 6, c.Value())
	assert.Equal(t, 2, w.calls)
}
