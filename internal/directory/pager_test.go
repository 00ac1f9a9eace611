package directory

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgayashan/FindAMechanic/internal/model"
)

// stubLister serves canned pages keyed by (search, page).
type stubLister struct {
	pages map[string][]model.Mechanic
	err   error
	calls []string
}

func (s *stubLister) ListMechanics(ctx context.Context, page, pageSize int, search string) ([]model.Mechanic, error) {
	key := fmt.Sprintf("%s/%d", search, page)
	s.calls = append(s.calls, key)
	if s.err != nil {
		return nil, s.err
	}
	return s.pages[key], nil
}

func mechanics(ids ...string) []model.Mechanic {
	out := make([]model.Mechanic, 0, len(ids))
	for _, id := range ids {
		out = append(out, model.Mechanic{ID: id})
	}
	return out
}

func TestPager_AppendAndEndDetection(t *testing.T) {
	lister := &stubLister{pages: map[string][]model.Mechanic{
		"/1": mechanics("1", "2"),
		"/2": mechanics("3"),
	}}
	pager := NewPager(lister, 2)

	// Page 1: full page, more data expected.
	fetched, err := pager.LoadNext(context.Background())
	require.NoError(t, err)
	assert.Len(t, fetched, 2)
	assert.True(t, pager.HasMore())
	assert.Len(t, pager.Mechanics(), 2)

	// Page 2: underfull page appends and marks the end.
	fetched, err = pager.LoadNext(context.Background())
	require.NoError(t, err)
	assert.Len(t, fetched, 1)
	assert.False(t, pager.HasMore())
	assert.Equal(t, mechanics("1", "2", "3"), pager.Mechanics())
	assert.Equal(t, 2, pager.Page())
}

func TestPager_ResetStartsNewSearchAtPageOne(t *testing.T) {
	lister := &stubLister{pages: map[string][]model.Mechanic{
		"/1":      mechanics("1", "2"),
		"brake/1": mechanics("9"),
	}}
	pager := NewPager(lister, 2)

	_, err := pager.LoadNext(context.Background())
	require.NoError(t, err)

	pager.Reset("brake")
	assert.True(t, pager.HasMore())
	assert.Empty(t, pager.Mechanics())

	_, err = pager.LoadNext(context.Background())
	require.NoError(t, err)

	// Page 1 of the new search replaces, not appends.
	assert.Equal(t, mechanics("9"), pager.Mechanics())
	assert.False(t, pager.HasMore())
	assert.Equal(t, []string{"/1", "brake/1"}, lister.calls)
}

func TestPager_ErrorLeavesStateUntouched(t *testing.T) {
	lister := &stubLister{pages: map[string][]model.Mechanic{"/1": mechanics("1", "2")}}
	pager := NewPager(lister, 2)

	_, err := pager.LoadNext(context.Background())
	require.NoError(t, err)

	lister.err = errors.New("boom")
	_, err = pager.LoadNext(context.Background())
	require.Error(t, err)

	assert.Equal(t, 1, pager.Page(), "a failed load must not advance the page")
	assert.Len(t, pager.Mechanics(), 2)
	assert.True(t, pager.HasMore())
}
