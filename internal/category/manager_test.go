package category

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Money-Together/moneytogether/internal/models"
)

// fakeGateway is a deterministic in-memory Gateway. Delete can be made to
// block on a channel so tests can hold a call in flight.
type fakeGateway struct {
	mu          sync.Mutex
	createErr   error
	updateErr   error
	deleteErr   error
	assignID    string
	deleteGate  chan struct{} // if set, Delete blocks until closed
	deleteBusy  chan struct{} // if set, receives once when Delete starts
	deleteCalls int
}

func (f *fakeGateway) CreateCategory(_ context.Context, _ uuid.UUID, c models.Category) (models.Category, error) {
	if f.createErr != nil {
		return models.Category{}, f.createErr
	}
	if f.assignID != "" {
		c.ID = f.assignID
	}
	return c, nil
}

func (f *fakeGateway) UpdateCategory(context.Context, uuid.UUID, models.Category) error {
	return f.updateErr
}

func (f *fakeGateway) DeleteCategory(context.Context, uuid.UUID, string) error {
	f.mu.Lock()
	f.deleteCalls++
	gate, busy := f.deleteGate, f.deleteBusy
	f.mu.Unlock()
	if busy != nil {
		busy <- struct{}{}
	}
	if gate != nil {
		<-gate
	}
	return f.deleteErr
}

func (f *fakeGateway) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.deleteCalls
}

func seedCategories() []models.Category {
	return []models.Category{
		{ID: "cat-1", Name: "Groceries"},
		{ID: "cat-2", Name: "Dining"},
	}
}

func TestAddReconcilesServerID(t *testing.T) {
	gw := &fakeGateway{assignID: "srv-9"}
	m := NewManager(gw, uuid.New(), nil)

	created, err := m.Add(context.Background(), models.Category{Name: "Transit"})
	require.NoError(t, err)
	assert.Equal(t, "srv-9", created.ID)

	list := m.Categories()
	require.Len(t, list, 1)
	assert.Equal(t, "srv-9", list[0].ID)
}

func TestAddKeepsLocalIDWhenServerAssignsNone(t *testing.T) {
	gw := &fakeGateway{}
	m := NewManager(gw, uuid.New(), nil)

	created, err := m.Add(context.Background(), models.Category{Name: "Transit"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	_, parseErr := uuid.Parse(created.ID)
	assert.NoError(t, parseErr, "fallback ID should be the locally minted UUID")
}

func TestAddFailureLeavesListUnchanged(t *testing.T) {
	gw := &fakeGateway{createErr: errors.New("boom")}
	m := NewManager(gw, uuid.New(), seedCategories())

	_, err := m.Add(context.Background(), models.Category{Name: "Transit"})
	require.Error(t, err)
	assert.Len(t, m.Categories(), 2)
}

func TestUpdateRequiresID(t *testing.T) {
	m := NewManager(&fakeGateway{}, uuid.New(), seedCategories())

	err := m.Update(context.Background(), models.Category{Name: "Renamed"})
	assert.ErrorIs(t, err, ErrPrecondition)
}

func TestUpdateUnknownID(t *testing.T) {
	m := NewManager(&fakeGateway{}, uuid.New(), seedCategories())

	err := m.Update(context.Background(), models.Category{ID: "cat-404", Name: "Renamed"})
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestUpdateReplacesByLinearLookup(t *testing.T) {
	m := NewManager(&fakeGateway{}, uuid.New(), seedCategories())

	require.NoError(t, m.Update(context.Background(), models.Category{ID: "cat-2", Name: "Eating out"}))
	list := m.Categories()
	assert.Equal(t, "Groceries", list[0].Name)
	assert.Equal(t, "Eating out", list[1].Name)
}

func TestDeleteRemovesOnSuccess(t *testing.T) {
	m := NewManager(&fakeGateway{}, uuid.New(), seedCategories())

	require.NoError(t, m.Delete(context.Background(), "cat-1"))
	list := m.Categories()
	require.Len(t, list, 1)
	assert.Equal(t, "cat-2", list[0].ID)
}

func TestDeleteFailureLeavesListUnchanged(t *testing.T) {
	gw := &fakeGateway{deleteErr: errors.New("boom")}
	m := NewManager(gw, uuid.New(), seedCategories())

	err := m.Delete(context.Background(), "cat-1")
	require.Error(t, err)
	assert.Len(t, m.Categories(), 2)
}

// A second delete while one is pending must be a no-op: exactly one
// remote call fires.
func TestDeleteInFlightGuard(t *testing.T) {
	gate := make(chan struct{})
	busy := make(chan struct{}, 1)
	gw := &fakeGateway{deleteGate: gate, deleteBusy: busy}
	m := NewManager(gw, uuid.New(), seedCategories())

	firstDone := make(chan error, 1)
	go func() { firstDone <- m.Delete(context.Background(), "cat-1") }()

	// Wait for the first call to reach the gateway.
	<-busy

	require.NoError(t, m.Delete(context.Background(), "cat-2"), "guarded call is a silent no-op")
	assert.Equal(t, 1, gw.calls())
	assert.Len(t, m.Categories(), 2, "guarded call must not touch the list")

	close(gate)
	require.NoError(t, <-firstDone)

	list := m.Categories()
	require.Len(t, list, 1)
	assert.Equal(t, "cat-2", list[0].ID)
}
