package attendance

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingSaver struct {
	saved []Roster
	err   error
}

func (s *recordingSaver) Save(_ context.Context, roster Roster) error {
	s.saved = append(s.saved, roster)
	return s.err
}

func TestStore_SavesAfterEachAcceptedTransition(t *testing.T) {
	ctx := context.Background()
	saver := &recordingSaver{}
	store := NewStore(NewRoster(), saver, zap.NewNop())

	require.NoError(t, store.AddWorker(ctx, "Asha"))
	require.NoError(t, store.SetStatus(ctx, 0, jan3))
	require.Len(t, saver.saved, 2)

	assert.Equal(t, 1, saver.saved[0].Len())
	first, _ := saver.saved[0].Worker(0)
	assert.Equal(t, 0, first.RecordCount(), "earlier snapshot is not changed by later transitions")

	second, _ := saver.saved[1].Worker(0)
	assert.Equal(t, 1, second.RecordCount())
}

func TestStore_RejectedTransitionNotSaved(t *testing.T) {
	ctx := context.Background()
	saver := &recordingSaver{}
	store := NewStore(NewRoster(), saver, zap.NewNop())
	require.NoError(t, store.AddWorker(ctx, "Asha"))

	err := store.AddWorker(ctx, "Asha")
	require.ErrorIs(t, err, ErrDuplicateName)

	err = store.RemoveWorker(ctx, 4)
	require.ErrorIs(t, err, ErrWorkerIndex)

	assert.Len(t, saver.saved, 1)
	assert.Equal(t, 1, store.Snapshot().Len())
}

func TestStore_SaveFailureKeepsNewState(t *testing.T) {
	ctx := context.Background()
	saver := &recordingSaver{err: errors.New("disk full")}
	store := NewStore(NewRoster(), saver, zap.NewNop())

	err := store.AddWorker(ctx, "Asha")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, 1, store.Snapshot().Len())

	saver.err = nil
	require.NoError(t, store.Save(ctx))
	assert.Len(t, saver.saved, 2)
}
