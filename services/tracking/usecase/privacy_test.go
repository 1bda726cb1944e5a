package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shegerlabs/transitlive/internal/pkg/errs"
	"github.com/shegerlabs/transitlive/internal/pkg/models"
	"github.com/shegerlabs/transitlive/services/tracking/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdatePosition_RequiresOptIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gate := NewPrivacyGate(mocks.NewMockStateRepo(ctrl))

	update := &models.SubscriberPositionUpdate{
		Latitude:  floatPtr(9.0107),
		Longitude: floatPtr(38.7613),
	}
	err := gate.UpdatePosition(context.Background(), "sub-1", update)

	assert.ErrorIs(t, err, errs.ErrSharingDisabled)

	// No state is created for an actor who has not opted in
	_, exists := gate.Subscriber("sub-1")
	assert.False(t, exists)
}

func TestUpdatePosition_AfterOptIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saved := make(chan models.Location, 1)
	mockStates := mocks.NewMockStateRepo(ctrl)
	mockStates.EXPECT().
		SaveSubscriberPosition(gomock.Any(), "sub-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, location models.Location) error {
			saved <- location
			return nil
		})

	gate := NewPrivacyGate(mockStates)
	gate.EnableSharing("sub-1")

	update := &models.SubscriberPositionUpdate{
		Latitude:  floatPtr(9.0107),
		Longitude: floatPtr(38.7613),
		Timestamp: time.Now(),
	}
	require.NoError(t, gate.UpdatePosition(context.Background(), "sub-1", update))

	sub, exists := gate.Subscriber("sub-1")
	require.True(t, exists)
	assert.Equal(t, 9.0107, sub.Location.Latitude)
	assert.True(t, sub.HasPosition())

	// Write-through to the external store is async
	select {
	case location := <-saved:
		assert.Equal(t, 9.0107, location.Latitude)
	case <-time.After(time.Second):
		t.Fatal("subscriber position was never written through")
	}
}

func TestUpdatePosition_InvalidCoordinates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gate := NewPrivacyGate(mocks.NewMockStateRepo(ctrl))
	gate.EnableSharing("sub-1")

	tests := []struct {
		name   string
		update *models.SubscriberPositionUpdate
	}{
		{name: "nil update", update: nil},
		{name: "missing latitude", update: &models.SubscriberPositionUpdate{Longitude: floatPtr(38.7)}},
		{name: "missing longitude", update: &models.SubscriberPositionUpdate{Latitude: floatPtr(9.0)}},
		{name: "latitude out of range", update: &models.SubscriberPositionUpdate{Latitude: floatPtr(-91.0), Longitude: floatPtr(38.7)}},
		{name: "longitude out of range", update: &models.SubscriberPositionUpdate{Latitude: floatPtr(9.0), Longitude: floatPtr(200.0)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := gate.UpdatePosition(context.Background(), "sub-1", tc.update)
			assert.ErrorIs(t, err, errs.ErrInvalidReport)
		})
	}
}

func TestEnableSharing_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saved := make(chan struct{}, 1)
	mockStates := mocks.NewMockStateRepo(ctrl)
	mockStates.EXPECT().
		SaveSubscriberPosition(gomock.Any(), "sub-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ models.Location) error {
			saved <- struct{}{}
			return nil
		})

	gate := NewPrivacyGate(mockStates)
	gate.EnableSharing("sub-1")

	update := &models.SubscriberPositionUpdate{
		Latitude:  floatPtr(9.0107),
		Longitude: floatPtr(38.7613),
	}
	require.NoError(t, gate.UpdatePosition(context.Background(), "sub-1", update))

	select {
	case <-saved:
	case <-time.After(time.Second):
		t.Fatal("subscriber position was never written through")
	}

	// A second opt-in must not wipe the stored position
	gate.EnableSharing("sub-1")

	sub, exists := gate.Subscriber("sub-1")
	require.True(t, exists)
	assert.True(t, sub.HasPosition())
}

func TestDisableSharing_ClearsImmediately(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saved := make(chan struct{}, 1)
	cleared := make(chan string, 1)
	mockStates := mocks.NewMockStateRepo(ctrl)
	mockStates.EXPECT().
		SaveSubscriberPosition(gomock.Any(), "sub-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ models.Location) error {
			saved <- struct{}{}
			return nil
		})
	mockStates.EXPECT().
		ClearSubscriberPosition(gomock.Any(), "sub-1").
		DoAndReturn(func(_ context.Context, actorID string) error {
			cleared <- actorID
			return nil
		})

	gate := NewPrivacyGate(mockStates)
	gate.EnableSharing("sub-1")

	update := &models.SubscriberPositionUpdate{
		Latitude:  floatPtr(9.0107),
		Longitude: floatPtr(38.7613),
	}
	require.NoError(t, gate.UpdatePosition(context.Background(), "sub-1", update))

	select {
	case <-saved:
	case <-time.After(time.Second):
		t.Fatal("subscriber position was never written through")
	}

	gate.DisableSharing("sub-1")

	// The in-process state disappears synchronously
	assert.False(t, gate.SharingEnabled("sub-1"))
	_, exists := gate.Subscriber("sub-1")
	assert.False(t, exists)

	// The stored position is cleared through the external store
	select {
	case actorID := <-cleared:
		assert.Equal(t, "sub-1", actorID)
	case <-time.After(time.Second):
		t.Fatal("stored subscriber position was never cleared")
	}

	// Position updates after opt-out are rejected again
	err := gate.UpdatePosition(context.Background(), "sub-1", update)
	assert.ErrorIs(t, err, errs.ErrSharingDisabled)
}

func TestDisableSharing_UnknownActorIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No ClearSubscriberPosition expectation: opt-out of an actor who never
	// opted in must not touch the external store.
	gate := NewPrivacyGate(mocks.NewMockStateRepo(ctrl))
	gate.DisableSharing("never-opted-in")
}
