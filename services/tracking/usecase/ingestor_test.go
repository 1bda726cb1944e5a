package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shegerlabs/transitlive/internal/pkg/errs"
	"github.com/shegerlabs/transitlive/internal/pkg/models"
	"github.com/shegerlabs/transitlive/services/tracking/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 {
	return &v
}

// appliedRecorder captures the states handed to the applied hook from both
// the ingest path and the coalescing flush timer.
type appliedRecorder struct {
	mu     sync.Mutex
	states []*models.VehicleState
}

func (r *appliedRecorder) record(state *models.VehicleState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, state)
}

func (r *appliedRecorder) snapshot() []*models.VehicleState {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.VehicleState, len(r.states))
	copy(out, r.states)
	return out
}

func validTelemetry(ts time.Time) *models.TelemetryReport {
	return &models.TelemetryReport{
		Latitude:  floatPtr(9.0107),
		Longitude: floatPtr(38.7613),
		SpeedMPS:  8.5,
		Timestamp: ts,
	}
}

func TestIngest_FirstReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFleet := mocks.NewMockFleetRepo(ctrl)
	mockFleet.EXPECT().
		AssignedRoute(gomock.Any(), "bus-1").
		Return("route-4", models.VehicleStatusOperational, nil)

	recorder := &appliedRecorder{}
	ingestor := NewIngestor(time.Second, mockFleet, recorder.record)

	ts := time.Now()
	state, err := ingestor.Ingest(context.Background(), "bus-1", validTelemetry(ts))

	require.NoError(t, err)
	assert.Equal(t, "bus-1", state.VehicleID)
	assert.Equal(t, "route-4", state.RouteID)
	assert.Equal(t, models.VehicleStatusOperational, state.Status)
	assert.Equal(t, 9.0107, state.Location.Latitude)
	assert.Equal(t, 38.7613, state.Location.Longitude)
	assert.Equal(t, ts, state.Location.Timestamp)

	applied := recorder.snapshot()
	require.Len(t, applied, 1)
	assert.Equal(t, "bus-1", applied[0].VehicleID)
}

func TestIngest_UnknownVehicleStillAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFleet := mocks.NewMockFleetRepo(ctrl)
	mockFleet.EXPECT().
		AssignedRoute(gomock.Any(), "bus-x").
		Return("", models.VehicleStatus(""), errs.ErrNotFound)

	recorder := &appliedRecorder{}
	ingestor := NewIngestor(time.Second, mockFleet, recorder.record)

	state, err := ingestor.Ingest(context.Background(), "bus-x", validTelemetry(time.Now()))

	require.NoError(t, err)
	assert.Empty(t, state.RouteID)
	assert.Equal(t, models.VehicleStatusOperational, state.Status)
}

func TestIngest_InvalidReports(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFleet := mocks.NewMockFleetRepo(ctrl)
	ingestor := NewIngestor(time.Second, mockFleet, nil)

	ts := time.Now()
	tests := []struct {
		name   string
		report *models.TelemetryReport
	}{
		{name: "nil report", report: nil},
		{name: "missing latitude", report: &models.TelemetryReport{Longitude: floatPtr(38.7), Timestamp: ts}},
		{name: "missing longitude", report: &models.TelemetryReport{Latitude: floatPtr(9.0), Timestamp: ts}},
		{name: "latitude out of range", report: &models.TelemetryReport{Latitude: floatPtr(91.0), Longitude: floatPtr(38.7), Timestamp: ts}},
		{name: "longitude out of range", report: &models.TelemetryReport{Latitude: floatPtr(9.0), Longitude: floatPtr(181.0), Timestamp: ts}},
		{name: "heading out of range", report: &models.TelemetryReport{Latitude: floatPtr(9.0), Longitude: floatPtr(38.7), HeadingDeg: floatPtr(360.0), Timestamp: ts}},
		{name: "negative speed", report: &models.TelemetryReport{Latitude: floatPtr(9.0), Longitude: floatPtr(38.7), SpeedMPS: -1, Timestamp: ts}},
		{name: "missing timestamp", report: &models.TelemetryReport{Latitude: floatPtr(9.0), Longitude: floatPtr(38.7)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ingestor.Ingest(context.Background(), "bus-1", tc.report)
			assert.ErrorIs(t, err, errs.ErrInvalidReport)
		})
	}
}

func TestIngest_MissingVehicleID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ingestor := NewIngestor(time.Second, mocks.NewMockFleetRepo(ctrl), nil)

	_, err := ingestor.Ingest(context.Background(), "", validTelemetry(time.Now()))
	assert.ErrorIs(t, err, errs.ErrInvalidReport)
}

func TestIngest_StaleReportRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFleet := mocks.NewMockFleetRepo(ctrl)
	mockFleet.EXPECT().
		AssignedRoute(gomock.Any(), "bus-1").
		Return("route-4", models.VehicleStatusOperational, nil)

	recorder := &appliedRecorder{}
	// Zero interval so every valid report applies immediately
	ingestor := NewIngestor(0, mockFleet, recorder.record)

	ts := time.Now()
	_, err := ingestor.Ingest(context.Background(), "bus-1", validTelemetry(ts))
	require.NoError(t, err)

	// Equal timestamp is stale, not just strictly older
	_, err = ingestor.Ingest(context.Background(), "bus-1", validTelemetry(ts))
	assert.ErrorIs(t, err, errs.ErrStaleReport)

	_, err = ingestor.Ingest(context.Background(), "bus-1", validTelemetry(ts.Add(-time.Second)))
	assert.ErrorIs(t, err, errs.ErrStaleReport)

	// State is unchanged: only the first report was applied
	assert.Len(t, recorder.snapshot(), 1)

	state, err := ingestor.Vehicle("bus-1")
	require.NoError(t, err)
	assert.Equal(t, ts, state.Location.Timestamp)
}

func TestIngest_CoalescesBurstToLatest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFleet := mocks.NewMockFleetRepo(ctrl)
	mockFleet.EXPECT().
		AssignedRoute(gomock.Any(), "bus-1").
		Return("route-4", models.VehicleStatusOperational, nil)

	recorder := &appliedRecorder{}
	ingestor := NewIngestor(50*time.Millisecond, mockFleet, recorder.record)

	base := time.Now()
	_, err := ingestor.Ingest(context.Background(), "bus-1", validTelemetry(base))
	require.NoError(t, err)

	// Two reports inside the minimum interval: both accepted, only the most
	// recent survives the coalescing window.
	_, err = ingestor.Ingest(context.Background(), "bus-1", validTelemetry(base.Add(10*time.Millisecond)))
	require.NoError(t, err)
	_, err = ingestor.Ingest(context.Background(), "bus-1", validTelemetry(base.Add(20*time.Millisecond)))
	require.NoError(t, err)

	// Wait for the flush timer to fire
	assert.Eventually(t, func() bool {
		return len(recorder.snapshot()) == 2
	}, time.Second, 10*time.Millisecond)

	applied := recorder.snapshot()
	require.Len(t, applied, 2)
	assert.Equal(t, base, applied[0].Location.Timestamp)
	assert.Equal(t, base.Add(20*time.Millisecond), applied[1].Location.Timestamp)

	state, err := ingestor.Vehicle("bus-1")
	require.NoError(t, err)
	assert.Equal(t, base.Add(20*time.Millisecond), state.Location.Timestamp)
}

func TestIngest_LateFlushDoesNotRegressNewerState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFleet := mocks.NewMockFleetRepo(ctrl)
	mockFleet.EXPECT().
		AssignedRoute(gomock.Any(), "bus-1").
		Return("route-4", models.VehicleStatusOperational, nil)

	recorder := &appliedRecorder{}
	ingestor := NewIngestor(time.Minute, mockFleet, recorder.record)

	base := time.Now()
	_, err := ingestor.Ingest(context.Background(), "bus-1", validTelemetry(base))
	require.NoError(t, err)

	// Coalesced behind the minimum interval, flush timer scheduled
	_, err = ingestor.Ingest(context.Background(), "bus-1", validTelemetry(base.Add(10*time.Millisecond)))
	require.NoError(t, err)

	// Make the interval appear elapsed so the next report applies directly
	// while the pending report's timer has not run yet.
	slot := ingestor.slot("bus-1")
	slot.mu.Lock()
	slot.lastApplied = time.Now().Add(-2 * time.Minute)
	slot.mu.Unlock()

	newest := base.Add(30 * time.Millisecond)
	_, err = ingestor.Ingest(context.Background(), "bus-1", validTelemetry(newest))
	require.NoError(t, err)

	// The timer callback firing after the direct apply must be a no-op: the
	// superseded report never overwrites the newer state.
	ingestor.flush("bus-1")

	state, err := ingestor.Vehicle("bus-1")
	require.NoError(t, err)
	assert.Equal(t, newest, state.Location.Timestamp)

	applied := recorder.snapshot()
	require.Len(t, applied, 2)
	assert.Equal(t, base, applied[0].Location.Timestamp)
	assert.Equal(t, newest, applied[1].Location.Timestamp)
}

func TestIngest_StaleAgainstPendingReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFleet := mocks.NewMockFleetRepo(ctrl)
	mockFleet.EXPECT().
		AssignedRoute(gomock.Any(), "bus-1").
		Return("route-4", models.VehicleStatusOperational, nil)

	recorder := &appliedRecorder{}
	ingestor := NewIngestor(200*time.Millisecond, mockFleet, recorder.record)

	base := time.Now()
	_, err := ingestor.Ingest(context.Background(), "bus-1", validTelemetry(base))
	require.NoError(t, err)

	_, err = ingestor.Ingest(context.Background(), "bus-1", validTelemetry(base.Add(20*time.Millisecond)))
	require.NoError(t, err)

	// Older than the pending coalesced report: dropped, not merged
	_, err = ingestor.Ingest(context.Background(), "bus-1", validTelemetry(base.Add(10*time.Millisecond)))
	assert.ErrorIs(t, err, errs.ErrStaleReport)
}

func TestSetStatus_UpdatesState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFleet := mocks.NewMockFleetRepo(ctrl)
	mockFleet.EXPECT().
		AssignedRoute(gomock.Any(), "bus-1").
		Return("route-4", models.VehicleStatusOperational, nil)

	ingestor := NewIngestor(0, mockFleet, nil)

	_, err := ingestor.Ingest(context.Background(), "bus-1", validTelemetry(time.Now()))
	require.NoError(t, err)

	ingestor.SetStatus("bus-1", models.VehicleStatusMaintenance)

	state, err := ingestor.Vehicle("bus-1")
	require.NoError(t, err)
	assert.Equal(t, models.VehicleStatusMaintenance, state.Status)
}

func TestVehicle_Unknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ingestor := NewIngestor(0, mocks.NewMockFleetRepo(ctrl), nil)

	_, err := ingestor.Vehicle("ghost")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestSnapshot_ReturnsCopies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFleet := mocks.NewMockFleetRepo(ctrl)
	mockFleet.EXPECT().
		AssignedRoute(gomock.Any(), gomock.Any()).
		Return("route-4", models.VehicleStatusOperational, nil).
		Times(2)

	ingestor := NewIngestor(0, mockFleet, nil)

	_, err := ingestor.Ingest(context.Background(), "bus-1", validTelemetry(time.Now()))
	require.NoError(t, err)
	_, err = ingestor.Ingest(context.Background(), "bus-2", validTelemetry(time.Now()))
	require.NoError(t, err)

	snapshot := ingestor.Snapshot()
	require.Len(t, snapshot, 2)

	// Mutating the snapshot must not leak back into the ingestor
	snapshot[0].Location.Latitude = 0

	fresh := ingestor.Snapshot()
	for _, state := range fresh {
		assert.NotEqual(t, 0.0, state.Location.Latitude)
	}
}
