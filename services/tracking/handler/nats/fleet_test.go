package nats

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shegerlabs/transitlive/internal/pkg/models"
	"github.com/shegerlabs/transitlive/services/tracking/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleVehicleStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTrackingUC(ctrl)
	mockUC.EXPECT().
		SetVehicleStatus("bus-1", models.VehicleStatusMaintenance)

	handler := NewFleetHandler(mockUC, nil)

	event := models.VehicleStatusEvent{
		VehicleID: "bus-1",
		Status:    models.VehicleStatusMaintenance,
		Timestamp: time.Now(),
	}
	message, err := json.Marshal(event)
	require.NoError(t, err)

	assert.NoError(t, handler.handleVehicleStatus(message))
}

func TestHandleVehicleStatus_InvalidPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewFleetHandler(mocks.NewMockTrackingUC(ctrl), nil)

	assert.Error(t, handler.handleVehicleStatus([]byte("{broken")))
	assert.Error(t, handler.handleVehicleStatus([]byte(`{"status":"idle"}`)))
}

func TestHandleWaypointUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTrackingUC(ctrl)
	mockUC.EXPECT().
		InvalidateWaypoints("route-7")

	handler := NewFleetHandler(mockUC, nil)

	event := models.WaypointEvent{
		WaypointID: "wp-1",
		RouteID:    "route-7",
		Active:     false,
	}
	message, err := json.Marshal(event)
	require.NoError(t, err)

	assert.NoError(t, handler.handleWaypointUpdate(message))
}

func TestHandleWaypointUpdate_InvalidPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewFleetHandler(mocks.NewMockTrackingUC(ctrl), nil)

	assert.Error(t, handler.handleWaypointUpdate([]byte("not-json")))
	assert.Error(t, handler.handleWaypointUpdate([]byte(`{"waypoint_id":"wp-1"}`)))
}
