package repository

import (
	"context"
	"fmt"

	"github.com/shegerlabs/transitlive/internal/pkg/constants"
	"github.com/shegerlabs/transitlive/internal/pkg/database"
	"github.com/shegerlabs/transitlive/internal/pkg/models"
)

// StateRepo write-throughs last-known positions to Redis so the fleet
// picture survives a restart and radius queries stay off the hot path.
type StateRepo struct {
	redis *database.RedisClient
}

// NewStateRepo creates a state repository over Redis
func NewStateRepo(redis *database.RedisClient) *StateRepo {
	return &StateRepo{redis: redis}
}

// SaveVehicleState stores a vehicle's last-known state hash and refreshes the
// fleet geo set.
func (r *StateRepo) SaveVehicleState(ctx context.Context, state *models.VehicleState) error {
	key := fmt.Sprintf(constants.KeyVehicleState, state.VehicleID)
	fields := map[string]interface{}{
		constants.FieldLatitude:  state.Location.Latitude,
		constants.FieldLongitude: state.Location.Longitude,
		constants.FieldSpeed:     state.SpeedMPS,
		constants.FieldRouteID:   state.RouteID,
		constants.FieldStatus:    string(state.Status),
		constants.FieldTimestamp: state.Location.Timestamp.UnixMilli(),
	}
	if state.HeadingDeg != nil {
		fields[constants.FieldHeading] = *state.HeadingDeg
	}

	if err := r.redis.HSet(ctx, key, fields); err != nil {
		return fmt.Errorf("failed to store vehicle state: %w", err)
	}

	if err := r.redis.GeoAdd(ctx, constants.KeyVehicleGeo,
		state.Location.Longitude, state.Location.Latitude, state.VehicleID); err != nil {
		return fmt.Errorf("failed to update vehicle geo set: %w", err)
	}
	return nil
}

// SaveSubscriberPosition stores an opted-in subscriber's last position.
func (r *StateRepo) SaveSubscriberPosition(ctx context.Context, actorID string, location models.Location) error {
	key := fmt.Sprintf(constants.KeySubscriberLocation, actorID)
	fields := map[string]interface{}{
		constants.FieldLatitude:  location.Latitude,
		constants.FieldLongitude: location.Longitude,
		constants.FieldTimestamp: location.Timestamp.UnixMilli(),
	}
	if err := r.redis.HSet(ctx, key, fields); err != nil {
		return fmt.Errorf("failed to store subscriber position: %w", err)
	}
	return nil
}

// ClearSubscriberPosition removes a subscriber's stored position on opt-out.
func (r *StateRepo) ClearSubscriberPosition(ctx context.Context, actorID string) error {
	key := fmt.Sprintf(constants.KeySubscriberLocation, actorID)
	if err := r.redis.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to clear subscriber position: %w", err)
	}
	return nil
}

// NearbyVehicles returns vehicles within radiusM meters of a point, nearest
// first.
func (r *StateRepo) NearbyVehicles(ctx context.Context, location models.Location, radiusM float64) ([]*models.NearbyVehicle, error) {
	results, err := r.redis.GeoRadius(ctx, constants.KeyVehicleGeo,
		location.Longitude, location.Latitude, radiusM, "m")
	if err != nil {
		return nil, fmt.Errorf("failed to query nearby vehicles: %w", err)
	}

	vehicles := make([]*models.NearbyVehicle, 0, len(results))
	for _, res := range results {
		vehicles = append(vehicles, &models.NearbyVehicle{
			VehicleID: res.Name,
			Latitude:  res.Latitude,
			Longitude: res.Longitude,
			DistanceM: res.Dist,
		})
	}
	return vehicles, nil
}
