// Package errs defines the error taxonomy shared across the live-tracking
// core. Callers classify failures with errors.Is against these sentinels;
// sites that need detail wrap them with %w.
package errs

import "errors"

var (
	// ErrDuplicateConnection is returned when registering a connection
	// identifier that is already registered.
	ErrDuplicateConnection = errors.New("duplicate connection")

	// ErrNotFound is returned for operations on unknown connections, rooms,
	// or vehicles.
	ErrNotFound = errors.New("not found")

	// ErrInvalidReport is returned for malformed position reports (missing
	// or non-numeric coordinates, out-of-range fields).
	ErrInvalidReport = errors.New("invalid report")

	// ErrStaleReport is returned for reports whose timestamp is not newer
	// than the currently stored state. Stale reports are dropped, not merged.
	ErrStaleReport = errors.New("stale report")

	// ErrSharingDisabled is returned when a subscriber position update
	// arrives without a prior opt-in.
	ErrSharingDisabled = errors.New("location sharing disabled")

	// ErrDeliveryFailure is returned when a member's outbound channel is
	// closed or full during publish. The member is dropped; the publish
	// continues for the remaining members.
	ErrDeliveryFailure = errors.New("delivery failure")
)
