package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
var (
	// ErrAssetNotFound indicates that an asset with the given ID does not exist.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")
)

// Remote boundary errors represent failures talking to the API server. The
// dashboard converts these into an "unavailable" view state instead of letting
// them propagate past the store / summary boundary.
var (
	// ErrLedgerUnavailable indicates the asset list could not be fetched or decoded.
	ErrLedgerUnavailable = errors.New("asset ledger unavailable")

	// ErrSummaryUnavailable indicates the portfolio valuation could not be fetched or decoded.
	ErrSummaryUnavailable = errors.New("portfolio summary unavailable")
)

// ErrFailedToUpdateRates wraps failures of the scheduled exchange rate refresh.
var ErrFailedToUpdateRates = errors.New("failed to update exchange rates")
