package domain

import "errors"

// Domain-level "no data" conditions. These are expected outcomes of the
// pipeline, not faults, and map to client-error responses at the edge.
var (
	// ErrNoData means fewer than 3 raw rows were parsed or no row
	// survived positional shaping.
	ErrNoData = errors.New("no valid outage data found")

	// ErrNoAllowedSites means every extracted record was dropped by the
	// allowed-secondary-site filter.
	ErrNoAllowedSites = errors.New("no records from allowed secondary sites")

	// ErrDecodeFailed means every charset fallback was exhausted. The
	// final fallback substitutes lossily, so this is effectively
	// unreachable, but it stays a modeled outcome.
	ErrDecodeFailed = errors.New("failed to decode input with any supported encoding")
)
