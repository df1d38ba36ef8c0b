package services

import "errors"

// Errors that cross the service boundary. Everything else the pipeline
// encounters resolves into PortfolioResult fields instead of failing.
var (
	// ErrNoData means every extracted identifier came back unresolved.
	// Recoverable: the caller should ask the user to verify the identifiers.
	ErrNoData = errors.New("no fund data could be resolved for any identifier")

	// ErrIncompleteMix means a target-mix table does not sum to 100%.
	// This is a configuration defect, never user-caused.
	ErrIncompleteMix = errors.New("target mix percentages do not sum to 100")

	// ErrUnknownProfile means the risk profile has no target-mix table.
	ErrUnknownProfile = errors.New("unknown risk profile")
)
