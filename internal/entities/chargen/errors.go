package chargen

import (
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
)

// Reasons carried by the domain errors
const (
	ReasonValueUnavailable       = "VALUE_UNAVAILABLE"
	ReasonBonusAlreadyApplied    = "BONUS_ALREADY_APPLIED"
	ReasonIncompleteAssignment   = "INCOMPLETE_ASSIGNMENT"
	ReasonInvalidBonusSelection  = "INVALID_BONUS_SELECTION"
	ReasonCharacterNotReady      = "CHARACTER_NOT_READY"
	ReasonReferenceDataNotLoaded = "REFERENCE_DATA_NOT_LOADED"
	ReasonReferenceLoadFailed    = "REFERENCE_LOAD_FAILED"
	ReasonValidationFailed       = errors.ReasonValidationFailed
)

// Domain errors. Match them with errors.Is; returned errors wrap these with
// call specific context.
var (
	ErrValueUnavailable = errors.FailedPrecondition("value is not available in the score pool").
				WithReason(ReasonValueUnavailable)

	ErrBonusAlreadyApplied = errors.FailedPrecondition("racial bonus has already been applied").
				WithReason(ReasonBonusAlreadyApplied)

	ErrIncompleteAssignment = errors.FailedPrecondition("not every ability has a score assigned").
				WithReason(ReasonIncompleteAssignment)

	ErrInvalidBonusSelection = errors.InvalidArgument("bonus selection must name two different abilities").
					WithReason(ReasonInvalidBonusSelection)

	ErrCharacterNotReady = errors.FailedPrecondition("character is not ready to be derived").
				WithReason(ReasonCharacterNotReady)

	ErrReferenceDataNotLoaded = errors.Unavailable("reference data has not been loaded").
					WithReason(ReasonReferenceDataNotLoaded)

	ErrReferenceLoadFailed = errors.Unavailable("reference data could not be loaded").
				WithReason(ReasonReferenceLoadFailed)

	ErrValidationFailed = errors.InvalidArgument("validation failed").
				WithReason(ReasonValidationFailed)
)
