// Package errors provides structured errors for the rpg-chargen service.
//
// Errors carry a Code (the broad category, mapped onto gRPC codes), an optional
// Reason (a stable machine-readable identifier for a specific domain failure),
// a human-readable message and free-form metadata.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("character not found")
//	err := errors.InvalidArgumentf("invalid ability score: %d", score)
//
// Domain sentinels pair a code with a reason and are matched with errors.Is:
//
//	var ErrBonusAlreadyApplied = errors.FailedPrecondition("racial bonus already applied").
//	    WithReason("BONUS_ALREADY_APPLIED")
//
//	if errors.Is(err, chargen.ErrBonusAlreadyApplied) {
//	    // the assignment is frozen
//	}
//
// Adding metadata:
//
//	err := errors.NotFound("session not found").
//	    WithMeta("session_id", sessionID)
//
// Wrapping errors keeps the code, reason and metadata of the cause:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to get session")
//	}
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	errors.ValidateRange("level", input.Level, 1, 20, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// Validation errors carry the VALIDATION_FAILED reason and the per-field
// messages under the "validation_errors" metadata key.
//
// # gRPC Integration
//
// ToGRPCError converts to a status error. The reason and metadata travel as an
// errdetails.ErrorInfo and field problems as an errdetails.BadRequest, so
// FromGRPCError on the client side restores code, reason and metadata.
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return NotFound / InvalidArgument
//   - Include relevant IDs in metadata
//   - Wrap storage errors with context
//
// Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Return domain sentinels for rule violations
//   - Wrap repository errors with business context
//
// Handler layer:
//   - Convert errors to gRPC format
package errors
