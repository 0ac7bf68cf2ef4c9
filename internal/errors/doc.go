// Package errors provides the structured error type used across drd-plus-person.
//
// Errors carry a Code, a human readable message, an optional cause and free-form
// metadata. Rules violations additionally carry a reason so callers can tell two
// FailedPrecondition errors apart without parsing messages.
//
// # Basic Usage
//
//	err := errors.InvalidArgument("name is required")
//	err := errors.OutOfRangef("height %d cm is out of range", height)
//
// Rules violations:
//
//	err := errors.FailedPreconditionf("level %d requires %d experiences", rank, required).
//	    WithReason("insufficient_experience").
//	    WithMeta("level_rank", rank)
//
//	if errors.HasReason(err, "insufficient_experience") {
//	    // ask for more memories or a lower level
//	}
//
// Wrapping keeps the code, meta and reason of the wrapped error:
//
//	if err := calc(); err != nil {
//	    return errors.Wrap(err, "failed to compute current properties")
//	}
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	errors.ValidateRange("level_rank", rank, 1, 21, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
