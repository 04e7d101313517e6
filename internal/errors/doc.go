// Package errors provides the structured error type used across rpg-battle.
//
// Errors carry a Code, a user-facing message, an optional cause and metadata:
//
//	err := errors.NotFound("battle not found").WithMeta("battle_id", id)
//
// Wrapping keeps the code of an existing *Error and defaults to CodeInternal
// for foreign errors:
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to save battle report")
//	}
//
// Construction-time validation uses the ValidationBuilder, which collects
// field-level problems and converts them into a single InvalidArgument error:
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Roller == nil {
//	    vb.RequiredField("Roller")
//	}
//	return vb.Build()
//
// Combat itself never returns errors for ordinary outcomes: missed attacks,
// resisted status effects and failed escapes are normal branches. Errors are
// reserved for malformed definitions, missing lookups and aborted battles.
package errors
