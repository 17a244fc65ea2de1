// Package errors provides structured errors for the grimdank editor engine.
//
// Every error carries a Code, a user-facing Message, an optional Cause and
// free-form Meta. Errors that cross the editor boundary are additionally
// tagged with a Kind:
//
//   - KindValidationRejection: an attachment mutation was refused
//     (duplicate, slot mismatch, slot full). Never reaches the backend.
//   - KindQuantityInconsistency: weapon quantities of a slot exceed the
//     unit's model count. Only blocks a submit.
//   - KindEstimationFailure: an estimator call failed. The estimation
//     dialog stays open with its previous result.
//   - KindPersistenceFailure: a create/update/delete against the backend
//     failed. Editor state is left untouched.
//
// # Basic Usage
//
//	err := errors.NotFound("rule not found").WithMeta("rule_id", id)
//
//	if err := client.CreateUnit(ctx, body); err != nil {
//	    return errors.Wrap(err, "failed to save unit")
//	}
//
// Wrap keeps the code and metadata of an existing *Error, so a persistence
// failure stays a persistence failure as it travels up.
//
// # Backend responses
//
// CodeFromHTTPStatus maps the status of a failed backend call onto a Code;
// the backend's own message is preferred over a generic one when present.
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("BackendURL", cfg.BackendURL, vb)
//	errors.ValidatePositive("RequestTimeout", int64(cfg.RequestTimeout), vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
