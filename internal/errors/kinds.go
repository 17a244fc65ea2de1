package errors

// Kind classifies an error by how the editor reacts to it
type Kind string

const (
	// KindValidationRejection marks an attachment mutation that was not applied
	KindValidationRejection Kind = "validation_rejection"

	// KindQuantityInconsistency marks weapon quantities exceeding the model count.
	// It never blocks a mutation, only a submit.
	KindQuantityInconsistency Kind = "quantity_inconsistency"

	// KindEstimationFailure marks a failed estimator call
	KindEstimationFailure Kind = "estimation_failure"

	// KindPersistenceFailure marks a failed create/update/delete against the backend
	KindPersistenceFailure Kind = "persistence_failure"
)

// MetaKind is the metadata key holding an error's Kind
const MetaKind = "kind"

// GetKind extracts the Kind from an error, or "" when none was set
func GetKind(err error) Kind {
	meta := GetMeta(err)
	if meta == nil {
		return ""
	}
	kind, _ := meta[MetaKind].(Kind)
	return kind
}

// IsValidationRejection checks if an error is an attachment rejection
func IsValidationRejection(err error) bool {
	return GetKind(err) == KindValidationRejection
}

// IsQuantityInconsistency checks if an error is a quantity inconsistency
func IsQuantityInconsistency(err error) bool {
	return GetKind(err) == KindQuantityInconsistency
}

// IsEstimationFailure checks if an error is an estimator failure
func IsEstimationFailure(err error) bool {
	return GetKind(err) == KindEstimationFailure
}

// IsPersistenceFailure checks if an error is a backend write failure
func IsPersistenceFailure(err error) bool {
	return GetKind(err) == KindPersistenceFailure
}
