package entity

// Status is the outcome level of an engine operation.
type Status string

const (
	// StatusSuccess means the request was honoured exactly.
	StatusSuccess Status = "success"
	// StatusWarning means the request was honoured with an automatic correction.
	StatusWarning Status = "warning"
	// StatusError means the request was rejected and nothing changed.
	StatusError Status = "error"
)

// AssignmentResult reports the outcome of an assignment or purchase.
type AssignmentResult struct {
	Status  Status
	Message string
	// Cause is the domain error behind StatusError, nil otherwise.
	Cause error
	// Houses is the resulting house count on the asset.
	Houses int
	// HousesAdded is how many houses were actually built by this call.
	HousesAdded int
	// Charged is the amount debited from the player, 0 when nothing was charged.
	Charged int
}

// Rejected builds an error result.
func Rejected(cause error, message string) AssignmentResult {
	return AssignmentResult{Status: StatusError, Message: message, Cause: cause}
}

// OK reports whether the state was changed (success or warning).
func (r AssignmentResult) OK() bool {
	return r.Status != StatusError
}
