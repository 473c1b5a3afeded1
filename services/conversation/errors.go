package conversation

// Error codes for the failure taxonomy. Place and date problems surface to the
// user as a single CLARIFY per turn; the rest are recovered internally.
const (
	CodeUnresolvedPlace    = "UNRESOLVED_PLACE"
	CodeUnresolvedDate     = "UNRESOLVED_DATE"
	CodeAmbiguousInput     = "AMBIGUOUS_INPUT"
	CodeInvalidDateRange   = "INVALID_DATE_RANGE"
	CodeCapabilityFailure  = "CAPABILITY_FAILURE"
	CodePersistenceFailure = "PERSISTENCE_FAILURE"
)

// TurnError is a typed conversation failure: a machine code plus the
// user-facing reason the composer phrases the clarification around.
type TurnError struct {
	Code    string
	Message string
}

func (e *TurnError) Error() string { return e.Message }
