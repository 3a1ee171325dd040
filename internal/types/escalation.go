package types

// EscalationState tracks the two-phase emergency unlock workflow for one
// position. The absence of an escalation record means no request was made;
// once a record exists it only ever moves REQUESTED -> EXECUTED.
type EscalationState string

const (
	EscalationRequested EscalationState = "REQUESTED"
	EscalationExecuted  EscalationState = "EXECUTED"
)

func (s EscalationState) String() string {
	return string(s)
}

// QualifiedStatesForEscalationExecute returns the escalation states from
// which an execute transition is allowed.
func QualifiedStatesForEscalationExecute() []EscalationState {
	return []EscalationState{EscalationRequested}
}
