package types

// DraftState is the position of an offboarding draft in its review flow
type DraftState string

const (
	DraftStateEditing    DraftState = "editing"
	DraftStateReviewing  DraftState = "reviewing"
	DraftStateSubmitting DraftState = "submitting"
)

// IsEditable reports whether field edits are accepted in this state
func (s DraftState) IsEditable() bool {
	return s == DraftStateEditing || s == DraftStateReviewing
}

func (s DraftState) String() string {
	return string(s)
}
