package domain

// MutationState is the outcome a mutation reports back to the form that
// submitted it. Errors maps a field name to its ordered list of messages;
// Message is the operation-level summary. A nil state means the mutation
// succeeded and the caller should follow the redirect instead of re-rendering.
type MutationState struct {
	Errors  map[string][]string `json:"errors,omitempty"`
	Message string              `json:"message,omitempty"`
}
