package dto

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// AttemptConflictResponse is returned when the exam was already taken; the
// client should follow ResultURL instead of retrying.
type AttemptConflictResponse struct {
	Message   string `json:"message"`
	ResultURL string `json:"result_url"`
}
