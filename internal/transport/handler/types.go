package handler

// ProcessResponse is the success body of the events webhook.
type ProcessResponse struct {
	Message        string `json:"message"`
	ProcessedCount int    `json:"processed_count"`
}
