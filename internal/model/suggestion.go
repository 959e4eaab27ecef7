package model

// Suggestion is one entry of the static prompt menu served by the
// suggestions endpoint.
type Suggestion struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Icon string `json:"icon"`
}
