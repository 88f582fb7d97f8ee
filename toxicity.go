package predictionguard

import "context"

// toxicityPath is the path to the toxicity endpoint.
const toxicityPath = "/toxicity"

// ToxicityRequest asks the server to score a text for toxicity.
type ToxicityRequest struct {
	Text string `json:"text"`
}

// NewToxicityRequest creates a toxicity check for text.
func NewToxicityRequest(text string) *ToxicityRequest {
	return &ToxicityRequest{Text: text}
}

// ToxicityCheck is one scored check in a toxicity response.
type ToxicityCheck struct {
	Score  float64 `json:"score"`
	Index  int     `json:"index"`
	Status string  `json:"status"`
}

// ToxicityResponse is the server's answer to a toxicity request.
type ToxicityResponse struct {
	ID      string          `json:"id"`
	Object  string          `json:"object"`
	Created int64           `json:"created"`
	Checks  []ToxicityCheck `json:"checks"`
}

// Toxicity calls the toxicity endpoint.
func (c *Client) Toxicity(ctx context.Context, req *ToxicityRequest) (*ToxicityResponse, error) {
	return doPost[ToxicityResponse](ctx, c, toxicityPath, req)
}
