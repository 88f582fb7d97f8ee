package predictionguard

import "context"

// factualityPath is the path to the factuality endpoint.
const factualityPath = "/factuality"

// FactualityRequest scores a text against a reference for factual
// consistency.
type FactualityRequest struct {
	Reference string `json:"reference"`
	Text      string `json:"text"`
}

// NewFactualityRequest creates a factuality check of text against the given
// reference.
func NewFactualityRequest(reference string, text string) *FactualityRequest {
	return &FactualityRequest{Reference: reference, Text: text}
}

// FactualityCheck is one scored check in a factuality response.
type FactualityCheck struct {
	Score  float64 `json:"score"`
	Index  int     `json:"index"`
	Status string  `json:"status"`
}

// FactualityResponse is the server's answer to a factuality request.
type FactualityResponse struct {
	ID      string            `json:"id"`
	Object  string            `json:"object"`
	Created int64             `json:"created"`
	Checks  []FactualityCheck `json:"checks"`
}

// Factuality calls the factuality endpoint.
func (c *Client) Factuality(ctx context.Context, req *FactualityRequest) (*FactualityResponse, error) {
	return doPost[FactualityResponse](ctx, c, factualityPath, req)
}
