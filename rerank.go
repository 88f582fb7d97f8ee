package predictionguard

import "context"

// rerankPath is the path to the rerank endpoint.
const rerankPath = "/rerank"

// RerankRequest ranks documents by relevance to a query.
type RerankRequest struct {
	Model           string   `json:"model"`
	Query           string   `json:"query"`
	Documents       []string `json:"documents"`
	ReturnDocuments bool     `json:"return_documents"`
}

// NewRerankRequest creates a rerank request. When returnDocuments is true
// the response results echo the document texts alongside their scores.
func NewRerankRequest(model string, query string, documents []string, returnDocuments bool) *RerankRequest {
	return &RerankRequest{
		Model:           model,
		Query:           query,
		Documents:       documents,
		ReturnDocuments: returnDocuments,
	}
}

// RerankResult is one ranked document. Index refers to the position in the
// request's Documents slice.
type RerankResult struct {
	Index          int     `json:"index"`
	RelevanceScore float64 `json:"relevance_score"`
	Text           string  `json:"text"`
}

// RerankResponse is the server's answer to a rerank request, ordered by
// descending relevance.
type RerankResponse struct {
	ID      string         `json:"id"`
	Object  string         `json:"object"`
	Created int64          `json:"created"`
	Model   string         `json:"model"`
	Results []RerankResult `json:"results"`
}

// Rerank calls the rerank endpoint.
func (c *Client) Rerank(ctx context.Context, req *RerankRequest) (*RerankResponse, error) {
	return doPost[RerankResponse](ctx, c, rerankPath, req)
}
