package predictionguard

import "context"

// piiPath is the path to the PII detection endpoint. The upper-case path
// segment is part of the server's contract.
const piiPath = "/PII"

// ReplaceMethod selects how detected PII is replaced in the prompt.
type ReplaceMethod string

// The replacement strategies supported by the PII endpoint.
const (
	ReplaceRandom   ReplaceMethod = "random"
	ReplaceMask     ReplaceMethod = "mask"
	ReplaceCategory ReplaceMethod = "category"
	ReplaceFake     ReplaceMethod = "fake"
)

// PIIRequest asks the server to detect and optionally replace PII in a
// prompt.
type PIIRequest struct {
	Prompt        string        `json:"prompt"`
	Replace       bool          `json:"replace"`
	ReplaceMethod ReplaceMethod `json:"replace_method"`
}

// NewPIIRequest creates a PII request. When replace is true, detected PII
// is substituted using method.
func NewPIIRequest(prompt string, replace bool, method ReplaceMethod) *PIIRequest {
	return &PIIRequest{Prompt: prompt, Replace: replace, ReplaceMethod: method}
}

// PIICheck is one check in a PII response; NewPrompt is the input with PII
// replaced.
type PIICheck struct {
	NewPrompt string `json:"new_prompt"`
	Index     int    `json:"index"`
	Status    string `json:"status"`
}

// PIIResponse is the server's answer to a PII request. Created is a string
// on this endpoint.
type PIIResponse struct {
	ID      string     `json:"id"`
	Object  string     `json:"object"`
	Created string     `json:"created"`
	Checks  []PIICheck `json:"checks"`
}

// PII calls the PII detection endpoint.
func (c *Client) PII(ctx context.Context, req *PIIRequest) (*PIIResponse, error) {
	return doPost[PIIResponse](ctx, c, piiPath, req)
}
