package predictionguard

import "context"

// injectionPath is the path to the prompt-injection detection endpoint.
const injectionPath = "/injection"

// InjectionRequest asks the server to score a prompt for injection attempts.
type InjectionRequest struct {
	Prompt string `json:"prompt"`
	Detect bool   `json:"detect"`
}

// NewInjectionRequest creates an injection detection request for prompt.
func NewInjectionRequest(prompt string) *InjectionRequest {
	return &InjectionRequest{Prompt: prompt, Detect: true}
}

// InjectionCheck is one scored check in an injection response.
type InjectionCheck struct {
	Probability float64 `json:"probability"`
	Index       int     `json:"index"`
	Status      string  `json:"status"`
}

// InjectionResponse is the server's answer to an injection request. Created
// is a string on this endpoint, unlike most others.
type InjectionResponse struct {
	ID      string           `json:"id"`
	Object  string           `json:"object"`
	Created string           `json:"created"`
	Checks  []InjectionCheck `json:"checks"`
}

// Injection calls the prompt-injection detection endpoint.
func (c *Client) Injection(ctx context.Context, req *InjectionRequest) (*InjectionResponse, error) {
	return doPost[InjectionResponse](ctx, c, injectionPath, req)
}
