package predictionguard

import "context"

// completionPath is the path to the text completions endpoint.
const completionPath = "/completions"

// CompletionRequest is the payload for the text completions endpoint.
type CompletionRequest struct {
	Model       string   `json:"model"`
	Prompt      string   `json:"prompt"`
	MaxTokens   int      `json:"max_tokens,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
	TopP        *float64 `json:"top_p,omitempty"`
	Stream      bool     `json:"stream,omitempty"`
}

// NewCompletionRequest creates a completion request for the given model and
// prompt.
func NewCompletionRequest(model string, prompt string) *CompletionRequest {
	return &CompletionRequest{Model: model, Prompt: prompt}
}

// WithMaxTokens sets the maximum number of tokens to generate.
func (r *CompletionRequest) WithMaxTokens(maxTokens int) *CompletionRequest {
	r.MaxTokens = maxTokens
	return r
}

// WithTemperature sets the sampling temperature.
func (r *CompletionRequest) WithTemperature(temperature float64) *CompletionRequest {
	r.Temperature = &temperature
	return r
}

// WithTopP sets the nucleus sampling parameter.
func (r *CompletionRequest) WithTopP(topP float64) *CompletionRequest {
	r.TopP = &topP
	return r
}

// CompletionChoice is one generated completion.
type CompletionChoice struct {
	Text   string `json:"text"`
	Index  int    `json:"index"`
	Status string `json:"status"`
	Model  string `json:"model"`
}

// CompletionResponse is the server's answer to a completion request.
type CompletionResponse struct {
	ID      string             `json:"id"`
	Object  string             `json:"object"`
	Created int64              `json:"created"`
	Choices []CompletionChoice `json:"choices"`
}

// CompletionEventChoice is one choice within a streamed completion chunk.
type CompletionEventChoice struct {
	Text         string `json:"text"`
	Index        int    `json:"index"`
	FinishReason string `json:"finish_reason"`
}

// CompletionEvent is a single chunk of a streamed completion, corresponding
// to one server-sent event.
type CompletionEvent struct {
	ID      string                  `json:"id"`
	Object  string                  `json:"object"`
	Created int64                   `json:"created"`
	Model   string                  `json:"model"`
	Choices []CompletionEventChoice `json:"choices"`
}

// Text returns the text delta of the first choice, or "" when the chunk
// carries none.
func (e CompletionEvent) Text() string {
	if len(e.Choices) == 0 {
		return ""
	}
	return e.Choices[0].Text
}

// Completion calls the text completions endpoint.
func (c *Client) Completion(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error) {
	return doPost[CompletionResponse](ctx, c, completionPath, req)
}

// CompletionStream calls the text completions endpoint with streaming
// enabled and returns a lazy sequence of [CompletionEvent] chunks. See
// [Stream] for the consumption and resource-release contract.
func (c *Client) CompletionStream(ctx context.Context, req *CompletionRequest) (*Stream[CompletionEvent], error) {
	streamReq := *req
	streamReq.Stream = true

	return streamRequest[CompletionEvent](ctx, c, completionPath, &streamReq)
}
