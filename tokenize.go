package predictionguard

import "context"

// tokenizePath is the path to the tokenize endpoint.
const tokenizePath = "/tokenize"

// TokenizeRequest asks the server to tokenize input with a model's
// tokenizer.
type TokenizeRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

// NewTokenizeRequest creates a tokenize request for the given model and
// input text.
func NewTokenizeRequest(model string, input string) *TokenizeRequest {
	return &TokenizeRequest{Model: model, Input: input}
}

// Token is one token in a tokenize response; Start and End are byte
// offsets into the input.
type Token struct {
	ID    int64  `json:"id"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text"`
}

// TokenizeResponse is the server's answer to a tokenize request.
type TokenizeResponse struct {
	ID      string  `json:"id"`
	Object  string  `json:"object"`
	Created int64   `json:"created"`
	Model   string  `json:"model"`
	Tokens  []Token `json:"tokens"`
}

// Tokenize calls the tokenize endpoint.
func (c *Client) Tokenize(ctx context.Context, req *TokenizeRequest) (*TokenizeResponse, error) {
	return doPost[TokenizeResponse](ctx, c, tokenizePath, req)
}
