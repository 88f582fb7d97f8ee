package predictionguard

import "context"

// embeddingsPath is the path to the embeddings endpoint.
const embeddingsPath = "/embeddings"

// TruncateDirection selects which end of an over-long input is truncated.
type TruncateDirection string

// Directions accepted by the embeddings endpoint.
const (
	TruncateRight TruncateDirection = "Right"
	TruncateLeft  TruncateDirection = "Left"
)

// EmbeddingInput is one item to embed: text, a base64 encoded image, or
// both.
type EmbeddingInput struct {
	Text  string `json:"text,omitempty"`
	Image string `json:"image,omitempty"`
}

// EmbeddingRequest is the payload for the embeddings endpoint.
type EmbeddingRequest struct {
	Model             string             `json:"model"`
	Input             []EmbeddingInput   `json:"input"`
	Truncate          *bool              `json:"truncate,omitempty"`
	TruncateDirection *TruncateDirection `json:"truncate_direction,omitempty"`
}

// NewEmbeddingRequest creates an embedding request for the given model with
// a single input. Either text or image may be empty.
func NewEmbeddingRequest(model string, text string, image string) *EmbeddingRequest {
	return &EmbeddingRequest{
		Model: model,
		Input: []EmbeddingInput{{Text: text, Image: image}},
	}
}

// AddInput appends another item to embed.
func (r *EmbeddingRequest) AddInput(text string, image string) *EmbeddingRequest {
	r.Input = append(r.Input, EmbeddingInput{Text: text, Image: image})
	return r
}

// WithTruncate enables truncation of over-long inputs in the given
// direction.
func (r *EmbeddingRequest) WithTruncate(direction TruncateDirection) *EmbeddingRequest {
	truncate := true
	r.Truncate = &truncate
	r.TruncateDirection = &direction
	return r
}

// EmbeddingData is one embedding vector in the response.
type EmbeddingData struct {
	Index     int       `json:"index"`
	Object    string    `json:"object"`
	Status    string    `json:"status"`
	Embedding []float64 `json:"embedding"`
}

// EmbeddingResponse is the server's answer to an embedding request.
type EmbeddingResponse struct {
	ID      string          `json:"id"`
	Object  string          `json:"object"`
	Created int64           `json:"created"`
	Model   string          `json:"model"`
	Data    []EmbeddingData `json:"data"`
}

// Embeddings calls the embeddings endpoint.
func (c *Client) Embeddings(ctx context.Context, req *EmbeddingRequest) (*EmbeddingResponse, error) {
	return doPost[EmbeddingResponse](ctx, c, embeddingsPath, req)
}
