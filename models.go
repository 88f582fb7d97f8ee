package predictionguard

import (
	"context"
	"net/url"
)

// modelsPath is the path to the model listing endpoint.
const modelsPath = "/models"

// Capability filters model listings by what a model can do.
type Capability string

// Capabilities recognized by the models endpoint.
const (
	CapabilityChatCompletion     Capability = "chat-completion"
	CapabilityChatWithImage      Capability = "chat-with-image"
	CapabilityCompletion         Capability = "completion"
	CapabilityEmbedding          Capability = "embedding"
	CapabilityEmbeddingWithImage Capability = "embedding-with-image"
	CapabilityTokenize           Capability = "tokenize"
)

// ModelCapabilities reports what a single model supports.
type ModelCapabilities struct {
	ChatCompletion     bool `json:"chat_completion"`
	ChatWithImage      bool `json:"chat_with_image"`
	Completion         bool `json:"completion"`
	Embedding          bool `json:"embedding"`
	EmbeddingWithImage bool `json:"embedding_with_image"`
	Tokenize           bool `json:"tokenize"`
}

// ModelData describes one hosted model.
type ModelData struct {
	ID               string            `json:"id"`
	Object           string            `json:"object"`
	Created          string            `json:"created"`
	OwnedBy          string            `json:"owned_by"`
	Description      string            `json:"description"`
	MaxContextLength int64             `json:"max_context_length"`
	PromptFormat     string            `json:"prompt_format"`
	Capabilities     ModelCapabilities `json:"capabilities"`
}

// ModelsResponse is the server's model listing.
type ModelsResponse struct {
	Object string      `json:"object"`
	Data   []ModelData `json:"data"`
}

// ListModels returns the hosted models. A non-empty capability restricts
// the listing to models supporting it.
func (c *Client) ListModels(ctx context.Context, capability Capability) (*ModelsResponse, error) {
	var query url.Values
	if capability != "" {
		query = url.Values{"capability": []string{string(capability)}}
	}
	return doGet[ModelsResponse](ctx, c, modelsPath, query)
}
