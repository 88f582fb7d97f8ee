package predictionguard

import "context"

// Content types used in vision messages.
const (
	visionContentText     = "text"
	visionContentImageURL = "image_url"
)

// ImageURL wraps the image payload of a vision message. Only base64 data
// URIs are currently accepted by the server.
type ImageURL struct {
	URL string `json:"url"`
}

// VisionContent is one part of a vision message: either text or an image.
type VisionContent struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *ImageURL `json:"image_url,omitempty"`
}

// VisionMessage is a chat message whose content mixes text and images.
type VisionMessage struct {
	Role    Role            `json:"role"`
	Content []VisionContent `json:"content"`
}

// VisionRequest is the payload for chat completions with image input. It
// goes to the same endpoint as [ChatRequest] but carries structured message
// content.
type VisionRequest struct {
	Model       string          `json:"model"`
	Messages    []VisionMessage `json:"messages"`
	MaxTokens   int             `json:"max_tokens"`
	Temperature float64         `json:"temperature"`
	TopP        *float64        `json:"top_p,omitempty"`
	Input       *ChatInput      `json:"input,omitempty"`
	Output      *ChatOutput     `json:"output,omitempty"`
}

// NewVisionRequest creates a vision chat request for the given model.
func NewVisionRequest(model string) *VisionRequest {
	return &VisionRequest{
		Model:       model,
		MaxTokens:   100,
		Temperature: 0.0,
	}
}

// AddMessage appends a message pairing an image with a text prompt.
// imageURI must be a base64 data URI, e.g. "data:image/jpeg;base64,<data>".
// The webcontent package's FetchImage builds one from a remote image.
func (r *VisionRequest) AddMessage(role Role, prompt string, imageURI string) *VisionRequest {
	r.Messages = append(r.Messages, VisionMessage{
		Role: role,
		Content: []VisionContent{
			{Type: visionContentImageURL, ImageURL: &ImageURL{URL: imageURI}},
			{Type: visionContentText, Text: prompt},
		},
	})
	return r
}

// WithMaxTokens sets the maximum number of tokens to generate.
func (r *VisionRequest) WithMaxTokens(maxTokens int) *VisionRequest {
	r.MaxTokens = maxTokens
	return r
}

// WithTemperature sets the sampling temperature.
func (r *VisionRequest) WithTemperature(temperature float64) *VisionRequest {
	r.Temperature = temperature
	return r
}

// WithTopP sets the nucleus sampling parameter.
func (r *VisionRequest) WithTopP(topP float64) *VisionRequest {
	r.TopP = &topP
	return r
}

// WithInput enables prompt-side checks, as in [ChatRequest.WithInput].
func (r *VisionRequest) WithInput(blockPromptInjection bool, piiPrompt string, method ReplaceMethod) *VisionRequest {
	input := &ChatInput{BlockPromptInjection: blockPromptInjection}
	if piiPrompt != "" {
		input.PII = piiPrompt
		input.PIIReplaceMethod = method
	}
	r.Input = input
	return r
}

// WithOutput enables response-side factuality and toxicity checks.
func (r *VisionRequest) WithOutput(checkFactuality, checkToxicity bool) *VisionRequest {
	r.Output = &ChatOutput{Factuality: checkFactuality, Toxicity: checkToxicity}
	return r
}

// ChatVision calls the chat completions endpoint with image input.
func (c *Client) ChatVision(ctx context.Context, req *VisionRequest) (*ChatResponse, error) {
	return doPost[ChatResponse](ctx, c, chatPath, req)
}
