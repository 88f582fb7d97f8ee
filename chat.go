package predictionguard

import "context"

// chatPath is the path to the chat completions endpoint.
const chatPath = "/chat/completions"

// Role identifies the author of a chat message.
type Role string

// The roles accepted by the chat endpoints.
const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single turn in a chat conversation.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
	Output  string `json:"output,omitempty"`
}

// ChatInput configures the server-side checks applied to the prompt before
// inference.
type ChatInput struct {
	BlockPromptInjection bool          `json:"block_prompt_injection"`
	PII                  string        `json:"pii,omitempty"`
	PIIReplaceMethod     ReplaceMethod `json:"pii_replace_method,omitempty"`
}

// ChatOutput configures the server-side checks applied to the generated
// response.
type ChatOutput struct {
	Factuality bool `json:"factuality"`
	Toxicity   bool `json:"toxicity"`
}

// ChatRequest is the payload for the chat completions endpoint. Build it
// with [NewChatRequest] and the chainable With/Add methods; optional fields
// left unset are omitted from the wire format so server defaults apply.
type ChatRequest struct {
	Model       string      `json:"model"`
	Messages    []Message   `json:"messages"`
	MaxTokens   int         `json:"max_tokens"`
	Temperature float64     `json:"temperature"`
	TopP        *float64    `json:"top_p,omitempty"`
	Input       *ChatInput  `json:"input,omitempty"`
	Output      *ChatOutput `json:"output,omitempty"`
	Stream      bool        `json:"stream,omitempty"`
}

// NewChatRequest creates a chat request for the given model with the server
// defaults for token budget and temperature.
func NewChatRequest(model string) *ChatRequest {
	return &ChatRequest{
		Model:       model,
		MaxTokens:   100,
		Temperature: 0.0,
	}
}

// AddMessage appends a message with the given role and content.
func (r *ChatRequest) AddMessage(role Role, content string) *ChatRequest {
	r.Messages = append(r.Messages, Message{Role: role, Content: content})
	return r
}

// WithMessage appends a fully-formed message.
func (r *ChatRequest) WithMessage(message Message) *ChatRequest {
	r.Messages = append(r.Messages, message)
	return r
}

// WithMaxTokens sets the maximum number of tokens to generate.
func (r *ChatRequest) WithMaxTokens(maxTokens int) *ChatRequest {
	r.MaxTokens = maxTokens
	return r
}

// WithTemperature sets the sampling temperature.
func (r *ChatRequest) WithTemperature(temperature float64) *ChatRequest {
	r.Temperature = temperature
	return r
}

// WithTopP sets the nucleus sampling parameter.
func (r *ChatRequest) WithTopP(topP float64) *ChatRequest {
	r.TopP = &topP
	return r
}

// WithInput enables prompt-side checks: prompt-injection blocking and,
// when piiPrompt is non-empty, PII replacement using the given method.
func (r *ChatRequest) WithInput(blockPromptInjection bool, piiPrompt string, method ReplaceMethod) *ChatRequest {
	input := &ChatInput{BlockPromptInjection: blockPromptInjection}
	if piiPrompt != "" {
		input.PII = piiPrompt
		input.PIIReplaceMethod = method
	}
	r.Input = input
	return r
}

// WithOutput enables response-side factuality and toxicity checks.
func (r *ChatRequest) WithOutput(checkFactuality, checkToxicity bool) *ChatRequest {
	r.Output = &ChatOutput{Factuality: checkFactuality, Toxicity: checkToxicity}
	return r
}

// ChatChoice is one generated completion in a chat response.
type ChatChoice struct {
	Message Message `json:"message"`
	Index   int     `json:"index"`
	Status  string  `json:"status"`
}

// ChatResponse is the server's answer to a chat completion request.
type ChatResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"`
	Created int64        `json:"created"`
	Model   string       `json:"model"`
	Choices []ChatChoice `json:"choices"`
}

// Chat calls the chat completions endpoint and returns the full response.
func (c *Client) Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	return doPost[ChatResponse](ctx, c, chatPath, req)
}

// ChatStream calls the chat completions endpoint with streaming enabled and
// returns a lazy sequence of [ChatEvent] chunks. See [Stream] for the
// consumption and resource-release contract.
func (c *Client) ChatStream(ctx context.Context, req *ChatRequest) (*Stream[ChatEvent], error) {
	// The streamed variant never carries output checks; the server rejects
	// the combination.
	streamReq := *req
	streamReq.Stream = true
	streamReq.Output = nil

	return streamRequest[ChatEvent](ctx, c, chatPath, &streamReq)
}
