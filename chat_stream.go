package predictionguard

import "strings"

// ChatEventDelta is the incremental content carried by one streamed chat
// chunk.
type ChatEventDelta struct {
	Content string `json:"content"`
}

// ChatEventChoice is one choice within a streamed chat chunk. GeneratedText
// and FinishReason are only populated on the final chunk for the choice.
type ChatEventChoice struct {
	GeneratedText string         `json:"generated_text"`
	Index         int            `json:"index"`
	Logprobs      float64        `json:"logprobs"`
	FinishReason  string         `json:"finish_reason"`
	Delta         ChatEventDelta `json:"delta"`
}

// ChatEvent is a single chunk of a streamed chat completion, corresponding
// to one server-sent event.
type ChatEvent struct {
	ID      string            `json:"id"`
	Object  string            `json:"object"`
	Created int64             `json:"created"`
	Model   string            `json:"model"`
	Choices []ChatEventChoice `json:"choices"`
}

// Text returns the content delta of the first choice, or "" when the chunk
// carries no content.
func (e ChatEvent) Text() string {
	if len(e.Choices) == 0 {
		return ""
	}
	return e.Choices[0].Delta.Content
}

// CollectChatText consumes the remaining stream and concatenates the
// content deltas of every chunk's first choice. A convenience for callers
// who want streaming transport without incremental display.
func CollectChatText(stream *Stream[ChatEvent]) (string, error) {
	var sb strings.Builder
	for event, err := range stream.Events() {
		if err != nil {
			return sb.String(), err
		}
		sb.WriteString(event.Text())
	}
	return sb.String(), nil
}
