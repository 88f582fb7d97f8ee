// Package predictionguard is a Go client for the Prediction Guard API. It
// covers chat and text completions (including SSE streaming), vision chat,
// factuality scoring, prompt-injection detection, PII detection and
// replacement, toxicity scoring, translation, embeddings, reranking,
// tokenization, and model listing.
//
// Create a [Client] with credentials from the environment and build typed
// requests per endpoint:
//
//	clt, err := predictionguard.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	req := predictionguard.NewChatRequest("Hermes-2-Pro-Llama-3-8B").
//	    AddMessage(predictionguard.RoleUser, "How do you feel about the world in general?").
//	    WithMaxTokens(1000).
//	    WithTemperature(0.85)
//
//	resp, err := clt.Chat(ctx, req)
//
// Streaming endpoints return a [Stream] that yields typed chunks as the
// server emits them:
//
//	stream, err := clt.ChatStream(ctx, req)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer stream.Close()
//
//	for event, err := range stream.Events() {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Print(event.Text())
//	}
//
// Every failure is returned as a typed error value: [ConfigError] for
// missing credentials, [APIError] for non-2xx responses, [DecodeError] for
// malformed JSON, [ErrStreamTruncated] for streams cut off before the
// server's [DONE] sentinel, and wrapped transport errors for connection
// failures. Nothing is retried or logged-and-swallowed.
//
// See the examples directory for a runnable sample per endpoint.
package predictionguard
