package predictionguard

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

func TestVisionRequest_AddMessage_PairsImageAndText(t *testing.T) {
	req := NewVisionRequest("llava-1.5-7b-hf").
		AddMessage(RoleUser, "What is in this image?", "data:image/jpeg;base64,aGVsbG8=")

	if len(req.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(req.Messages))
	}

	content := req.Messages[0].Content
	if len(content) != 2 {
		t.Fatalf("expected 2 content parts, got %d", len(content))
	}
	if content[0].Type != "image_url" || content[0].ImageURL == nil {
		t.Errorf("expected first part to be the image, got %+v", content[0])
	}
	if content[1].Type != "text" || content[1].Text != "What is in this image?" {
		t.Errorf("expected second part to be the prompt, got %+v", content[1])
	}
}

func TestClient_ChatVision_RoundTrip(t *testing.T) {
	fixture := `{"id":"chat-0bPKglSv9bht4EdGEC8OBK8fuTmp7","object":"chat_completion","created":1717781672,"model":"llava-1.5-7b-hf","choices":[{"message":{"role":"assistant","content":"A peaceful forest clearing."},"index":0,"status":"success"}]}`

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		checkHeaders(t, r, true)
		if r.URL.Path != "/chat/completions" {
			t.Errorf("expected /chat/completions, got %s", r.URL.Path)
		}

		var req VisionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		if len(req.Messages) != 1 || len(req.Messages[0].Content) != 2 {
			t.Errorf("unexpected messages: %+v", req.Messages)
		}

		w.Write([]byte(fixture))
	})

	resp, err := client.ChatVision(context.Background(),
		NewVisionRequest("llava-1.5-7b-hf").
			AddMessage(RoleUser, "Describe the scene.", "data:image/jpeg;base64,aGVsbG8="))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if resp.Choices[0].Message.Content != "A peaceful forest clearing." {
		t.Errorf("unexpected content %q", resp.Choices[0].Message.Content)
	}
}
