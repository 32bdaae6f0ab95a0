package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) Config {
	cfg := DefaultConfig()
	cfg.APIKey = "test-key"
	cfg.BaseURL = baseURL
	cfg.TimeoutMs = 2000
	return cfg
}

func TestAnthropicClient_Messages_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, anthropicVersion, r.Header.Get("anthropic-version"))

		var req wireRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "claude-sonnet-4-20250514", req.Model)
		assert.Equal(t, "be helpful", req.System)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, RoleUser, req.Messages[0].Role)

		resp := wireResponse{
			Content:    []ContentBlock{{Type: BlockText, Text: "done"}},
			StopReason: "end_turn",
			Model:      "claude-sonnet-4-20250514",
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), NoopObserver{})
	resp, err := client.Messages(context.Background(), MessagesRequest{
		System:   "be helpful",
		Messages: []Message{UserText("hello")},
	})

	require.NoError(t, err)
	assert.Equal(t, "end_turn", resp.StopReason)
	require.Len(t, resp.Content, 1)
	assert.Equal(t, "done", resp.Content[0].Text)
}

func TestAnthropicClient_Messages_ToolUse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := wireResponse{
			Content: []ContentBlock{
				{Type: BlockText, Text: "Let me check."},
				{
					Type:  BlockToolUse,
					ID:    "toolu_01",
					Name:  "query_upcoming_work",
					Input: json.RawMessage(`{"days":7}`),
				},
			},
			StopReason: StopReasonToolUse,
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), NoopObserver{})
	resp, err := client.Messages(context.Background(), MessagesRequest{
		Messages: []Message{UserText("what's due?")},
	})

	require.NoError(t, err)
	assert.Equal(t, StopReasonToolUse, resp.StopReason)
	require.Len(t, resp.Content, 2)
	assert.Equal(t, BlockToolUse, resp.Content[1].Type)
	assert.Equal(t, "toolu_01", resp.Content[1].ID)
	assert.Equal(t, "query_upcoming_work", resp.Content[1].Name)
	assert.JSONEq(t, `{"days":7}`, string(resp.Content[1].Input))
}

func TestAnthropicClient_Messages_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.TimeoutMs = 50
	client := NewClient(cfg, NoopObserver{})

	_, err := client.Messages(context.Background(), MessagesRequest{
		Messages: []Message{UserText("hello")},
	})
	assert.True(t, errors.Is(err, ErrTimeout))
}

func TestAnthropicClient_Messages_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"message": "max_tokens required"},
		})
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), NoopObserver{})
	_, err := client.Messages(context.Background(), MessagesRequest{
		Messages: []Message{UserText("hello")},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
	assert.Contains(t, err.Error(), "max_tokens required")
}

func TestAnthropicClient_Messages_ObserverEvent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(wireResponse{
			Content:    []ContentBlock{{Type: BlockText, Text: "ok"}},
			StopReason: "end_turn",
		})
	}))
	defer srv.Close()

	var events []CallEvent
	observer := observerFunc(func(e CallEvent) { events = append(events, e) })

	client := NewClient(testConfig(srv.URL), observer)
	_, err := client.Messages(context.Background(), MessagesRequest{
		Messages: []Message{UserText("hello")},
	})

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.True(t, events[0].Success)
	assert.NotEmpty(t, events[0].RequestID)
	assert.Equal(t, "end_turn", events[0].StopReason)
	assert.Empty(t, events[0].ErrorCode)
}

type observerFunc func(CallEvent)

func (f observerFunc) OnCallComplete(e CallEvent) { f(e) }
