package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const anthropicVersion = "2023-06-01"

// Message roles and content block types of the messages protocol.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"

	BlockText       = "text"
	BlockToolUse    = "tool_use"
	BlockToolResult = "tool_result"

	StopReasonToolUse = "tool_use"
)

// ContentBlock is one element of a message's content. Type selects
// which of the remaining fields are meaningful.
type ContentBlock struct {
	Type string `json:"type"`

	// BlockText
	Text string `json:"text,omitempty"`

	// BlockToolUse
	ID    string          `json:"id,omitempty"`
	Name  string          `json:"name,omitempty"`
	Input json.RawMessage `json:"input,omitempty"`

	// BlockToolResult
	ToolUseID string `json:"tool_use_id,omitempty"`
	Content   string `json:"content,omitempty"`
	IsError   bool   `json:"is_error,omitempty"`
}

// Message is one turn of the running transcript.
type Message struct {
	Role    string         `json:"role"`
	Content []ContentBlock `json:"content"`
}

// UserText builds a user message holding a single text block.
func UserText(text string) Message {
	return Message{
		Role:    RoleUser,
		Content: []ContentBlock{{Type: BlockText, Text: text}},
	}
}

// ToolResult builds a tool_result block answering one tool invocation.
func ToolResult(toolUseID, content string, isError bool) ContentBlock {
	return ContentBlock{
		Type:      BlockToolResult,
		ToolUseID: toolUseID,
		Content:   content,
		IsError:   isError,
	}
}

// Tool declares one invocable operation with its JSON input schema.
type Tool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"input_schema"`
}

// MessagesRequest holds the parameters for a model call.
type MessagesRequest struct {
	System   string
	Messages []Message
	Tools    []Tool
}

// MessagesResponse holds the result of a model call. StopReason is
// "tool_use" when the model requests operation invocations.
type MessagesResponse struct {
	Content    []ContentBlock
	StopReason string
	Model      string
}

// Client provides access to the hosted reasoning model.
type Client interface {
	// Messages submits a transcript plus tool menu and returns the
	// model's next turn.
	Messages(ctx context.Context, req MessagesRequest) (*MessagesResponse, error)
}

// anthropicClient implements Client against the Anthropic messages API.
type anthropicClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewClient creates a Client for the hosted reasoning model service.
func NewClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &anthropicClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// wireRequest is the JSON body sent to POST /v1/messages.
type wireRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system,omitempty"`
	Messages  []Message `json:"messages"`
	Tools     []Tool    `json:"tools,omitempty"`
}

// wireResponse is the JSON body returned by POST /v1/messages.
type wireResponse struct {
	Content    []ContentBlock `json:"content"`
	StopReason string         `json:"stop_reason"`
	Model      string         `json:"model"`
	Error      *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *anthropicClient) Messages(ctx context.Context, req MessagesRequest) (*MessagesResponse, error) {
	start := time.Now()
	requestID := uuid.NewString()

	resp, err := c.doRequest(ctx, req)

	event := CallEvent{
		RequestID: requestID,
		Model:     c.cfg.Model,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
		ErrorCode: errorCode(err),
	}
	if resp != nil {
		event.StopReason = resp.StopReason
	}
	c.observer.OnCallComplete(event)

	return resp, err
}

func (c *anthropicClient) doRequest(ctx context.Context, req MessagesRequest) (*MessagesResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	body := wireRequest{
		Model:     c.cfg.Model,
		MaxTokens: c.cfg.MaxTokens,
		System:    req.System,
		Messages:  req.Messages,
		Tools:     req.Tools,
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	url := c.cfg.BaseURL + "/v1/messages"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.cfg.APIKey)
	httpReq.Header.Set("anthropic-version", anthropicVersion)

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ErrTimeout
		}
		if isConnectionError(err) {
			return nil, ErrUnavailable
		}
		return nil, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	var resp wireResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if httpResp.StatusCode != http.StatusOK {
		if resp.Error != nil {
			return nil, fmt.Errorf("model returned status %d: %s", httpResp.StatusCode, resp.Error.Message)
		}
		return nil, fmt.Errorf("model returned status %d", httpResp.StatusCode)
	}

	return &MessagesResponse{
		Content:    resp.Content,
		StopReason: resp.StopReason,
		Model:      resp.Model,
	}, nil
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	default:
		return "API_ERROR"
	}
}
