package secretary

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/DimitrisBelias/Personal-Secretary/internal/domain"
	"github.com/DimitrisBelias/Personal-Secretary/internal/llm"
)

// RecordStore is the subset of store operations the tool menu exposes.
type RecordStore interface {
	AddItem(ctx context.Context, d domain.ItemDraft) error
	ListItems(ctx context.Context, t domain.ItemType) ([]domain.WorkItem, error)
	Upcoming(ctx context.Context, days int) (*domain.UpcomingWork, error)
}

// Secretary answers free-form text by letting the reasoning model drive
// store operations through a fixed tool menu. Tool writes happen
// immediately; there is no confirmation step between the model's
// decision and the remote write.
type Secretary struct {
	client    llm.Client
	store     RecordStore
	maxRounds int
}

// DefaultMaxRounds bounds the tool invocation loop. The observed
// behavior had no cap; this guards against request amplification.
const DefaultMaxRounds = 8

// New creates a Secretary. maxRounds <= 0 selects DefaultMaxRounds.
func New(client llm.Client, store RecordStore, maxRounds int) *Secretary {
	if maxRounds <= 0 {
		maxRounds = DefaultMaxRounds
	}
	return &Secretary{client: client, store: store, maxRounds: maxRounds}
}

// Respond submits one user message and loops over tool invocations
// until the model produces a final text answer or the round cap is hit.
func (s *Secretary) Respond(ctx context.Context, userText string) (string, error) {
	messages := []llm.Message{llm.UserText(userText)}
	tools := toolDefinitions()

	var lastText string
	for round := 0; round < s.maxRounds; round++ {
		resp, err := s.client.Messages(ctx, llm.MessagesRequest{
			System:   systemPrompt,
			Messages: messages,
			Tools:    tools,
		})
		if err != nil {
			return "", fmt.Errorf("model call failed: %w", err)
		}

		if text := textContent(resp.Content); text != "" {
			lastText = text
		}
		if resp.StopReason != llm.StopReasonToolUse {
			return lastText, nil
		}

		var results []llm.ContentBlock
		for _, block := range resp.Content {
			if block.Type != llm.BlockToolUse {
				continue
			}
			output, isErr := s.execute(ctx, block.Name, block.Input)
			results = append(results, llm.ToolResult(block.ID, output, isErr))
		}

		messages = append(messages,
			llm.Message{Role: llm.RoleAssistant, Content: resp.Content},
			llm.Message{Role: llm.RoleUser, Content: results},
		)
	}

	if lastText == "" {
		lastText = "I could not finish that request."
	}
	return lastText + "\n\n(stopped after reaching the tool invocation limit)", nil
}

type addItemArgs struct {
	Title   string `json:"title"`
	Course  string `json:"course"`
	DueDate string `json:"due_date"`
	Notes   string `json:"notes"`
	Status  string `json:"status"`
}

type upcomingArgs struct {
	Days int `json:"days"`
}

// itemView is the compact representation fed back to the model.
type itemView struct {
	Title   string `json:"title"`
	Course  string `json:"course"`
	DueDate string `json:"due_date"`
	Status  string `json:"status"`
}

// execute runs one named operation. Failures become textual error
// results fed back to the model, never Go errors.
func (s *Secretary) execute(ctx context.Context, name string, input json.RawMessage) (string, bool) {
	switch name {
	case toolAddAssignment:
		return s.addItem(ctx, domain.ItemAssignment, input)
	case toolAddLab:
		return s.addItem(ctx, domain.ItemLab, input)
	case toolAddProject:
		return s.addItem(ctx, domain.ItemProject, input)
	case toolUpcomingWork:
		return s.upcoming(ctx, input)
	case toolListAssign:
		return s.listItems(ctx, domain.ItemAssignment)
	case toolListLabs:
		return s.listItems(ctx, domain.ItemLab)
	case toolListProjects:
		return s.listItems(ctx, domain.ItemProject)
	default:
		return fmt.Sprintf("Unknown tool: %s", name), true
	}
}

func (s *Secretary) addItem(ctx context.Context, t domain.ItemType, input json.RawMessage) (string, bool) {
	var args addItemArgs
	if err := json.Unmarshal(input, &args); err != nil {
		return fmt.Sprintf("Error: invalid %s arguments: %v", t, err), true
	}

	draft := domain.ItemDraft{
		Type:       t,
		Name:       args.Title,
		CourseCode: args.Course,
		DueDate:    args.DueDate,
		Notes:      args.Notes,
	}
	if args.Status != "" {
		draft.Status = domain.ParseStatus(args.Status)
	}

	if err := s.store.AddItem(ctx, draft); err != nil {
		return fmt.Sprintf("Error: %v", err), true
	}
	return fmt.Sprintf("%s '%s' added successfully for %s, due %s",
		capitalize(string(t)), args.Title, args.Course, args.DueDate), false
}

func (s *Secretary) upcoming(ctx context.Context, input json.RawMessage) (string, bool) {
	args := upcomingArgs{Days: 7}
	if len(input) > 0 {
		if err := json.Unmarshal(input, &args); err != nil {
			return fmt.Sprintf("Error: invalid arguments: %v", err), true
		}
	}
	if args.Days <= 0 {
		args.Days = 7
	}

	work, err := s.store.Upcoming(ctx, args.Days)
	if err != nil {
		return fmt.Sprintf("Error: %v", err), true
	}

	grouped := map[string][]itemView{
		"assignments": itemViews(work.Assignments),
		"labs":        itemViews(work.Labs),
		"projects":    itemViews(work.Projects),
	}
	data, err := json.MarshalIndent(grouped, "", "  ")
	if err != nil {
		return fmt.Sprintf("Error: %v", err), true
	}
	return string(data), false
}

func (s *Secretary) listItems(ctx context.Context, t domain.ItemType) (string, bool) {
	items, err := s.store.ListItems(ctx, t)
	if err != nil {
		return fmt.Sprintf("Error: %v", err), true
	}
	data, err := json.MarshalIndent(itemViews(items), "", "  ")
	if err != nil {
		return fmt.Sprintf("Error: %v", err), true
	}
	return string(data), false
}

func itemViews(items []domain.WorkItem) []itemView {
	views := make([]itemView, 0, len(items))
	for _, it := range items {
		views = append(views, itemView{
			Title:   it.Name,
			Course:  it.CourseCode,
			DueDate: it.DueDate,
			Status:  string(it.Status),
		})
	}
	return views
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func textContent(blocks []llm.ContentBlock) string {
	var b strings.Builder
	for _, block := range blocks {
		if block.Type == llm.BlockText {
			b.WriteString(block.Text)
		}
	}
	return b.String()
}
