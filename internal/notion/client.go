package notion

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

	"github.com/DimitrisBelias/Personal-Secretary/internal/domain"
)

const (
	defaultBaseURL = "https://api.notion.com"
	apiVersion     = "2022-06-28"

	dateLayout = "2006-01-02"
)

// DatabaseIDs holds the identifiers of the four record collections.
type DatabaseIDs struct {
	Assignments string
	Labs        string
	Projects    string
	Courses     string
}

// Config holds configuration for the store adapter.
type Config struct {
	Token     string
	BaseURL   string // defaults to the hosted endpoint
	TimeoutMs int
	Databases DatabaseIDs
}

// Client is the record store adapter. It translates between plain
// records and the hosted database's property schema. Every public
// operation returns an error the caller must inspect; nothing is ever
// propagated as a panic.
type Client struct {
	cfg      Config
	http     *http.Client
	observer Observer
	now      func() time.Time
}

// NewClient creates a store adapter for the hosted database service.
func NewClient(cfg Config, observer Observer) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.TimeoutMs <= 0 {
		cfg.TimeoutMs = 15000
	}
	if observer == nil {
		observer = NoopObserver{}
	}
	return &Client{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
		now:      time.Now,
	}
}

func (c *Client) databaseID(t domain.ItemType) string {
	switch t {
	case domain.ItemLab:
		return c.cfg.Databases.Labs
	case domain.ItemProject:
		return c.cfg.Databases.Projects
	default:
		return c.cfg.Databases.Assignments
	}
}

// AddItem creates a work item record from a completed draft. Status
// defaults to "Not started" when the draft leaves it empty.
func (c *Client) AddItem(ctx context.Context, d domain.ItemDraft) error {
	status := d.Status
	if status == "" {
		status = domain.StatusNotStarted
	}
	props := map[string]any{
		propName:       titleProp(d.Name),
		propCourseCode: richTextProp(d.CourseCode),
		propDueDate:    dateProp(d.DueDate),
		propNotes:      richTextProp(d.Notes),
		propStatus:     statusProp(status),
	}
	if d.Type == domain.ItemLab {
		props[propDescription] = richTextProp(d.Description)
	}

	req := pageCreateRequest{
		Parent:     parent{DatabaseID: c.databaseID(d.Type)},
		Properties: props,
	}
	if err := c.do(ctx, "add_"+string(d.Type), http.MethodPost, "/v1/pages", req, nil); err != nil {
		return fmt.Errorf("adding %s: %w", d.Type, err)
	}
	return nil
}

// AddCourse creates a course record from a completed draft.
func (c *Client) AddCourse(ctx context.Context, d domain.CourseDraft) error {
	req := pageCreateRequest{
		Parent: parent{DatabaseID: c.cfg.Databases.Courses},
		Properties: map[string]any{
			propName:       titleProp(d.Name),
			propCourseCode: richTextProp(d.Code),
			propSemester:   numberProp(d.Semester),
			propProfessor:  richTextProp(d.Professor),
			propECTS:       numberProp(d.ECTS),
		},
	}
	if err := c.do(ctx, "add_course", http.MethodPost, "/v1/pages", req, nil); err != nil {
		return fmt.Errorf("adding course: %w", err)
	}
	return nil
}

// ListItems returns every record of one work item collection, ascending
// by due date. Placeholder records are included; callers filter them
// before rendering pick-lists.
func (c *Client) ListItems(ctx context.Context, t domain.ItemType) ([]domain.WorkItem, error) {
	req := queryRequest{
		Sorts: []sortObject{{Property: propDueDate, Direction: "ascending"}},
	}
	pages, err := c.query(ctx, "list_"+t.Plural(), c.databaseID(t), req)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", t.Plural(), err)
	}
	items := make([]domain.WorkItem, 0, len(pages))
	for _, p := range pages {
		items = append(items, workItemFromPage(p, t))
	}
	return items, nil
}

// ListCourses returns every course record, ascending by semester.
func (c *Client) ListCourses(ctx context.Context) ([]domain.Course, error) {
	req := queryRequest{
		Sorts: []sortObject{{Property: propSemester, Direction: "ascending"}},
	}
	pages, err := c.query(ctx, "list_courses", c.cfg.Databases.Courses, req)
	if err != nil {
		return nil, fmt.Errorf("listing courses: %w", err)
	}
	courses := make([]domain.Course, 0, len(pages))
	for _, p := range pages {
		courses = append(courses, courseFromPage(p))
	}
	return courses, nil
}

// GetItem retrieves a single work item by its full record id. Archived
// records remain retrievable here even though list queries omit them.
func (c *Client) GetItem(ctx context.Context, t domain.ItemType, id string) (*domain.WorkItem, error) {
	var p page
	if err := c.do(ctx, "get_item", http.MethodGet, "/v1/pages/"+id, nil, &p); err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	item := workItemFromPage(p, t)
	return &item, nil
}

// UpdateStatus sets the status property of a work item.
func (c *Client) UpdateStatus(ctx context.Context, id string, s domain.Status) error {
	req := pageUpdateRequest{Properties: map[string]any{propStatus: statusProp(s)}}
	if err := c.do(ctx, "update_status", http.MethodPatch, "/v1/pages/"+id, req, nil); err != nil {
		return fmt.Errorf("updating status: %w", err)
	}
	return nil
}

// UpdateDueDate sets the due date property of a work item.
func (c *Client) UpdateDueDate(ctx context.Context, id, date string) error {
	req := pageUpdateRequest{Properties: map[string]any{propDueDate: dateProp(date)}}
	if err := c.do(ctx, "update_due_date", http.MethodPatch, "/v1/pages/"+id, req, nil); err != nil {
		return fmt.Errorf("updating due date: %w", err)
	}
	return nil
}

// UpdateCourse sets the course code property of a work item.
func (c *Client) UpdateCourse(ctx context.Context, id, code string) error {
	req := pageUpdateRequest{Properties: map[string]any{propCourseCode: richTextProp(code)}}
	if err := c.do(ctx, "update_course", http.MethodPatch, "/v1/pages/"+id, req, nil); err != nil {
		return fmt.Errorf("updating course: %w", err)
	}
	return nil
}

// UpdateNotes sets the notes property of a work item.
func (c *Client) UpdateNotes(ctx context.Context, id, notes string) error {
	req := pageUpdateRequest{Properties: map[string]any{propNotes: richTextProp(notes)}}
	if err := c.do(ctx, "update_notes", http.MethodPatch, "/v1/pages/"+id, req, nil); err != nil {
		return fmt.Errorf("updating notes: %w", err)
	}
	return nil
}

// Archive soft-deletes a record. The record disappears from list
// queries but is never physically removed.
func (c *Client) Archive(ctx context.Context, id string) error {
	archived := true
	req := pageUpdateRequest{Archived: &archived}
	if err := c.do(ctx, "archive", http.MethodPatch, "/v1/pages/"+id, req, nil); err != nil {
		return fmt.Errorf("archiving item: %w", err)
	}
	return nil
}

// Upcoming returns work items due in [today, today+days] inclusive,
// ascending by due date, across the three work collections.
func (c *Client) Upcoming(ctx context.Context, days int) (*domain.UpcomingWork, error) {
	today := c.now().Format(dateLayout)
	future := c.now().AddDate(0, 0, days).Format(dateLayout)

	filter := map[string]any{
		"and": []any{
			map[string]any{"property": propDueDate, "date": map[string]any{"on_or_after": today}},
			map[string]any{"property": propDueDate, "date": map[string]any{"on_or_before": future}},
		},
	}

	work := &domain.UpcomingWork{}
	targets := []struct {
		t    domain.ItemType
		dest *[]domain.WorkItem
	}{
		{domain.ItemAssignment, &work.Assignments},
		{domain.ItemLab, &work.Labs},
		{domain.ItemProject, &work.Projects},
	}

	for _, tgt := range targets {
		req := queryRequest{
			Filter: filter,
			Sorts:  []sortObject{{Property: propDueDate, Direction: "ascending"}},
		}
		pages, err := c.query(ctx, "upcoming_"+tgt.t.Plural(), c.databaseID(tgt.t), req)
		if err != nil {
			return nil, fmt.Errorf("querying upcoming %s: %w", tgt.t.Plural(), err)
		}
		for _, p := range pages {
			*tgt.dest = append(*tgt.dest, workItemFromPage(p, tgt.t))
		}
	}
	return work, nil
}

// Ping probes connectivity by retrieving the assignments database.
func (c *Client) Ping(ctx context.Context) error {
	path := "/v1/databases/" + c.cfg.Databases.Assignments
	if err := c.do(ctx, "ping", http.MethodGet, path, nil, nil); err != nil {
		return fmt.Errorf("connecting to notion: %w", err)
	}
	return nil
}

// Wire types for requests the adapter issues.

type parent struct {
	DatabaseID string `json:"database_id"`
}

type pageCreateRequest struct {
	Parent     parent         `json:"parent"`
	Properties map[string]any `json:"properties"`
}

type pageUpdateRequest struct {
	Properties map[string]any `json:"properties,omitempty"`
	Archived   *bool          `json:"archived,omitempty"`
}

type queryRequest struct {
	Filter any          `json:"filter,omitempty"`
	Sorts  []sortObject `json:"sorts,omitempty"`
}

type sortObject struct {
	Property  string `json:"property"`
	Direction string `json:"direction"`
}

type queryResponse struct {
	Results []page `json:"results"`
}

type apiError struct {
	Message string `json:"message"`
}

func (c *Client) query(ctx context.Context, op, databaseID string, req queryRequest) ([]page, error) {
	var resp queryResponse
	path := "/v1/databases/" + databaseID + "/query"
	if err := c.do(ctx, op, http.MethodPost, path, req, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// do performs one remote call with the configured timeout, reporting
// the outcome to the observer.
func (c *Client) do(ctx context.Context, op, method, path string, body, out any) error {
	start := time.Now()
	requestID := uuid.NewString()

	err := c.doRequest(ctx, method, path, body, out)

	c.observer.OnCallComplete(CallEvent{
		RequestID: requestID,
		Op:        op,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
		ErrorCode: errorCode(err),
	})
	return err
}

func (c *Client) doRequest(ctx context.Context, method, path string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	httpReq.Header.Set("Notion-Version", apiVersion)
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return ErrTimeout
		}
		if isConnectionError(err) {
			return ErrUnavailable
		}
		return err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if httpResp.StatusCode != http.StatusOK {
		var apiErr apiError
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("notion returned status %d: %s", httpResp.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("notion returned status %d", httpResp.StatusCode)
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
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
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	default:
		return "API_ERROR"
	}
}
