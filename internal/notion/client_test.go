package notion

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

	"github.com/DimitrisBelias/Personal-Secretary/internal/domain"
)

func testClient(baseURL string) *Client {
	return NewClient(Config{
		Token:     "secret-token",
		BaseURL:   baseURL,
		TimeoutMs: 2000,
		Databases: DatabaseIDs{
			Assignments: "db-assignments",
			Labs:        "db-labs",
			Projects:    "db-projects",
			Courses:     "db-courses",
		},
	}, NoopObserver{})
}

func titlePage(id, name, course, due string, status domain.Status) map[string]any {
	return map[string]any{
		"id": id,
		"properties": map[string]any{
			"Name": map[string]any{
				"title": []any{map[string]any{"plain_text": name}},
			},
			"Course Code": map[string]any{
				"rich_text": []any{map[string]any{"plain_text": course}},
			},
			"Due Date": map[string]any{
				"date": map[string]any{"start": due},
			},
			"status": map[string]any{
				"status": map[string]any{"name": string(status)},
			},
		},
	}
}

func TestClient_AddItem_RequestShape(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/pages", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		assert.Equal(t, apiVersion, r.Header.Get("Notion-Version"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	err := testClient(srv.URL).AddItem(context.Background(), domain.ItemDraft{
		Type:       domain.ItemAssignment,
		Name:       "Homework 3",
		CourseCode: "CS101",
		DueDate:    "2025-12-20",
		Notes:      "chapters 4-6",
	})
	require.NoError(t, err)

	parent := got["parent"].(map[string]any)
	assert.Equal(t, "db-assignments", parent["database_id"])

	props := got["properties"].(map[string]any)
	title := props["Name"].(map[string]any)["title"].([]any)
	text := title[0].(map[string]any)["text"].(map[string]any)
	assert.Equal(t, "Homework 3", text["content"])

	date := props["Due Date"].(map[string]any)["date"].(map[string]any)
	assert.Equal(t, "2025-12-20", date["start"])

	// Empty draft status is written as the default.
	status := props["status"].(map[string]any)["status"].(map[string]any)
	assert.Equal(t, "Not started", status["name"])

	// The description property only exists on the labs schema.
	assert.NotContains(t, props, "Description")
}

func TestClient_AddItem_LabDescription(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	err := testClient(srv.URL).AddItem(context.Background(), domain.ItemDraft{
		Type:        domain.ItemLab,
		Name:        "Lab 2",
		CourseCode:  "CS101",
		DueDate:     "2025-11-01",
		Description: "implement a shell",
	})
	require.NoError(t, err)

	parent := got["parent"].(map[string]any)
	assert.Equal(t, "db-labs", parent["database_id"])
	props := got["properties"].(map[string]any)
	assert.Contains(t, props, "Description")
}

func TestClient_ListItems_SentinelFallbacks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/databases/db-assignments/query", r.URL.Path)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		sorts := req["sorts"].([]any)
		first := sorts[0].(map[string]any)
		assert.Equal(t, "Due Date", first["property"])
		assert.Equal(t, "ascending", first["direction"])

		json.NewEncoder(w).Encode(map[string]any{
			"results": []any{
				titlePage("id-1", "Homework 3", "CS101", "2025-12-20", domain.StatusInProgress),
				// A record created empty: no title, no date, no status.
				map[string]any{"id": "id-2", "properties": map[string]any{}},
			},
		})
	}))
	defer srv.Close()

	items, err := testClient(srv.URL).ListItems(context.Background(), domain.ItemAssignment)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Homework 3", items[0].Name)
	assert.Equal(t, domain.StatusInProgress, items[0].Status)

	assert.Equal(t, domain.UntitledName, items[1].Name)
	assert.Equal(t, domain.NoDate, items[1].DueDate)
	assert.Equal(t, "", items[1].CourseCode)
	assert.Equal(t, domain.StatusNotStarted, items[1].Status)
	assert.True(t, items[1].Placeholder())
}

func TestClient_GetItem_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Could not find page"}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).GetItem(context.Background(), domain.ItemAssignment, "missing-id")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestClient_Archive_Body(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/v1/pages/id-1", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	require.NoError(t, testClient(srv.URL).Archive(context.Background(), "id-1"))
	assert.Equal(t, true, got["archived"])
	assert.NotContains(t, got, "properties")
}

func TestClient_Upcoming_WindowFilter(t *testing.T) {
	var filters []map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		filters = append(filters, req["filter"].(map[string]any))
		json.NewEncoder(w).Encode(map[string]any{"results": []any{}})
	}))
	defer srv.Close()

	client := testClient(srv.URL)
	client.now = func() time.Time {
		return time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC)
	}

	work, err := client.Upcoming(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 0, work.Total())

	// One query per work collection, all with the same inclusive window.
	require.Len(t, filters, 3)
	for _, f := range filters {
		and := f["and"].([]any)
		require.Len(t, and, 2)
		after := and[0].(map[string]any)["date"].(map[string]any)
		before := and[1].(map[string]any)["date"].(map[string]any)
		assert.Equal(t, "2025-12-01", after["on_or_after"])
		assert.Equal(t, "2025-12-08", before["on_or_before"])
	}
}

func TestClient_Upcoming_CollectionError(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 2 {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message":"boom"}`))
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"results": []any{}})
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Upcoming(context.Background(), 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upcoming labs")
}

func TestClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(Config{
		Token:     "t",
		BaseURL:   srv.URL,
		TimeoutMs: 50,
		Databases: DatabaseIDs{Assignments: "db-a"},
	}, NoopObserver{})

	err := client.Ping(context.Background())
	assert.True(t, errors.Is(err, ErrTimeout))
}

func TestClient_ObserverEvents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	var events []CallEvent
	client := NewClient(Config{
		Token:     "t",
		BaseURL:   srv.URL,
		TimeoutMs: 2000,
		Databases: DatabaseIDs{Assignments: "db-a"},
	}, observerFunc(func(e CallEvent) { events = append(events, e) }))

	require.NoError(t, client.UpdateStatus(context.Background(), "id-1", domain.StatusDone))
	require.Len(t, events, 1)
	assert.Equal(t, "update_status", events[0].Op)
	assert.True(t, events[0].Success)
	assert.NotEmpty(t, events[0].RequestID)
}

type observerFunc func(CallEvent)

func (f observerFunc) OnCallComplete(e CallEvent) { f(e) }
