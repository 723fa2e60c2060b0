package ticktick

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProjects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/open/v1/project", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]Project{
			{ID: "6863f1f2a9c5e8d3b4f0a1c2", Name: "Work", Kind: "TASK"},
			{ID: "7974a2e3b0d6f9e4c5a1b2d3", Name: "Personal"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	projects, err := client.ListProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "Work", projects[0].Name)
	assert.Equal(t, "7974a2e3b0d6f9e4c5a1b2d3", projects[1].ID)
}

func TestProjectDataAndInboxRouting(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"project": Project{ID: "p1"},
			"tasks":   []Task{{ID: "t1", ProjectID: "p1", Title: "Fix bug"}},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	tasks, err := client.ProjectData(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Fix bug", tasks[0].Title)

	_, err = client.InboxTasks(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"/open/v1/project/p1/data", "/open/v1/project/inbox/data"}, paths)
}

func TestCreateTask(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/open/v1/task", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Fix bug", body["title"])
		// Sparse body: zero priority must not be on the wire.
		_, hasPriority := body["priority"]
		assert.False(t, hasPriority)

		_ = json.NewEncoder(w).Encode(Task{ID: "a1b2c3d4e5f6a7b8c9d0e1f2", ProjectID: "p1", Title: "Fix bug"})
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	task, err := client.CreateTask(context.Background(), TaskCreate{Title: "Fix bug", ProjectID: "p1"})
	require.NoError(t, err)
	assert.Equal(t, "a1b2c3d4e5f6a7b8c9d0e1f2", task.ID)
	assert.Equal(t, "p1", task.ProjectID)
}

func TestDeleteTaskNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	err := client.DeleteTask(context.Background(), "p1", "t1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, http.StatusNotFound, StatusOf(err))
}

func TestErrorStatusSurfaced(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("backend exploded"))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	_, err := client.ListProjects(context.Background())
	require.Error(t, err)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "listProjects", apiErr.Op)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Contains(t, apiErr.Error(), "backend exploded")
}

func TestTransportFailure(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", nil)
	_, err := client.ListProjects(context.Background())
	require.Error(t, err)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 0, apiErr.Status)
	assert.Equal(t, 0, StatusOf(err))
}

func TestMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	_, err := client.ListProjects(context.Background())
	require.Error(t, err)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Contains(t, apiErr.Error(), "decode")
}

func TestIsInboxAndSameProject(t *testing.T) {
	assert.True(t, IsInbox("inbox"))
	assert.True(t, IsInbox("inbox125342"))
	assert.False(t, IsInbox("6863f1f2a9c5e8d3b4f0a1c2"))

	assert.True(t, SameProject("inbox", "inbox125342"))
	assert.True(t, SameProject("p1", "p1"))
	assert.False(t, SameProject("p1", "p2"))
	assert.False(t, SameProject("inbox", "p1"))
}
