package ticktick

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/tickctl/tickctl/internal/instrumentation"
	"github.com/tickctl/tickctl/internal/logging"
)

// DefaultBaseURL is the production endpoint of the Open API.
const DefaultBaseURL = "https://api.ticktick.com"

// Client wraps the task service's REST API. The supplied http.Client is
// expected to attach a valid bearer credential to every request (see the
// auth package); this client adds nothing but routing and decoding.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
	metrics    *instrumentation.Metrics
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for per-call debug records.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.log = logger }
}

// WithMetrics sets the metrics recorder for remote call accounting.
func WithMetrics(m *instrumentation.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// NewClient creates a new client for the service at baseURL.
func NewClient(baseURL string, httpClient *http.Client, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	c := &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		log:        slog.Default(),
		metrics:    &instrumentation.Metrics{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do performs one round trip: encode body, issue the request, classify the
// status, decode into out. Every failure mode maps onto *Error.
func (c *Client) do(ctx context.Context, op, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return &Error{Op: op, Err: fmt.Errorf("failed to marshal request: %w", err)}
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &Error{Op: op, Err: fmt.Errorf("failed to build request: %w", err)}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.RecordAPIOperation(ctx, op, 0, time.Since(start))
		return &Error{Op: op, Err: fmt.Errorf("request failed: %w", err)}
	}
	defer resp.Body.Close()

	c.metrics.RecordAPIOperation(ctx, op, resp.StatusCode, time.Since(start))
	c.log.Debug("api call",
		logging.Operation(op),
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration(logging.KeyDuration, time.Since(start)))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return &Error{Op: op, Status: resp.StatusCode, Err: ErrNotFound}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		raw, _ := io.ReadAll(resp.Body)
		return &Error{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("unexpected status: %s", bytes.TrimSpace(raw))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Op: op, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return nil
}

// ListProjects lists all projects. The inbox is never part of the result;
// it has no enumerable id.
func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	var projects []Project
	if err := c.do(ctx, "listProjects", http.MethodGet, "/open/v1/project", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// ProjectData lists the tasks of a project.
func (c *Client) ProjectData(ctx context.Context, projectID string) ([]Task, error) {
	var data projectData
	if err := c.do(ctx, "projectData", http.MethodGet, "/open/v1/project/"+projectID+"/data", nil, &data); err != nil {
		return nil, err
	}
	return data.Tasks, nil
}

// InboxTasks lists the tasks of the implicit default project through its
// distinct listing endpoint.
func (c *Client) InboxTasks(ctx context.Context) ([]Task, error) {
	var data projectData
	if err := c.do(ctx, "inboxTasks", http.MethodGet, "/open/v1/project/inbox/data", nil, &data); err != nil {
		return nil, err
	}
	return data.Tasks, nil
}

// GetTask retrieves a single task.
func (c *Client) GetTask(ctx context.Context, projectID, taskID string) (*Task, error) {
	var task Task
	if err := c.do(ctx, "getTask", http.MethodGet, "/open/v1/project/"+projectID+"/task/"+taskID, nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// CreateTask creates a new task. The service requires a full entity body;
// the response carries the assigned id and owning project.
func (c *Client) CreateTask(ctx context.Context, create TaskCreate) (*Task, error) {
	var task Task
	if err := c.do(ctx, "createTask", http.MethodPost, "/open/v1/task", create, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask applies a sparse patch to an existing task.
func (c *Client) UpdateTask(ctx context.Context, taskID string, update TaskUpdate) (*Task, error) {
	var task Task
	if err := c.do(ctx, "updateTask", http.MethodPost, "/open/v1/task/"+taskID, update, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteTask deletes a task from a project. A 404 answer surfaces as an
// error wrapping ErrNotFound; callers decide whether that counts as success.
func (c *Client) DeleteTask(ctx context.Context, projectID, taskID string) error {
	return c.do(ctx, "deleteTask", http.MethodDelete, "/open/v1/project/"+projectID+"/task/"+taskID, nil, nil)
}

// CompleteTask marks a task as completed.
func (c *Client) CompleteTask(ctx context.Context, projectID, taskID string) error {
	return c.do(ctx, "completeTask", http.MethodPost, "/open/v1/project/"+projectID+"/task/"+taskID+"/complete", nil, nil)
}

// CreateProject creates a new project.
func (c *Client) CreateProject(ctx context.Context, create ProjectCreate) (*Project, error) {
	var project Project
	if err := c.do(ctx, "createProject", http.MethodPost, "/open/v1/project", create, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// UpdateProject applies a sparse patch to an existing project.
func (c *Client) UpdateProject(ctx context.Context, projectID string, update ProjectUpdate) (*Project, error) {
	var project Project
	if err := c.do(ctx, "updateProject", http.MethodPost, "/open/v1/project/"+projectID, update, &project); err != nil {
		return nil, err
	}
	return &project, nil
}
