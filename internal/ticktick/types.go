package ticktick

import "strings"

// InboxProjectID is the sentinel id of the implicit default project.
// The service never returns it from the project enumeration call; listing
// the inbox goes through a distinct endpoint, and tasks that live in the
// inbox report the service's real inbox id (an "inbox"-prefixed string).
const InboxProjectID = "inbox"

// Task priorities form a fixed ordinal set.
const (
	PriorityNone   = 0
	PriorityLow    = 1
	PriorityMedium = 3
	PriorityHigh   = 5
)

// Task statuses on the wire.
const (
	StatusPending   = 0
	StatusCompleted = 2
)

// Task is a task record as the service returns it.
// The id is opaque and stable once assigned, but NOT stable across a move:
// moving a task between projects is delete-and-recreate underneath, so the
// replacement carries a fresh id.
type Task struct {
	ID        string   `json:"id"`
	ProjectID string   `json:"projectId"`
	Title     string   `json:"title"`
	Content   string   `json:"content,omitempty"`
	Priority  int      `json:"priority"`
	Status    int      `json:"status"`
	DueDate   string   `json:"dueDate,omitempty"`
	StartDate string   `json:"startDate,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	TimeZone  string   `json:"timeZone,omitempty"`
	IsAllDay  bool     `json:"isAllDay,omitempty"`
	SortOrder int64    `json:"sortOrder,omitempty"`
}

// Project is a named grouping of tasks (a list).
// Names are not guaranteed unique by the service.
type Project struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color,omitempty"`
	ViewMode  string `json:"viewMode,omitempty"`
	Kind      string `json:"kind,omitempty"`
	Closed    bool   `json:"closed,omitempty"`
	SortOrder int64  `json:"sortOrder,omitempty"`
}

// TaskCreate is the full entity body required by the create endpoint.
// ProjectID empty means the service assigns the task to the inbox.
type TaskCreate struct {
	Title     string   `json:"title"`
	Content   string   `json:"content,omitempty"`
	ProjectID string   `json:"projectId,omitempty"`
	Priority  int      `json:"priority,omitempty"`
	DueDate   string   `json:"dueDate,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	TimeZone  string   `json:"timeZone,omitempty"`
	IsAllDay  bool     `json:"isAllDay,omitempty"`
}

// TaskUpdate is a sparse patch body: fields the caller did not touch are
// omitted from the wire payload, never nulled out. Priority shares a zero
// value with "unset", so a cleared priority is indistinguishable from an
// untouched one at this level; the planner tracks the difference in memory.
type TaskUpdate struct {
	ID        string   `json:"id"`
	ProjectID string   `json:"projectId,omitempty"`
	Title     string   `json:"title,omitempty"`
	Content   string   `json:"content,omitempty"`
	Priority  int      `json:"priority,omitempty"`
	DueDate   string   `json:"dueDate,omitempty"`
	Tags      []string `json:"tags,omitempty"`
}

// ProjectCreate is the body for creating a project.
type ProjectCreate struct {
	Name     string `json:"name"`
	Color    string `json:"color,omitempty"`
	ViewMode string `json:"viewMode,omitempty"`
	Kind     string `json:"kind,omitempty"`
}

// ProjectUpdate is the sparse body for updating a project.
type ProjectUpdate struct {
	Name     string `json:"name,omitempty"`
	Color    string `json:"color,omitempty"`
	ViewMode string `json:"viewMode,omitempty"`
	Kind     string `json:"kind,omitempty"`
}

// projectData is the response envelope of the project data endpoints.
type projectData struct {
	Project Project `json:"project"`
	Tasks   []Task  `json:"tasks"`
}

// IsInbox reports whether a project id refers to the implicit default
// project. The sentinel itself and the service's real inbox id (which the
// enumeration call never returns, and which is only learned from task
// snapshots) both qualify.
func IsInbox(projectID string) bool {
	return strings.HasPrefix(projectID, InboxProjectID)
}

// SameProject reports whether two project ids refer to the same container,
// accounting for the inbox being addressable both by sentinel and by its
// real id.
func SameProject(a, b string) bool {
	if a == b {
		return true
	}
	return IsInbox(a) && IsInbox(b)
}
