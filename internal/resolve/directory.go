package resolve

import (
	"context"
	"log/slog"

	"github.com/tickctl/tickctl/internal/ticktick"
)

// API is the slice of the wire client the directory needs.
type API interface {
	ListProjects(ctx context.Context) ([]ticktick.Project, error)
	ProjectData(ctx context.Context, projectID string) ([]ticktick.Task, error)
	InboxTasks(ctx context.Context) ([]ticktick.Task, error)
}

// Directory provides project enumeration and membership listings.
// Every call is a fresh round trip; the directory holds no cache, and it
// never retries (consistency retries belong to the move orchestrator).
type Directory struct {
	api API
	log *slog.Logger
}

// NewDirectory creates a directory over the given API.
func NewDirectory(api API, logger *slog.Logger) *Directory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Directory{api: api, log: logger}
}

// Projects lists all projects in enumeration order. The inbox is excluded;
// callers that need it synthesize the sentinel.
func (d *Directory) Projects(ctx context.Context) ([]ticktick.Project, error) {
	return d.api.ListProjects(ctx)
}

// Tasks lists the members of a project. The inbox sentinel routes to the
// distinct default-project listing endpoint.
func (d *Directory) Tasks(ctx context.Context, projectID string) ([]ticktick.Task, error) {
	if ticktick.IsInbox(projectID) {
		return d.api.InboxTasks(ctx)
	}
	return d.api.ProjectData(ctx, projectID)
}
