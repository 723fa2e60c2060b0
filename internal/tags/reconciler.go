package tags

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tickctl/tickctl/internal/logging"
	"github.com/tickctl/tickctl/internal/resolve"
	"github.com/tickctl/tickctl/internal/ticktick"
)

// ErrReconciliation means the tag update could not be applied; the
// completion action that requested it must not proceed.
var ErrReconciliation = errors.New("tag reconciliation failed")

// API is the slice of the wire client the reconciler needs.
type API interface {
	GetTask(ctx context.Context, projectID, taskID string) (*ticktick.Task, error)
	UpdateTask(ctx context.Context, taskID string, update ticktick.TaskUpdate) (*ticktick.Task, error)
}

// Reconciler applies tag updates with an independent location lookup.
type Reconciler struct {
	api      API
	resolver *resolve.Resolver
	log      *slog.Logger
}

// NewReconciler creates a reconciler.
func NewReconciler(api API, resolver *resolve.Resolver, logger *slog.Logger) *Reconciler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reconciler{api: api, resolver: resolver, log: logger}
}

// Apply sets the task's tags and returns its confirmed current location.
//
// The hint is only an optimization: a direct by-id read against the hinted
// project is tried first, and a miss falls back to the full directory
// scan, so a stale hint cannot misdirect the write.
func (r *Reconciler) Apply(ctx context.Context, taskID string, hint resolve.Location, tagList []string) (resolve.Location, error) {
	log := r.log.With(logging.Operation("reconcileTags"), logging.Task(taskID))

	task, loc, err := r.locate(ctx, taskID, hint)
	if err != nil {
		return resolve.Location{}, fmt.Errorf("%w: %v", ErrReconciliation, err)
	}

	update := ticktick.TaskUpdate{
		ID:        task.ID,
		ProjectID: task.ProjectID,
		Tags:      tagList,
	}
	if _, err := r.api.UpdateTask(ctx, task.ID, update); err != nil {
		return resolve.Location{}, fmt.Errorf("%w: %v", ErrReconciliation, err)
	}

	log.Info("tags applied", logging.Project(loc.ProjectID), logging.Status(logging.StatusSuccess))
	return loc, nil
}

func (r *Reconciler) locate(ctx context.Context, taskID string, hint resolve.Location) (*ticktick.Task, resolve.Location, error) {
	if hint.ProjectID != "" && !ticktick.IsInbox(hint.ProjectID) {
		task, err := r.api.GetTask(ctx, hint.ProjectID, taskID)
		if err == nil {
			projectID := task.ProjectID
			if projectID == "" {
				projectID = hint.ProjectID
			}
			return task, resolve.Location{ProjectID: projectID, TaskID: task.ID}, nil
		}
		r.log.Debug("direct lookup missed, falling back to directory scan",
			logging.Task(taskID), logging.Project(hint.ProjectID), logging.Err(err))
	}

	loc, task, err := r.resolver.ResolveTask(ctx, taskID, "")
	if err != nil {
		return nil, resolve.Location{}, err
	}
	return &task, loc, nil
}
