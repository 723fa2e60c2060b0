package resolve

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/tickctl/tickctl/internal/logging"
	"github.com/tickctl/tickctl/internal/ticktick"
)

// taskIDPattern is the lexical shape of an opaque task id.
var taskIDPattern = regexp.MustCompile(`^[0-9a-f]{24}$`)

// IsTaskID reports whether an identifier has the lexical shape of an
// opaque id (exactly 24 lowercase hex characters). Anything else is
// treated as a name.
func IsTaskID(identifier string) bool {
	return taskIDPattern.MatchString(identifier)
}

// Location is a resolved (project, task) pair. ProjectID is the task's
// real owning project id when the snapshot carries one, falling back to
// the inbox sentinel for inbox members whose snapshot omits it.
type Location struct {
	ProjectID string
	TaskID    string
}

// Resolver disambiguates user-supplied identifiers into concrete locations.
type Resolver struct {
	dir *Directory
	log *slog.Logger
}

// NewResolver creates a resolver over the given directory.
func NewResolver(dir *Directory, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{dir: dir, log: logger}
}

// Resolve locates the task named by identifier, which is either an opaque
// id or a free-text name matched after normalization.
//
// With a project hint, the hint is authoritative scope: only that project
// is searched and a miss is ErrTaskNotFoundInProject. Without one, the
// inbox is searched first, then every project in enumeration order, and
// the first match short-circuits the scan; an exhausted scan is
// ErrTaskNotFound. Equal normalized names are genuinely ambiguous and the
// first match simply wins.
func (r *Resolver) Resolve(ctx context.Context, identifier, projectHint string) (Location, error) {
	loc, _, err := r.ResolveTask(ctx, identifier, projectHint)
	return loc, err
}

// ResolveTask is Resolve plus the matched task's snapshot, for callers
// that need the current field values (the planner overlays changes on it).
func (r *Resolver) ResolveTask(ctx context.Context, identifier, projectHint string) (Location, ticktick.Task, error) {
	match := matcherFor(identifier)

	if projectHint != "" {
		projectID, err := r.ResolveProject(ctx, projectHint)
		if err != nil {
			return Location{}, ticktick.Task{}, err
		}
		tasks, err := r.dir.Tasks(ctx, projectID)
		if err != nil {
			return Location{}, ticktick.Task{}, err
		}
		for _, t := range tasks {
			if match(t) {
				return locationOf(projectID, t), t, nil
			}
		}
		return Location{}, ticktick.Task{}, fmt.Errorf("%q in project %q: %w", identifier, projectHint, ErrTaskNotFoundInProject)
	}

	// Unscoped: inbox first, then enumeration order.
	tasks, err := r.dir.Tasks(ctx, ticktick.InboxProjectID)
	if err != nil {
		return Location{}, ticktick.Task{}, err
	}
	for _, t := range tasks {
		if match(t) {
			return locationOf(ticktick.InboxProjectID, t), t, nil
		}
	}

	projects, err := r.dir.Projects(ctx)
	if err != nil {
		return Location{}, ticktick.Task{}, err
	}
	for _, p := range projects {
		r.log.Debug("scanning project", logging.Operation("resolve"), logging.Project(p.ID))
		tasks, err := r.dir.Tasks(ctx, p.ID)
		if err != nil {
			return Location{}, ticktick.Task{}, err
		}
		for _, t := range tasks {
			if match(t) {
				return locationOf(p.ID, t), t, nil
			}
		}
	}

	return Location{}, ticktick.Task{}, fmt.Errorf("%q: %w", identifier, ErrTaskNotFound)
}

// ResolveProject maps a project name to a project id. The literal values
// "inbox" and "Inbox" map directly to the sentinel; anything else is
// matched by normalized name against the enumeration, first match winning.
func (r *Resolver) ResolveProject(ctx context.Context, name string) (string, error) {
	if name == "inbox" || name == "Inbox" {
		return ticktick.InboxProjectID, nil
	}

	want := Normalize(name)
	projects, err := r.dir.Projects(ctx)
	if err != nil {
		return "", err
	}
	for _, p := range projects {
		if p.ID == name || Normalize(p.Name) == want {
			return p.ID, nil
		}
	}
	return "", fmt.Errorf("%q: %w", name, ErrProjectNotFound)
}

// matcherFor builds the membership predicate: id equality for identifiers
// shaped like opaque ids, normalized-name equality otherwise.
func matcherFor(identifier string) func(ticktick.Task) bool {
	if IsTaskID(identifier) {
		return func(t ticktick.Task) bool { return t.ID == identifier }
	}
	want := Normalize(identifier)
	return func(t ticktick.Task) bool { return Normalize(t.Title) == want }
}

// locationOf prefers the snapshot's own project id over the id the scan
// used to list it, so inbox members resolve to the service's real inbox id
// when the snapshot reports one.
func locationOf(scannedProjectID string, t ticktick.Task) Location {
	projectID := scannedProjectID
	if t.ProjectID != "" {
		projectID = t.ProjectID
	}
	return Location{ProjectID: projectID, TaskID: t.ID}
}
