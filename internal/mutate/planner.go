package mutate

import (
	"github.com/tickctl/tickctl/internal/datetime"
	"github.com/tickctl/tickctl/internal/ticktick"
)

// Kind classifies a plan.
type Kind int

const (
	// KindCreate is a fresh creation with no prior snapshot.
	KindCreate Kind = iota

	// KindUpdate is a single sparse patch against the existing task.
	KindUpdate

	// KindMove is a cross-project move, executed by the move package as
	// create-in-target plus delete-in-source.
	KindMove
)

// String implements fmt.Stringer for log output.
func (k Kind) String() string {
	switch k {
	case KindCreate:
		return "create"
	case KindUpdate:
		return "update"
	case KindMove:
		return "move"
	}
	return "unknown"
}

// Plan is the executable form of a requested mutation.
type Plan struct {
	Kind Kind

	// TaskID is the existing task (update and move plans).
	TaskID string

	// FromProjectID and ToProjectID bound a move.
	FromProjectID string
	ToProjectID   string

	// Patch is the sparse body of an update plan.
	Patch ticktick.TaskUpdate

	// Create is the full body of a create or move plan. For moves it is
	// the caller's explicit changes overlaid on the prior snapshot,
	// because the service requires a complete entity body to create the
	// replacement.
	Create ticktick.TaskCreate

	// PriorityCleared records that the caller explicitly set priority to
	// none. The legacy wire format omits zero priorities, so the patch
	// cannot express this; the flag preserves the intent for callers and
	// for a backend that may one day support clearing.
	PriorityCleared bool
}

// Build classifies the requested changes into a plan.
//
// current is nil for fresh creates. desiredProjectID, when non-empty and
// different from the snapshot's owning project, is the sole trigger for a
// move; a desired project equal to the current one is a no-op move and
// degrades to an in-place update.
func Build(current *ticktick.Task, changes Changes, desiredProjectID string) (Plan, error) {
	if err := changes.Validate(); err != nil {
		return Plan{}, err
	}

	var due string
	if changes.DueDateSet {
		// Validate already proved this encodes.
		due, _ = datetime.Encode(changes.DueDate)
	}

	if current == nil {
		return Plan{
			Kind:            KindCreate,
			ToProjectID:     desiredProjectID,
			Create:          createBody(nil, changes, due, desiredProjectID),
			PriorityCleared: changes.PrioritySet && changes.Priority == 0,
		}, nil
	}

	if desiredProjectID != "" && !ticktick.SameProject(desiredProjectID, current.ProjectID) {
		return Plan{
			Kind:            KindMove,
			TaskID:          current.ID,
			FromProjectID:   current.ProjectID,
			ToProjectID:     desiredProjectID,
			Create:          createBody(current, changes, due, desiredProjectID),
			PriorityCleared: changes.PrioritySet && changes.Priority == 0,
		}, nil
	}

	patch := ticktick.TaskUpdate{ID: current.ID, ProjectID: current.ProjectID}
	if changes.TitleSet {
		patch.Title = changes.Title
	}
	if changes.ContentSet {
		patch.Content = changes.Content
	}
	if changes.PrioritySet {
		// A zero priority is dropped by the sparse encoding; see
		// PriorityCleared.
		patch.Priority = changes.Priority
	}
	if changes.DueDateSet {
		patch.DueDate = due
	}
	if changes.TagsSet {
		patch.Tags = changes.Tags
	}

	return Plan{
		Kind:            KindUpdate,
		TaskID:          current.ID,
		FromProjectID:   current.ProjectID,
		Patch:           patch,
		PriorityCleared: changes.PrioritySet && changes.Priority == 0,
	}, nil
}

// createBody builds the full entity body for create and move plans:
// explicit changes overlaid on the snapshot (zero snapshot for fresh
// creates). A target of the inbox sentinel is expressed as an empty
// projectId, which the service maps to the default project.
func createBody(current *ticktick.Task, changes Changes, due, desiredProjectID string) ticktick.TaskCreate {
	body := ticktick.TaskCreate{}
	if current != nil {
		body.Title = current.Title
		body.Content = current.Content
		body.Priority = current.Priority
		body.DueDate = current.DueDate
		body.Tags = current.Tags
	}

	if changes.TitleSet {
		body.Title = changes.Title
	}
	if changes.ContentSet {
		body.Content = changes.Content
	}
	if changes.PrioritySet {
		body.Priority = changes.Priority
	}
	if changes.DueDateSet {
		body.DueDate = due
	}
	if changes.TagsSet {
		body.Tags = changes.Tags
	}

	if desiredProjectID != "" && !ticktick.IsInbox(desiredProjectID) {
		body.ProjectID = desiredProjectID
	}
	return body
}
