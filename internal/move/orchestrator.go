package move

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/tickctl/tickctl/internal/instrumentation"
	"github.com/tickctl/tickctl/internal/logging"
	"github.com/tickctl/tickctl/internal/mutate"
	"github.com/tickctl/tickctl/internal/resolve"
	"github.com/tickctl/tickctl/internal/ticktick"
)

// Move protocol failures.
var (
	// ErrCreateFailed means the create step did not produce a usable
	// replacement. Nothing was deleted; the original is intact.
	ErrCreateFailed = errors.New("move create failed")

	// ErrDeleteFailed means the delete step exhausted its retries. The
	// replacement exists in the target AND the original remains in the
	// source: a detectable but uncorrected duplicate.
	ErrDeleteFailed = errors.New("move delete failed")

	// ErrVerificationFailed means the replacement was never observed in
	// the target project within the polling window. Its true location is
	// uncertain until a fresh resolution.
	ErrVerificationFailed = errors.New("move verification failed")
)

// Protocol defaults, matching the consistency windows the service has been
// observed to need.
const (
	DefaultPollInterval   = 500 * time.Millisecond
	DefaultPollAttempts   = 10
	DefaultDeleteAttempts = 8
	DefaultDeleteInitial  = 500 * time.Millisecond
	DefaultDeleteMax      = 4 * time.Second
	DefaultDeleteMult     = 1.7
)

// Writer is the slice of the wire client the orchestrator mutates through.
type Writer interface {
	CreateTask(ctx context.Context, create ticktick.TaskCreate) (*ticktick.Task, error)
	DeleteTask(ctx context.Context, projectID, taskID string) error
}

// Outcome tags how a move ended.
type Outcome int

const (
	// OutcomeCompleted: replacement created, original deleted, replacement
	// verified in the target.
	OutcomeCompleted Outcome = iota

	// OutcomeDuplicateRemains: the replacement exists but the original
	// could not be deleted.
	OutcomeDuplicateRemains

	// OutcomeLocationUncertain: the delete went through but the
	// replacement was never observed in the target.
	OutcomeLocationUncertain
)

// String implements fmt.Stringer for log and metric labels.
func (o Outcome) String() string {
	switch o {
	case OutcomeCompleted:
		return "completed"
	case OutcomeDuplicateRemains:
		return "duplicate_remains"
	case OutcomeLocationUncertain:
		return "location_uncertain"
	}
	return "unknown"
}

// Result reports how a move ended. NewTaskID is the replacement's id,
// which supersedes the original id even on partial failure (the
// replacement exists in every non-create-failure outcome). LastStatus is
// the HTTP status of the last failed call, for manual reconciliation.
type Result struct {
	Outcome    Outcome
	NewTaskID  string
	LastStatus int
}

// Orchestrator drives the move saga. The retry knobs are exported so tests
// can shrink the windows; production callers keep the defaults.
type Orchestrator struct {
	writer  Writer
	dir     *resolve.Directory
	log     *slog.Logger
	metrics *instrumentation.Metrics

	PollInterval   time.Duration
	PollAttempts   uint
	DeleteAttempts uint
	DeleteInitial  time.Duration
	DeleteMax      time.Duration
	DeleteMult     float64
}

// NewOrchestrator creates an orchestrator with the default protocol windows.
func NewOrchestrator(writer Writer, dir *resolve.Directory, logger *slog.Logger, metrics *instrumentation.Metrics) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		writer:         writer,
		dir:            dir,
		log:            logger,
		metrics:        metrics,
		PollInterval:   DefaultPollInterval,
		PollAttempts:   DefaultPollAttempts,
		DeleteAttempts: DefaultDeleteAttempts,
		DeleteInitial:  DefaultDeleteInitial,
		DeleteMax:      DefaultDeleteMax,
		DeleteMult:     DefaultDeleteMult,
	}
}

// Execute runs a move plan to completion or final retry exhaustion. There
// is no mid-sequence abort: once the create is issued the saga runs until
// it has an outcome to report.
func (o *Orchestrator) Execute(ctx context.Context, plan mutate.Plan) (Result, error) {
	if plan.Kind != mutate.KindMove {
		return Result{}, fmt.Errorf("move: plan kind %q is not executable here", plan.Kind)
	}

	log := o.log.With(
		logging.Operation("move"),
		logging.Task(plan.TaskID),
		slog.String("from", plan.FromProjectID),
		slog.String("to", plan.ToProjectID),
	)

	// Step 1: create the replacement. A failed create is a correctness
	// problem, not a consistency one, so there is no retry.
	created, err := o.writer.CreateTask(ctx, plan.Create)
	if err != nil {
		o.metrics.RecordMoveOutcome(ctx, "create_failed")
		return Result{LastStatus: ticktick.StatusOf(err)}, fmt.Errorf("%w: %v", ErrCreateFailed, err)
	}
	if created == nil || created.ID == "" {
		o.metrics.RecordMoveOutcome(ctx, "create_failed")
		return Result{}, fmt.Errorf("%w: service assigned no id", ErrCreateFailed)
	}
	if !ticktick.IsInbox(plan.ToProjectID) && created.ProjectID != "" && created.ProjectID != plan.ToProjectID {
		o.metrics.RecordMoveOutcome(ctx, "create_failed")
		return Result{}, fmt.Errorf("%w: replacement landed in project %s, not target %s",
			ErrCreateFailed, created.ProjectID, plan.ToProjectID)
	}
	log.Info("replacement created", logging.Task(created.ID))

	// Step 2: one tolerated read-back of the target. Create-then-read is
	// typically consistent; absence here is logged, not retried.
	if tasks, err := o.dir.Tasks(ctx, plan.ToProjectID); err != nil {
		log.Warn("target read-back failed", logging.Err(err))
	} else if !containsTask(tasks, created.ID) {
		log.Warn("replacement not yet visible in target")
	}

	// Step 3: wait for the source listing to show the original before
	// deleting it, a defensive wait against read-after-write skew.
	// Exhaustion is not an error; the loop simply proceeds.
	o.awaitSourceListing(ctx, plan, log)

	// Step 4: delete the original.
	if err := o.deleteOriginal(ctx, plan, log); err != nil {
		o.metrics.RecordMoveOutcome(ctx, OutcomeDuplicateRemains.String())
		return Result{Outcome: OutcomeDuplicateRemains, NewTaskID: created.ID, LastStatus: ticktick.StatusOf(err)},
			fmt.Errorf("%w: replacement %s exists in %s but original %s remains in %s: %v",
				ErrDeleteFailed, created.ID, plan.ToProjectID, plan.TaskID, plan.FromProjectID, err)
	}
	log.Info("original deleted")

	// Step 5: confirm the replacement is observable in the target
	// specifically, not merely somewhere.
	if err := o.verifyLocation(ctx, plan, created.ID); err != nil {
		o.metrics.RecordMoveOutcome(ctx, OutcomeLocationUncertain.String())
		return Result{Outcome: OutcomeLocationUncertain, NewTaskID: created.ID, LastStatus: ticktick.StatusOf(err)},
			fmt.Errorf("%w: %v", ErrVerificationFailed, err)
	}

	o.metrics.RecordMoveOutcome(ctx, OutcomeCompleted.String())
	log.Info("move completed", logging.Task(created.ID), logging.Status(logging.StatusSuccess))
	return Result{Outcome: OutcomeCompleted, NewTaskID: created.ID}, nil
}

var errNotYetVisible = errors.New("not yet visible")

func (o *Orchestrator) awaitSourceListing(ctx context.Context, plan mutate.Plan, log *slog.Logger) {
	op := func() (struct{}, error) {
		tasks, err := o.dir.Tasks(ctx, plan.FromProjectID)
		if err != nil {
			return struct{}{}, err
		}
		if !containsTask(tasks, plan.TaskID) {
			return struct{}{}, errNotYetVisible
		}
		return struct{}{}, nil
	}

	_, err := backoff.Retry(ctx, op,
		backoff.WithBackOff(backoff.NewConstantBackOff(o.PollInterval)),
		backoff.WithMaxTries(o.PollAttempts),
	)
	if err != nil {
		log.Debug("source listing never showed the original; proceeding to delete", logging.Err(err))
	}
}

func (o *Orchestrator) deleteOriginal(ctx context.Context, plan mutate.Plan, log *slog.Logger) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = o.DeleteInitial
	b.MaxInterval = o.DeleteMax
	b.Multiplier = o.DeleteMult
	b.RandomizationFactor = 0

	attempt := 0
	op := func() (struct{}, error) {
		attempt++
		err := o.writer.DeleteTask(ctx, plan.FromProjectID, plan.TaskID)
		switch {
		case err == nil:
			return struct{}{}, nil
		case errors.Is(err, ticktick.ErrNotFound):
			// Already gone means the goal state holds: idempotent delete.
			log.Debug("original already gone", logging.Attempt(attempt))
			return struct{}{}, nil
		default:
			o.metrics.RecordMoveDeleteRetry(ctx)
			log.Warn("delete attempt failed",
				logging.Attempt(attempt),
				slog.Int("http_status", ticktick.StatusOf(err)),
				logging.Err(err))
			return struct{}{}, err
		}
	}

	_, err := backoff.Retry(ctx, op,
		backoff.WithBackOff(b),
		backoff.WithMaxTries(o.DeleteAttempts),
	)
	return err
}

func (o *Orchestrator) verifyLocation(ctx context.Context, plan mutate.Plan, newTaskID string) error {
	op := func() (struct{}, error) {
		projectID, found, err := o.locate(ctx, newTaskID)
		if err != nil {
			return struct{}{}, err
		}
		if !found {
			return struct{}{}, fmt.Errorf("replacement %s not observable in any project", newTaskID)
		}
		if !ticktick.SameProject(projectID, plan.ToProjectID) {
			return struct{}{}, fmt.Errorf("replacement %s observed in project %s, not target %s",
				newTaskID, projectID, plan.ToProjectID)
		}
		return struct{}{}, nil
	}

	_, err := backoff.Retry(ctx, op,
		backoff.WithBackOff(backoff.NewConstantBackOff(o.PollInterval)),
		backoff.WithMaxTries(o.PollAttempts),
	)
	return err
}

// locate scans all projects, inbox first, for the task id and reports the
// owning project.
func (o *Orchestrator) locate(ctx context.Context, taskID string) (string, bool, error) {
	tasks, err := o.dir.Tasks(ctx, ticktick.InboxProjectID)
	if err != nil {
		return "", false, err
	}
	for _, t := range tasks {
		if t.ID == taskID {
			if t.ProjectID != "" {
				return t.ProjectID, true, nil
			}
			return ticktick.InboxProjectID, true, nil
		}
	}

	projects, err := o.dir.Projects(ctx)
	if err != nil {
		return "", false, err
	}
	for _, p := range projects {
		tasks, err := o.dir.Tasks(ctx, p.ID)
		if err != nil {
			return "", false, err
		}
		if containsTask(tasks, taskID) {
			return p.ID, true, nil
		}
	}
	return "", false, nil
}

func containsTask(tasks []ticktick.Task, taskID string) bool {
	for _, t := range tasks {
		if t.ID == taskID {
			return true
		}
	}
	return false
}
