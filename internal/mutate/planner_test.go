package mutate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tickctl/tickctl/internal/ticktick"
)

func snapshot() *ticktick.Task {
	return &ticktick.Task{
		ID:        "6863f1f2a9c5e8d3b4f0a1c2",
		ProjectID: "p1",
		Title:     "Fix bug",
		Content:   "repro steps",
		Priority:  ticktick.PriorityHigh,
		DueDate:   "2025-06-15T10:00:00.000-0700",
		Tags:      []string{"urgent"},
	}
}

func TestBuildCreate(t *testing.T) {
	plan, err := Build(nil, Changes{
		Title: "New task", TitleSet: true,
		Priority: ticktick.PriorityMedium, PrioritySet: true,
	}, "p2")
	require.NoError(t, err)

	assert.Equal(t, KindCreate, plan.Kind)
	assert.Equal(t, "New task", plan.Create.Title)
	assert.Equal(t, ticktick.PriorityMedium, plan.Create.Priority)
	assert.Equal(t, "p2", plan.Create.ProjectID)
}

func TestBuildCreateIntoInbox(t *testing.T) {
	plan, err := Build(nil, Changes{Title: "New task", TitleSet: true}, ticktick.InboxProjectID)
	require.NoError(t, err)

	assert.Equal(t, KindCreate, plan.Kind)
	assert.Empty(t, plan.Create.ProjectID, "inbox target is an omitted projectId")
}

func TestBuildUpdateNeverMovesWithoutDesiredProject(t *testing.T) {
	plan, err := Build(snapshot(), Changes{Title: "Renamed", TitleSet: true}, "")
	require.NoError(t, err)

	assert.Equal(t, KindUpdate, plan.Kind)
	assert.Equal(t, "Renamed", plan.Patch.Title)
	// Untouched fields stay off the patch.
	assert.Empty(t, plan.Patch.Content)
	assert.Empty(t, plan.Patch.DueDate)
	assert.Nil(t, plan.Patch.Tags)
}

func TestBuildNoOpMoveAvoidance(t *testing.T) {
	plan, err := Build(snapshot(), Changes{Title: "Renamed", TitleSet: true}, "p1")
	require.NoError(t, err)
	assert.Equal(t, KindUpdate, plan.Kind, "desired project equal to current is not a move")
}

func TestBuildNoOpMoveAvoidanceInbox(t *testing.T) {
	current := snapshot()
	current.ProjectID = "inbox125342"

	plan, err := Build(current, Changes{Title: "Renamed", TitleSet: true}, ticktick.InboxProjectID)
	require.NoError(t, err)
	assert.Equal(t, KindUpdate, plan.Kind, "inbox sentinel and real inbox id are the same container")
}

func TestBuildMove(t *testing.T) {
	plan, err := Build(snapshot(), Changes{}, "p2")
	require.NoError(t, err)

	assert.Equal(t, KindMove, plan.Kind)
	assert.Equal(t, "p1", plan.FromProjectID)
	assert.Equal(t, "p2", plan.ToProjectID)
	assert.Equal(t, "6863f1f2a9c5e8d3b4f0a1c2", plan.TaskID)

	// The replacement body is the full prior snapshot.
	assert.Equal(t, "Fix bug", plan.Create.Title)
	assert.Equal(t, "repro steps", plan.Create.Content)
	assert.Equal(t, ticktick.PriorityHigh, plan.Create.Priority)
	assert.Equal(t, "2025-06-15T10:00:00.000-0700", plan.Create.DueDate)
	assert.Equal(t, []string{"urgent"}, plan.Create.Tags)
	assert.Equal(t, "p2", plan.Create.ProjectID)
}

func TestBuildMoveOverlaysExplicitChanges(t *testing.T) {
	plan, err := Build(snapshot(), Changes{
		Title: "Fix bug (urgent)", TitleSet: true,
		DueDate: "2025-12-15T10:00:00", DueDateSet: true,
	}, "p2")
	require.NoError(t, err)

	assert.Equal(t, KindMove, plan.Kind)
	assert.Equal(t, "Fix bug (urgent)", plan.Create.Title)
	assert.Equal(t, "2025-12-15T10:00:00.000-0800", plan.Create.DueDate)
	// Untouched fields carry over from the snapshot.
	assert.Equal(t, "repro steps", plan.Create.Content)
	assert.Equal(t, ticktick.PriorityHigh, plan.Create.Priority)
}

func TestBuildPriorityClearedFlag(t *testing.T) {
	plan, err := Build(snapshot(), Changes{Priority: 0, PrioritySet: true}, "")
	require.NoError(t, err)

	assert.Equal(t, KindUpdate, plan.Kind)
	assert.True(t, plan.PriorityCleared)
	// The wire patch cannot carry the cleared priority: zero is omitted.
	assert.Zero(t, plan.Patch.Priority)

	untouched, err := Build(snapshot(), Changes{Title: "x", TitleSet: true}, "")
	require.NoError(t, err)
	assert.False(t, untouched.PriorityCleared)
}

func TestBuildValidationBeforeAnything(t *testing.T) {
	_, err := Build(snapshot(), Changes{Priority: 2, PrioritySet: true}, "p2")
	assert.True(t, errors.Is(err, ErrInvalidPriority))

	_, err = Build(snapshot(), Changes{DueDate: "2025-02-30T10:00:00", DueDateSet: true}, "")
	assert.True(t, errors.Is(err, ErrInvalidDueDate))
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"none", 0, false},
		{"low", 1, false},
		{"Medium", 3, false},
		{"HIGH", 5, false},
		{"5", 5, false},
		{"0", 0, false},
		{"2", 0, true},
		{"urgent", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParsePriority(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestChangesEmpty(t *testing.T) {
	assert.True(t, Changes{}.Empty())
	assert.False(t, Changes{TitleSet: true}.Empty())
	assert.False(t, Changes{TagsSet: true}.Empty())
}
