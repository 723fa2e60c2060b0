package cmd

import (
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tickctl/tickctl/internal/resolve"
)

func newFlaggedCommand(t *testing.T) (*cobra.Command, *taskFieldFlags) {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	fields := &taskFieldFlags{}
	fields.register(cmd)
	return cmd, fields
}

func TestChangesMarksOnlyTouchedFlags(t *testing.T) {
	cmd, fields := newFlaggedCommand(t)
	require.NoError(t, cmd.Flags().Set("priority", "high"))
	require.NoError(t, cmd.Flags().Set("tag", "work"))
	require.NoError(t, cmd.Flags().Set("tag", "urgent"))

	changes, err := fields.changes(cmd)
	require.NoError(t, err)

	assert.True(t, changes.PrioritySet)
	assert.Equal(t, 5, changes.Priority)
	assert.True(t, changes.TagsSet)
	assert.Equal(t, []string{"work", "urgent"}, changes.Tags)

	assert.False(t, changes.ContentSet)
	assert.False(t, changes.DueDateSet)
	assert.False(t, changes.TitleSet)
}

func TestChangesPriorityNoneIsStillMarked(t *testing.T) {
	cmd, fields := newFlaggedCommand(t)
	require.NoError(t, cmd.Flags().Set("priority", "none"))

	changes, err := fields.changes(cmd)
	require.NoError(t, err)

	assert.True(t, changes.PrioritySet)
	assert.Equal(t, 0, changes.Priority)
}

func TestChangesRejectsUnknownPriority(t *testing.T) {
	cmd, fields := newFlaggedCommand(t)
	require.NoError(t, cmd.Flags().Set("priority", "critical"))

	_, err := fields.changes(cmd)
	assert.Error(t, err)
}

func TestChangesUntouchedFlagsYieldEmptySet(t *testing.T) {
	cmd, fields := newFlaggedCommand(t)

	changes, err := fields.changes(cmd)
	require.NoError(t, err)
	assert.True(t, changes.Empty())
}

func TestResolveHintErrorKeepsSentinels(t *testing.T) {
	err := resolveHintError(resolve.ErrTaskNotFoundInProject)
	assert.ErrorIs(t, err, resolve.ErrTaskNotFoundInProject)
	assert.Contains(t, err.Error(), "authoritative")

	err = resolveHintError(resolve.ErrTaskNotFound)
	assert.ErrorIs(t, err, resolve.ErrTaskNotFound)

	plain := errors.New("transport down")
	assert.Equal(t, plain, resolveHintError(plain))
}
