package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tickctl/tickctl/internal/mutate"
	"github.com/tickctl/tickctl/internal/resolve"
)

// taskFieldFlags are the field-change flags shared by add and update.
type taskFieldFlags struct {
	content  string
	priority string
	due      string
	tags     []string
}

func (f *taskFieldFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.content, "content", "", "task content")
	cmd.Flags().StringVar(&f.priority, "priority", "", "priority: none, low, medium, high (or 0, 1, 3, 5)")
	cmd.Flags().StringVar(&f.due, "due", "", "due date, e.g. 2025-06-15T10:00:00 (append Z for UTC)")
	cmd.Flags().StringArrayVar(&f.tags, "tag", nil, "tag (repeatable; replaces the full tag set)")
}

// changes builds the change set, marking only the flags the user touched.
func (f *taskFieldFlags) changes(cmd *cobra.Command) (mutate.Changes, error) {
	var c mutate.Changes
	if cmd.Flags().Changed("content") {
		c.Content, c.ContentSet = f.content, true
	}
	if cmd.Flags().Changed("priority") {
		p, err := mutate.ParsePriority(f.priority)
		if err != nil {
			return mutate.Changes{}, err
		}
		c.Priority, c.PrioritySet = p, true
	}
	if cmd.Flags().Changed("due") {
		c.DueDate, c.DueDateSet = f.due, true
	}
	if cmd.Flags().Changed("tag") {
		c.Tags, c.TagsSet = f.tags, true
	}
	return c, nil
}

func newTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}
	cmd.AddCommand(newTaskAddCmd())
	cmd.AddCommand(newTaskUpdateCmd())
	cmd.AddCommand(newTaskCompleteCmd())
	cmd.AddCommand(newTaskMoveCmd())
	return cmd
}

func newTaskAddCmd() *cobra.Command {
	var project string
	var fields taskFieldFlags

	cmd := &cobra.Command{
		Use:   "add TITLE",
		Short: "Create a new task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close(ctx)

			changes, err := fields.changes(cmd)
			if err != nil {
				return err
			}
			changes.Title, changes.TitleSet = args[0], true

			projectID := ""
			if project != "" {
				projectID, err = a.resolver.ResolveProject(ctx, project)
				if err != nil {
					return err
				}
			}

			plan, err := mutate.Build(nil, changes, projectID)
			if err != nil {
				return err
			}

			task, err := a.client.CreateTask(ctx, plan.Create)
			if err != nil {
				return err
			}
			fmt.Printf("created task %s\n", task.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "project to create the task in (default: inbox)")
	fields.register(cmd)
	return cmd
}

func newTaskUpdateCmd() *cobra.Command {
	var project, to, title string
	var fields taskFieldFlags

	cmd := &cobra.Command{
		Use:   "update IDENTIFIER",
		Short: "Update a task, moving it between projects if requested",
		Long: `Update a task addressed by id or name. Only the fields whose flags are
given are touched. With --to the task is moved to another project; the
service cannot move atomically, so the task is recreated in the target
and deleted from the source, and its id changes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close(ctx)

			changes, err := fields.changes(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("title") {
				changes.Title, changes.TitleSet = title, true
			}

			return runTaskMutation(ctx, a, args[0], project, to, changes)
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "project to search in (authoritative scope)")
	cmd.Flags().StringVar(&to, "to", "", "target project to move the task to")
	cmd.Flags().StringVar(&title, "title", "", "new title")
	fields.register(cmd)
	return cmd
}

func newTaskMoveCmd() *cobra.Command {
	var project, to string

	cmd := &cobra.Command{
		Use:   "move IDENTIFIER --to PROJECT",
		Short: "Move a task to another project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close(ctx)

			return runTaskMutation(ctx, a, args[0], project, to, mutate.Changes{})
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "project to search in (authoritative scope)")
	cmd.Flags().StringVar(&to, "to", "", "target project (required)")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

// runTaskMutation resolves the task, plans the mutation, and executes
// either the in-place patch or the move protocol.
func runTaskMutation(ctx context.Context, a *app, identifier, projectHint, to string, changes mutate.Changes) error {
	loc, snapshot, err := a.resolver.ResolveTask(ctx, identifier, projectHint)
	if err != nil {
		return resolveHintError(err)
	}

	desiredProjectID := ""
	if to != "" {
		desiredProjectID, err = a.resolver.ResolveProject(ctx, to)
		if err != nil {
			return err
		}
	}

	plan, err := mutate.Build(&snapshot, changes, desiredProjectID)
	if err != nil {
		return err
	}

	switch plan.Kind {
	case mutate.KindMove:
		result, err := a.mover.Execute(ctx, plan)
		if err != nil {
			// A partial move still created the replacement; the operator
			// needs its id to reconcile by hand.
			if result.NewTaskID != "" {
				return fmt.Errorf("%w (replacement task id: %s)", err, result.NewTaskID)
			}
			return err
		}
		fmt.Printf("moved task %s to %s (new id: %s)\n", loc.TaskID, to, result.NewTaskID)
		return nil

	default:
		if changes.Empty() {
			fmt.Printf("task %s: nothing to update\n", loc.TaskID)
			return nil
		}
		task, err := a.client.UpdateTask(ctx, plan.TaskID, plan.Patch)
		if err != nil {
			return err
		}
		fmt.Printf("updated task %s\n", task.ID)
		return nil
	}
}

func newTaskCompleteCmd() *cobra.Command {
	var project string
	var tagList []string

	cmd := &cobra.Command{
		Use:   "complete IDENTIFIER",
		Short: "Mark a task as completed",
		Long: `Mark a task as completed. Tag changes given alongside completion are
applied before the completion call; once a task is completed, tag
updates become unreliable on the service. A failed tag update aborts
the completion.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close(ctx)

			loc, _, err := a.resolver.ResolveTask(ctx, args[0], project)
			if err != nil {
				return resolveHintError(err)
			}

			if cmd.Flags().Changed("tag") {
				loc, err = a.reconciler.Apply(ctx, loc.TaskID, loc, tagList)
				if err != nil {
					return err
				}
			}

			if err := a.client.CompleteTask(ctx, loc.ProjectID, loc.TaskID); err != nil {
				return err
			}
			fmt.Printf("completed task %s\n", loc.TaskID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "project to search in (authoritative scope)")
	cmd.Flags().StringArrayVar(&tagList, "tag", nil, "tag to apply before completing (repeatable)")
	return cmd
}

// resolveHintError gives misses a friendlier exit message than the raw chain.
func resolveHintError(err error) error {
	switch {
	case errors.Is(err, resolve.ErrTaskNotFoundInProject):
		return fmt.Errorf("%w (the project hint is authoritative; drop --project to search everywhere)", err)
	case errors.Is(err, resolve.ErrTaskNotFound):
		return fmt.Errorf("%w (searched the inbox and every project)", err)
	default:
		return err
	}
}
