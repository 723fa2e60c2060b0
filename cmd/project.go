package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tickctl/tickctl/internal/ticktick"
)

func newProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}
	cmd.AddCommand(newProjectListCmd())
	cmd.AddCommand(newProjectAddCmd())
	cmd.AddCommand(newProjectUpdateCmd())
	return cmd
}

func newProjectListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close(ctx)

			projects, err := a.client.ListProjects(ctx)
			if err != nil {
				return err
			}
			for _, p := range projects {
				fmt.Printf("%s\t%s\n", p.ID, p.Name)
			}
			return nil
		},
	}
}

func newProjectAddCmd() *cobra.Command {
	var color, viewMode string

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Create a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close(ctx)

			project, err := a.client.CreateProject(ctx, ticktick.ProjectCreate{
				Name:     args[0],
				Color:    color,
				ViewMode: viewMode,
			})
			if err != nil {
				return err
			}
			fmt.Printf("created project %s (%s)\n", project.Name, project.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&color, "color", "", "project color, e.g. #F18181")
	cmd.Flags().StringVar(&viewMode, "view", "", "view mode: list, kanban, timeline")
	return cmd
}

func newProjectUpdateCmd() *cobra.Command {
	var name, color, viewMode string

	cmd := &cobra.Command{
		Use:   "update IDENTIFIER",
		Short: "Update a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close(ctx)

			projectID, err := a.resolver.ResolveProject(ctx, args[0])
			if err != nil {
				return err
			}
			if ticktick.IsInbox(projectID) {
				return fmt.Errorf("the inbox cannot be updated")
			}

			project, err := a.client.UpdateProject(ctx, projectID, ticktick.ProjectUpdate{
				Name:     name,
				Color:    color,
				ViewMode: viewMode,
			})
			if err != nil {
				return err
			}
			fmt.Printf("updated project %s (%s)\n", project.Name, project.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&color, "color", "", "project color, e.g. #F18181")
	cmd.Flags().StringVar(&viewMode, "view", "", "view mode: list, kanban, timeline")
	return cmd
}
