package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tickctl/tickctl/internal/auth"
)

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authenticate with TickTick",
	}
	cmd.AddCommand(newAuthLoginCmd())
	cmd.AddCommand(newAuthStatusCmd())
	return cmd
}

func newAuthLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Obtain and cache an OAuth token",
		Long: `Print the TickTick authorization URL, then exchange the code pasted
back for a token. The token is cached in the user cache directory and
refreshed automatically on later runs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			url, err := auth.AuthURL()
			if err != nil {
				return err
			}
			fmt.Printf("Open the following URL in a browser and authorize access:\n\n  %s\n\n", url)
			fmt.Print("Paste the code from the redirect URL: ")

			reader := bufio.NewReader(os.Stdin)
			code, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("reading authorization code: %w", err)
			}
			code = strings.TrimSpace(code)
			if code == "" {
				return fmt.Errorf("no authorization code given")
			}

			if err := auth.SaveToken(ctx, code); err != nil {
				return err
			}
			fmt.Println("Token saved.")
			return nil
		},
	}
}

func newAuthStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether a cached token exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if auth.HasToken() {
				fmt.Println("A cached token exists. Run any command to use it.")
				return nil
			}
			fmt.Println("No cached token. Run 'tickctl auth login' first.")
			return nil
		},
	}
}
