package main

import (
	"context"
	"os"

	"log/slog"

	"github.com/spf13/cobra"

	"github.com/openclaw/clawdeploy/adapters/store/rdb"
	"github.com/openclaw/clawdeploy/internal/logging"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "clawdeploy",
		Short:   "OpenClaw deployment CLI",
		Long:    "Provision an AKS cluster and deploy the OpenClaw gateway backed by a LiteLLM model proxy.",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help by default when no subcommand is provided.
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaultDB := os.Getenv("CLAWDEPLOY_DB_URL")
	if defaultDB == "" {
		defaultDB = rdb.DefaultDBURL
	}
	cmd.PersistentFlags().String("db-url", defaultDB, "Run history database URL (env CLAWDEPLOY_DB_URL) (sqlite:/path/to.db)")
	cmd.PersistentFlags().String("log-format", "human", "Log format (human|text|json) (env CLAWDEPLOY_LOG_FORMAT)")

	cmd.PersistentPreRunE = func(c *cobra.Command, _ []string) error {
		format, _ := c.Flags().GetString("log-format")
		if env := os.Getenv("CLAWDEPLOY_LOG_FORMAT"); env != "" { // env overrides flag
			format = env
		}
		l, err := logging.New(format, slog.LevelInfo)
		if err != nil {
			return err
		}
		ctx := logging.WithLogger(c.Context(), l)
		c.SetContext(ctx)
		return nil
	}

	cmd.AddCommand(newCmdVersion())
	cmd.AddCommand(newCmdDeploy())
	cmd.AddCommand(newCmdRuns())
	return cmd
}

func main() {
	root := newRootCmd()
	root.SetContext(context.Background())
	executed, err := root.ExecuteC()
	if err != nil {
		ctx := root.Context()
		if executed != nil {
			ctx = executed.Context()
		}
		logging.FromContext(ctx).Errorf(ctx, "Failed: %s", err)
		os.Exit(1)
	}
}
