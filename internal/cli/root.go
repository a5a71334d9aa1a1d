// Package cli implements assignctl, the operator command line.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"assignment-workflow-backend/internal/app"
	"assignment-workflow-backend/internal/config"
	"assignment-workflow-backend/internal/logger"
	"assignment-workflow-backend/internal/service"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// Env is what commands run against. Tests swap the constructors.
type Env struct {
	LoadConfig  func() (*config.Config, error)
	OpenApp     func(ctx context.Context, cfg *config.Config) (*app.App, error)
	ServiceFrom func(a *app.App) service.AssignmentServiceInterface
	Migrate     func(db *gorm.DB) error
}

// DefaultEnv connects to the configured database and backends
func DefaultEnv() *Env {
	return &Env{
		LoadConfig: func() (*config.Config, error) {
			_ = godotenv.Load()
			return config.Load()
		},
		OpenApp: func(ctx context.Context, cfg *config.Config) (*app.App, error) {
			return app.Open(ctx, cfg, nil)
		},
		ServiceFrom: func(a *app.App) service.AssignmentServiceInterface {
			return a.Service
		},
	}
}

// Execute runs assignctl with the process arguments
func Execute(version string) error {
	return NewRootCmd(version, DefaultEnv()).Execute()
}

type options struct {
	json bool
}

// NewRootCmd builds the command tree bound to env
func NewRootCmd(version string, env *Env) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "assignctl",
		Short:         "Operate the assignment workflow service",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}
	cmd.PersistentFlags().BoolVar(&opts.json, "json", false, "write machine-readable JSON")

	cmd.AddCommand(
		newMigrateCmd(env),
		newSeedCmd(env),
		newCapacityCmd(env, opts),
		newRequestCmd(env, opts),
		newStatsCmd(env, opts),
		newTokenCmd(env),
	)
	return cmd
}

// withService loads config, opens the app and hands fn the service
func withService(cmd *cobra.Command, env *Env, fn func(ctx context.Context, svc service.AssignmentServiceInterface) error) error {
	cfg, err := env.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Setup(cfg.LogLevel)

	ctx := logger.ContextWithActor(cmd.Context(), "assignctl")
	a, err := env.OpenApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close(context.Background()) }()

	return fn(ctx, env.ServiceFrom(a))
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
