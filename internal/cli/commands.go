package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"assignment-workflow-backend/internal/auth"
	"assignment-workflow-backend/internal/database"
	"assignment-workflow-backend/internal/directory"
	"assignment-workflow-backend/internal/logger"
	"assignment-workflow-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newMigrateCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := env.LoadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logger.Setup(cfg.LogLevel)

			db, err := database.Initialize(cfg.DatabaseURL, &database.Options{SkipMigrate: true})
			if err != nil {
				return err
			}
			defer func() {
				if sqlDB, err := db.DB(); err == nil {
					_ = sqlDB.Close()
				}
			}()

			migrate := env.Migrate
			if migrate == nil {
				migrate = database.Migrate
			}
			if err := migrate(db); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
			return nil
		},
	}
}

func newSeedCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "seed <file>",
		Short: "Upsert trade teams, crews and projects from a YAML fixture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read seed file: %w", err)
			}
			seed, err := directory.ParseSeedData(data)
			if err != nil {
				return err
			}

			cfg, err := env.LoadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logger.Setup(cfg.LogLevel)

			a, err := env.OpenApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close(context.Background()) }()

			result, err := directory.Seed(cmd.Context(), a.DB, seed)
			if err != nil {
				return err
			}
			logrus.WithFields(logrus.Fields{
				"teams":    result.Teams,
				"crews":    result.Crews,
				"projects": result.Projects,
			}).Info("directory seeded")
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d teams, %d crews, %d projects\n", result.Teams, result.Crews, result.Projects)
			return nil
		},
	}
}

func newCapacityCmd(env *Env, opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "capacity",
		Short: "Inspect crew capacity",
	}

	var crew, start, end string
	check := &cobra.Command{
		Use:   "check",
		Short: "Check whether a crew has room in a window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			crewID, err := uuid.Parse(crew)
			if err != nil {
				return fmt.Errorf("invalid --crew: %w", err)
			}
			from, err := time.Parse(time.RFC3339, start)
			if err != nil {
				return fmt.Errorf("invalid --start: %w", err)
			}
			to, err := time.Parse(time.RFC3339, end)
			if err != nil {
				return fmt.Errorf("invalid --end: %w", err)
			}

			return withService(cmd, env, func(ctx context.Context, svc service.AssignmentServiceInterface) error {
				result, err := svc.CheckCapacity(ctx, crewID, from, to)
				if err != nil {
					return err
				}
				if opts.json {
					return writeJSON(cmd.OutOrStdout(), result)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "available=%t available_pct=%d utilization_pct=%d conflicts=%d\n",
					result.Available, result.AvailablePct, result.CurrentUtilizationPct, result.ConflictCount)
				return nil
			})
		},
	}
	check.Flags().StringVar(&crew, "crew", "", "crew id")
	check.Flags().StringVar(&start, "start", "", "window start (RFC3339)")
	check.Flags().StringVar(&end, "end", "", "window end (RFC3339)")
	_ = check.MarkFlagRequired("crew")
	_ = check.MarkFlagRequired("start")
	_ = check.MarkFlagRequired("end")

	var forecastCrew string
	var days int
	forecast := &cobra.Command{
		Use:   "forecast",
		Short: "Show daily utilization for the coming days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var crewID *uuid.UUID
			if forecastCrew != "" {
				id, err := uuid.Parse(forecastCrew)
				if err != nil {
					return fmt.Errorf("invalid --crew: %w", err)
				}
				crewID = &id
			}

			return withService(cmd, env, func(ctx context.Context, svc service.AssignmentServiceInterface) error {
				result, err := svc.GetForecast(ctx, crewID, days)
				if err != nil {
					return err
				}
				if opts.json {
					return writeJSON(cmd.OutOrStdout(), result)
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "DATE\tUTILIZATION\tAVAILABLE\tASSIGNMENTS\tOVERBOOKED")
				for _, d := range result.Forecast {
					fmt.Fprintf(tw, "%s\t%d%%\t%d%%\t%d\t%t\n", d.Date, d.UtilizationPct, d.AvailablePct, d.AssignmentCount, d.IsOverbooked)
				}
				if err := tw.Flush(); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "average %.1f%%, peak %d%%, %d overbooked days\n",
					result.Summary.AverageUtilization, result.Summary.PeakUtilization, result.Summary.OverbookedDays)
				return nil
			})
		},
	}
	forecast.Flags().StringVar(&forecastCrew, "crew", "", "crew id; all crews when empty")
	forecast.Flags().IntVar(&days, "days", 0, "horizon in days; server default when 0")

	cmd.AddCommand(check, forecast)
	return cmd
}

func newRequestCmd(env *Env, opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "request",
		Short: "Inspect assignment requests",
	}

	history := &cobra.Command{
		Use:   "history <request-id>",
		Short: "Print the audit history of a request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid request id: %w", err)
			}

			return withService(cmd, env, func(ctx context.Context, svc service.AssignmentServiceInterface) error {
				entries, err := svc.GetHistory(ctx, id)
				if err != nil {
					return err
				}
				if opts.json {
					return writeJSON(cmd.OutOrStdout(), entries)
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "SEQ\tCHANGED AT\tFIELD\tOLD\tNEW\tACTOR\tREASON")
				for _, e := range entries {
					old := "-"
					if e.OldValue != nil {
						old = *e.OldValue
					}
					fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
						e.Sequence, e.ChangedAt.UTC().Format(time.RFC3339), e.FieldName, old, e.NewValue, e.ActorID, e.Reason)
				}
				return tw.Flush()
			})
		},
	}

	cmd.AddCommand(history)
	return cmd
}

func newStatsCmd(env *Env, opts *options) *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize requests created in a window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fromT, err := optionalTime("--from", from)
			if err != nil {
				return err
			}
			toT, err := optionalTime("--to", to)
			if err != nil {
				return err
			}

			return withService(cmd, env, func(ctx context.Context, svc service.AssignmentServiceInterface) error {
				stats, err := svc.GetStatistics(ctx, fromT, toT)
				if err != nil {
					return err
				}
				if opts.json {
					return writeJSON(cmd.OutOrStdout(), stats)
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "total: %d\n", stats.Total)
				for _, status := range sortedKeys(stats.ByStatus) {
					fmt.Fprintf(out, "status %s: %d\n", status, stats.ByStatus[status])
				}
				for _, t := range sortedKeys(stats.ByType) {
					fmt.Fprintf(out, "type %s: %d\n", t, stats.ByType[t])
				}
				fmt.Fprintf(out, "average approval: %.1fh\n", stats.AverageApprovalHours)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "created on or after (RFC3339)")
	cmd.Flags().StringVar(&to, "to", "", "created on or before (RFC3339)")
	return cmd
}

func newTokenCmd(env *Env) *cobra.Command {
	var name, email string
	var ttl time.Duration
	cmd := &cobra.Command{
		Use:   "token <actor-id>",
		Short: "Issue a bearer token for an actor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := env.LoadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			authCfg := auth.NewAuthConfig(cfg)
			if ttl > 0 {
				authCfg.TokenTTL = ttl
			}
			svc, err := auth.NewAuthService(authCfg)
			if err != nil {
				return err
			}
			token, err := svc.GenerateJWT(args[0], name, email)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name claim")
	cmd.Flags().StringVar(&email, "email", "", "email claim")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime; 1h when 0")
	return cmd
}

func optionalTime(flag, v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", flag, err)
	}
	return &t, nil
}

func sortedKeys(m map[string]int64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
