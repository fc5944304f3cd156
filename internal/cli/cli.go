// Package cli runs the plan deriver and schedule evaluator against local JSON
// files, without a server or storage.
package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bytedance/sonic"
	"github.com/limbo/craveblock/internal/bridge"
	"github.com/limbo/craveblock/internal/planner"
	"github.com/limbo/craveblock/internal/schedule"
	"github.com/limbo/craveblock/pkg/entity"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "craveblockctl",
		Short:         "Derive and evaluate CraveBlock blocking plans offline",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newDeriveCmd(),
		newStatusCmd(),
		newMetricsCmd(),
		newBridgeCmd(),
		newOutlookCmd(),
	)
	return root
}

func newDeriveCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Recommend a blocking plan from onboarding answers",
		RunE: func(cmd *cobra.Command, args []string) error {
			var answers entity.OnboardingAnswers
			if err := readJSON(file, &answers); err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), planner.Derive(answers))
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "onboarding answers JSON file (required)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newStatusCmd() *cobra.Command {
	var file, at, tz string
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Evaluate a plan at a moment",
		RunE: func(cmd *cobra.Command, args []string) error {
			var plan entity.BlockingPlan
			if err := readJSON(file, &plan); err != nil {
				return err
			}
			now, err := parseAt(at, tz)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), schedule.Evaluate(&plan, now))
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "blocking plan JSON file (required)")
	cmd.Flags().StringVar(&at, "at", "", "RFC3339 moment, now if empty")
	cmd.Flags().StringVar(&tz, "tz", "", "IANA time zone the moment is read in")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newMetricsCmd() *cobra.Command {
	var planFile, logsFile, at, tz string
	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Compute dashboard metrics from a plan and craving logs",
		RunE: func(cmd *cobra.Command, args []string) error {
			var plan entity.BlockingPlan
			if err := readJSON(planFile, &plan); err != nil {
				return err
			}
			var logs []entity.CravingLog
			if err := readJSON(logsFile, &logs); err != nil {
				return err
			}
			now, err := parseAt(at, tz)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), schedule.ComputeMetrics(&plan, logs, now))
		},
	}
	cmd.Flags().StringVarP(&planFile, "plan", "p", "", "blocking plan JSON file (required)")
	cmd.Flags().StringVarP(&logsFile, "logs", "l", "", "craving logs JSON file (required)")
	cmd.Flags().StringVar(&at, "at", "", "RFC3339 moment, now if empty")
	cmd.Flags().StringVar(&tz, "tz", "", "IANA time zone the moment is read in")
	_ = cmd.MarkFlagRequired("plan")
	_ = cmd.MarkFlagRequired("logs")
	return cmd
}

func newBridgeCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "bridge",
		Short: "Print the schedule configuration handed to the device blocker",
		RunE: func(cmd *cobra.Command, args []string) error {
			var plan entity.BlockingPlan
			if err := readJSON(file, &plan); err != nil {
				return err
			}
			cfg, err := bridge.BuildScheduleConfig(&plan)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), cfg)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "blocking plan JSON file (required)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newOutlookCmd() *cobra.Command {
	var spend, calories float64
	var habits planner.TakeoutHabits
	cmd := &cobra.Command{
		Use:   "outlook",
		Short: "Project savings over three months",
		RunE: func(cmd *cobra.Command, args []string) error {
			if habits.Frequency != "" {
				f := planner.Forecast(habits)
				return writeJSON(cmd.OutOrStdout(), map[string]any{
					"forecast": f,
					"outlook":  planner.ThreeMonthOutlook(f.MonthlySpend, f.MonthlyCalories),
				})
			}
			if spend < 0 || calories < 0 {
				return fmt.Errorf("spend and calories must not be negative")
			}
			return writeJSON(cmd.OutOrStdout(), planner.ThreeMonthOutlook(spend, calories))
		},
	}
	cmd.Flags().Float64Var(&spend, "spend", 0, "monthly takeout spend")
	cmd.Flags().Float64Var(&calories, "calories", 0, "monthly takeout calories")
	cmd.Flags().StringVar(&habits.Frequency, "frequency", "", `forecast from answers instead, e.g. "3-4 times a week"`)
	cmd.Flags().StringVar(&habits.SpendRange, "spend-range", "", "spend range answer used with --frequency")
	cmd.Flags().IntVar(&habits.Calories, "meal-calories", 800, "calories per meal used with --frequency")
	return cmd
}

func readJSON(path string, dst any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err = sonic.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := sonic.ConfigStd.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseAt(at, tz string) (time.Time, error) {
	now := time.Now()
	if at != "" {
		t, err := time.Parse(time.RFC3339, at)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --at: %w", err)
		}
		now = t
	}
	if tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --tz: %w", err)
		}
		now = now.In(loc)
	}
	return now, nil
}
