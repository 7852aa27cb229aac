package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arnavshah/scheduler-cli-go/internal/export"
	"github.com/arnavshah/scheduler-cli-go/internal/loader"
	"github.com/arnavshah/scheduler-cli-go/internal/prompt"
	"github.com/arnavshah/scheduler-cli-go/internal/render"
	"github.com/arnavshah/scheduler-cli-go/pkg/models"
	"github.com/arnavshah/scheduler-cli-go/pkg/scheduler"
)

// Plan flags
var (
	planHeadcount int
	planStaffFile string
	planRelaxed   bool
	planFallback  bool
	planShuffle   bool
	planSeed      int64
	planOut       string
	planPlain     bool
)

// planCmd runs the full pipeline: load shifts, collect employees, assign,
// render, optionally export
var planCmd = &cobra.Command{
	Use:   "plan <shift-file>",
	Short: "Build a weekly roster from a shift file",
	Long: `Loads the weekly shifts from a .csv or .yaml file, collects the
employees and their requested days off, and assigns everyone to shifts,
keeping the load as even as possible.

The shift file needs the columns shift, start, end and days, where days
is a string of weekday digits (1=Monday .. 7=Sunday), e.g. "12345".`,
	Args: cobra.ExactArgs(1),
	RunE: runPlan,
}

func init() {
	planCmd.Flags().IntVar(&planHeadcount, "headcount", 0, "Employees required per shift (asked interactively when omitted)")
	planCmd.Flags().StringVar(&planStaffFile, "staff", "", "Load employees from a CSV file instead of asking")
	planCmd.Flags().BoolVar(&planRelaxed, "relaxed", false, "Ignore requested days off from the start")
	planCmd.Flags().BoolVar(&planFallback, "fallback", false, "Retry in relaxed mode without asking when strict assignment fails")
	planCmd.Flags().BoolVar(&planShuffle, "shuffle", false, "Break load ties randomly instead of favoring input order")
	planCmd.Flags().Int64Var(&planSeed, "seed", 0, "Tie-break seed, implies --shuffle")
	planCmd.Flags().StringVar(&planOut, "out", "", "Write the roster to this file without asking (.csv for CSV, anything else for text)")
	planCmd.Flags().BoolVar(&planPlain, "plain", false, "Skip the demand and free-days tables")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	shifts, err := loader.Shifts(args[0])
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"file": args[0], "shifts": len(shifts)}).Debug("shift file loaded")

	if !planPlain {
		fmt.Println(render.DemandTable(shifts))
	}

	headcount, employees, err := gatherStaff()
	if err != nil {
		return err
	}

	if !planPlain {
		fmt.Println(render.FreeDaysSummary(employees))
	}

	if err := scheduler.EnsureMinimumStaff(len(employees), headcount); err != nil {
		return err
	}

	cells, err := scheduler.BuildDemand(shifts, headcount)
	if err != nil {
		return err
	}

	var s *scheduler.Scheduler
	switch {
	case cmd.Flags().Changed("seed"):
		s = scheduler.NewSeeded(employees, planSeed)
	case planShuffle:
		s = scheduler.NewSeeded(employees, time.Now().UnixNano())
	default:
		s = scheduler.New(employees)
	}

	mode := scheduler.ModeStrict
	if planRelaxed {
		mode = scheduler.ModeRelaxed
	}

	roster, err := s.Assign(cells, mode)
	if err != nil {
		var unfilled *scheduler.UnfilledError
		if !errors.As(err, &unfilled) {
			return err
		}
		fmt.Println(render.ConflictReport(unfilled))

		retry, err := confirmRelaxedRetry()
		if err != nil {
			return err
		}
		if !retry {
			return fmt.Errorf("no schedule produced: adjust preferences or provide more workers")
		}
		if roster, err = s.Assign(cells, scheduler.ModeRelaxed); err != nil {
			return err
		}
	}

	fmt.Println(render.RosterTable(shifts, roster))
	fmt.Println(render.RunSummary(s))

	return saveRoster(shifts, roster)
}

// gatherStaff resolves the headcount and the employee list, from the staff
// file when one was given, otherwise interactively
func gatherStaff() (int, []*models.Employee, error) {
	if planStaffFile != "" {
		if planHeadcount < 1 {
			return 0, nil, fmt.Errorf("--staff needs --headcount to run without prompts")
		}
		employees, err := loader.Staff(planStaffFile)
		if err != nil {
			return 0, nil, err
		}
		return planHeadcount, employees, nil
	}

	result, err := prompt.Collect(planHeadcount)
	if err != nil {
		return 0, nil, err
	}
	if result.Aborted {
		return 0, nil, prompt.ErrAborted
	}
	if len(result.Employees) == 0 {
		return 0, nil, fmt.Errorf("no employees entered")
	}
	return result.Headcount, result.Employees, nil
}

// confirmRelaxedRetry decides whether a failed strict run is retried without
// the requested days off
func confirmRelaxedRetry() (bool, error) {
	if planFallback || !stdinIsInteractive() {
		fmt.Println("Retrying without considering employee preferences.")
		return true, nil
	}
	return prompt.Confirm("Do you want to generate a schedule without considering employee preferences?")
}

// saveRoster writes the roster to --out, or walks the interactive save flow
func saveRoster(shifts []models.ShiftDefinition, roster models.Roster) error {
	if planOut != "" {
		if err := export.Write(planOut, shifts, roster); err != nil {
			return err
		}
		fmt.Printf("Schedule saved to %s\n", planOut)
		return nil
	}
	if !stdinIsInteractive() {
		return nil
	}

	save, err := prompt.Confirm("Do you want to save the schedule to a file?")
	if err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			return nil
		}
		return err
	}
	if !save {
		return nil
	}

	name, err := prompt.AskString("Enter the filename (include extension, e.g., schedule.txt):", "schedule.txt")
	if err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			return nil
		}
		return err
	}
	if err := export.Write(name, shifts, roster); err != nil {
		return err
	}
	fmt.Printf("Schedule saved to %s\n", name)
	return nil
}

// stdinIsInteractive reports whether stdin is a terminal. Piped runs cannot
// answer prompts, so strict failures fall back to relaxed mode on their own
func stdinIsInteractive() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return stat.Mode()&os.ModeCharDevice != 0
}
