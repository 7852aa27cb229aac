package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arnavshah/scheduler-cli-go/internal/loader"
	"github.com/arnavshah/scheduler-cli-go/internal/render"
)

// validateCmd checks a shift file without building a roster
var validateCmd = &cobra.Command{
	Use:   "validate <shift-file>",
	Short: "Check a shift file and show the weekly demand",
	Long: `Loads the shift file, reports what is wrong with it, and on success
prints the weekly demand table with a "+" in every cell that needs
coverage.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	shifts, err := loader.Shifts(args[0])
	if err != nil {
		return err
	}

	cells := 0
	for _, shift := range shifts {
		cells += len(shift.Days)
	}
	fmt.Printf("%s: %d shifts, %d cells to cover\n", args[0], len(shifts), cells)
	fmt.Println(render.DemandTable(shifts))
	return nil
}
