package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var weightInKg float64

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Print experiences needed per level",
	RunE:  runTables,
}

func init() {
	tablesCmd.Flags().Float64Var(&weightInKg, "weight", 0, "also print the bonus of a weight in kilograms")
}

func runTables(cmd *cobra.Command, _ []string) error {
	t, err := loadTables()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	experiences := t.ExperiencesTable()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "level\texperiences\tbonus")
	for rank := 1; rank <= experiences.MaxLevelRank(); rank++ {
		required, err := experiences.ExperiencesForLevel(rank)
		if err != nil {
			return err
		}
		bonus := "-"
		if b, err := experiences.BonusFromExperiences(required); err == nil {
			bonus = fmt.Sprint(b)
		}
		fmt.Fprintf(w, "%d\t%d\t%s\n", rank, required, bonus)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if cmd.Flags().Changed("weight") {
		weight := t.WeightTable().ToWeight(weightInKg)
		fmt.Fprintf(out, "\n%.1f kg is weight bonus %d\n", weight.Kilograms, weight.Bonus)
	}
	return nil
}
