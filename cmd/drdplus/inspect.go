package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/jaroslavtyc/drd-plus-person/internal/engine"
	"github.com/jaroslavtyc/drd-plus-person/internal/entities/properties"
	"github.com/jaroslavtyc/drd-plus-person/internal/orchestrators/person"
	"github.com/jaroslavtyc/drd-plus-person/internal/pkg/idgen"
)

var (
	sheetPath string
	newName   string
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Create a person from a sheet and print their properties",
	Long: `Create a person from a YAML character sheet, check their experience covers
their level and print properties by fate, by levels and current ones.`,
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&sheetPath, "sheet", "", "path to the YAML character sheet")
	inspectCmd.Flags().StringVar(&newName, "rename", "", "give the person a new name before printing")
	_ = inspectCmd.MarkFlagRequired("sheet")
}

func runInspect(cmd *cobra.Command, _ []string) error {
	sheet, err := readSheet(sheetPath)
	if err != nil {
		return err
	}

	svc, err := newPersonService()
	if err != nil {
		return err
	}

	return inspect(cmd.Context(), cmd.OutOrStdout(), svc, sheet, newName)
}

func newPersonService() (person.Service, error) {
	t, err := loadTables()
	if err != nil {
		return nil, err
	}
	e, err := engine.New(&engine.Config{})
	if err != nil {
		return nil, err
	}
	armourer, err := engine.NewArmourer(&engine.ArmourerConfig{})
	if err != nil {
		return nil, err
	}
	fateRoller, err := properties.NewFateRoller(&properties.FateRollerConfig{Roller: dice.DefaultRoller})
	if err != nil {
		return nil, err
	}

	fate := properties.FateOfCombinationOfPropertiesAndBackground
	if cfg != nil {
		fate = cfg.Fate
	}

	return person.New(&person.Config{
		Tables:      t,
		Engine:      e,
		Armourer:    armourer,
		FateRoller:  fateRoller,
		EventBus:    events.NewBus(),
		IDGenerator: idgen.NewUUID("person"),
		DefaultFate: fate,
	})
}

func inspect(ctx context.Context, out io.Writer, svc person.Service, sheet *Sheet, rename string) error {
	created, err := svc.CreatePerson(ctx, sheet.toInput())
	if err != nil {
		return err
	}

	if rename != "" {
		if _, err := svc.RenamePerson(ctx, &person.RenamePersonInput{Person: created.Person, Name: rename}); err != nil {
			return err
		}
	}

	described, err := svc.DescribePerson(ctx, &person.DescribePersonInput{Person: created.Person})
	if err != nil {
		return err
	}

	return printPerson(out, described)
}

func printPerson(out io.Writer, d *person.DescribePersonOutput) error {
	p := d.Person
	level := p.ProfessionLevels().CurrentLevel()
	fmt.Fprintf(out, "%s (%s)\n", p.Name(), p.GetID())
	fmt.Fprintf(out, "%s %s, %s of level %d\n", p.GenderCode(), p.Race().Code, p.Profession().Code, level.LevelRank())
	fmt.Fprintf(out, "height %d cm, weight %.1f kg, age %d\n\n",
		d.PropertiesByLevels.HeightInCm, d.PropertiesByLevels.WeightInKg, d.PropertiesByLevels.Age)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "property\tfate\tlevels\tcurrent")
	for _, code := range properties.All() {
		current := "-"
		if d.CurrentProperties != nil {
			current = fmt.Sprint(d.CurrentProperties.Get(code))
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", code, p.PropertiesByFate().Get(code), d.PropertiesByLevels.Get(code), current)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nsize %d, toughness %d, endurance %d\n",
		d.PropertiesByLevels.Size, d.PropertiesByLevels.Toughness, d.PropertiesByLevels.Endurance)

	if d.CurrentProperties == nil {
		fmt.Fprintf(out, "armament unusable: %s\n", d.UnusableArmament)
		return nil
	}
	c := d.CurrentProperties
	fmt.Fprintf(out, "protection %d, carrying %.1f of %.1f kg\n", c.Protection, c.CarriedWeightInKg, c.CarryingCapacityInKg)
	fmt.Fprintf(out, "malus: wounds %d, armament %d, encumbrance %d\n", c.WoundsMalus, c.ArmamentMalus, c.EncumbranceMalus)
	return nil
}
