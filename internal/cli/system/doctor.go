package system

import (
	"fmt"
	"os"

	"github.com/faltula/faltula/internal/cli"
	"github.com/faltula/faltula/internal/tracker"
)

type DoctorCmd struct{}

// Run checks the installation and, when a profile is active, verifies that
// every subject counter matches the sum of its ledger entries.
func (c *DoctorCmd) Run(ctx *cli.Context) error {
	ok := true

	path := ctx.Store.GetConfigPath()
	if _, err := os.Stat(path); err != nil {
		fmt.Printf("✗ storage missing at %s (run 'faltula init')\n", path)
		return nil
	}
	fmt.Printf("✓ storage present at %s\n", path)

	profiles, err := ctx.Profiles.List()
	if err != nil {
		fmt.Printf("✗ profiles file unreadable: %v\n", err)
		return nil
	}
	fmt.Printf("✓ %d profile(s) registered\n", len(profiles))

	active, hasActive, err := ctx.Profiles.Current()
	if err != nil {
		return err
	}
	if !hasActive {
		fmt.Println("- no active profile, skipping state checks")
		return nil
	}
	fmt.Printf("✓ active profile: %s\n", active.Name)

	t, err := tracker.New(ctx.Store, active.ID)
	if err != nil {
		fmt.Printf("✗ failed to load state: %v\n", err)
		return nil
	}

	// Ledger/counter consistency.
	sums := make(map[string]int)
	for _, abs := range t.Absences() {
		for _, entry := range abs.Subjects {
			sums[entry.SubjectID] += entry.ClassCount
		}
	}
	for _, sub := range t.Subjects() {
		if sub.CurrentAbsences != sums[sub.ID] {
			fmt.Printf("✗ counter drift: %s has %d absences, ledger says %d\n", sub.Name, sub.CurrentAbsences, sums[sub.ID])
			ok = false
		}
	}
	if ok {
		fmt.Println("✓ absence counters match the ledger")
	}

	// Dangling schedule references.
	for _, slot := range t.Schedule() {
		if _, found := t.Subject(slot.SubjectID); !found {
			fmt.Printf("✗ schedule slot %s references missing subject %s\n", slot.ID, slot.SubjectID)
			ok = false
		}
	}
	if ok {
		fmt.Println("✓ schedule references are intact")
		fmt.Println("All checks passed.")
	}
	return nil
}
