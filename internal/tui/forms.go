package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/faltula/faltula/internal/timetable"
)

// NewSubjectForm creates the form used to add a subject.
func NewSubjectForm(fm *SubjectFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("subject name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Weekly hours").
				Value(&fm.Hours).
				Validate(func(s string) error {
					i, err := strconv.Atoi(s)
					if err != nil {
						return err
					}
					if i <= 0 {
						return fmt.Errorf("weekly hours must be a positive number")
					}
					return nil
				}),
			huh.NewInput().
				Title("Absence limit").
				Value(&fm.MaxAbsences).
				Validate(func(s string) error {
					i, err := strconv.Atoi(s)
					if err != nil {
						return err
					}
					if i <= 0 {
						return fmt.Errorf("absence limit must be a positive number")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewAbsenceForm creates the form used to record an absent day.
func NewAbsenceForm(fm *AbsenceFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Value(&fm.Date).
				Validate(func(s string) error {
					if _, err := timetable.ParseDate(s); err != nil {
						return fmt.Errorf("invalid date format, use YYYY-MM-DD")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}
