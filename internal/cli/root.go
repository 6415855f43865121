package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/faltula/faltula/internal/models"
	"github.com/faltula/faltula/internal/profile"
	"github.com/faltula/faltula/internal/storage"
	"github.com/faltula/faltula/internal/timetable"
	"github.com/faltula/faltula/internal/tracker"
)

type Context struct {
	Store    storage.Provider
	Profiles *profile.Manager

	session *tracker.Tracker
}

// Session returns the tracker bound to the active profile, loading it on
// first use. Every subject/schedule/absence command goes through this.
func (c *Context) Session() (*tracker.Tracker, error) {
	if c.session != nil {
		return c.session, nil
	}

	p, ok, err := c.Profiles.Current()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("no active profile, run 'faltula profile create <name>' first")
	}

	t, err := tracker.New(c.Store, p.ID)
	if err != nil {
		return nil, err
	}
	c.session = t
	return t, nil
}

// ParseDay parses a teaching day given as a name ("monday", "mon") or as an
// index ("0" through "4", Monday first).
func ParseDay(s string) (int, error) {
	dayMap := map[string]int{
		"mon": 0, "monday": 0,
		"tue": 1, "tuesday": 1,
		"wed": 2, "wednesday": 2,
		"thu": 3, "thursday": 3,
		"fri": 4, "friday": 4,
	}

	key := strings.TrimSpace(strings.ToLower(s))
	if day, ok := dayMap[key]; ok {
		return day, nil
	}
	if num, err := strconv.Atoi(key); err == nil && timetable.ValidDay(num) {
		return num, nil
	}
	return 0, fmt.Errorf("invalid teaching day: %s (use monday..friday or 0..4)", s)
}

// ResolveSubject finds a subject by id or by exact name. Name lookups must
// be unambiguous.
func ResolveSubject(t *tracker.Tracker, ref string) (models.Subject, error) {
	if sub, ok := t.Subject(ref); ok {
		return sub, nil
	}

	var matches []models.Subject
	for _, sub := range t.Subjects() {
		if strings.EqualFold(sub.Name, ref) {
			matches = append(matches, sub)
		}
	}
	switch len(matches) {
	case 0:
		return models.Subject{}, fmt.Errorf("no subject named %q", ref)
	case 1:
		return matches[0], nil
	default:
		return models.Subject{}, fmt.Errorf("%d subjects named %q, use the id instead", len(matches), ref)
	}
}

// FormatStatus renders a subject's standing as "3/10 (30%, ok)".
func FormatStatus(sub models.Subject) string {
	return fmt.Sprintf("%d/%d (%.0f%%, %s)", sub.CurrentAbsences, sub.MaxAbsences, sub.AbsencePercent(), sub.Status())
}
