package profile

import (
	"errors"
	"path/filepath"
	"testing"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	return NewManager(filepath.Join(t.TempDir(), "profiles.json"))
}

func TestCreateFirstProfileBecomesActive(t *testing.T) {
	m := newTestManager(t)

	p, err := m.Create("ana")
	if err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}
	if p.ID == "" {
		t.Error("Create() returned profile without id")
	}

	cur, ok, err := m.Current()
	if err != nil {
		t.Fatalf("Current() returned error: %v", err)
	}
	if !ok {
		t.Fatal("Current() found no active profile after first Create()")
	}
	if cur.ID != p.ID {
		t.Errorf("Current() = %s, want %s", cur.ID, p.ID)
	}
}

func TestCreateDuplicateName(t *testing.T) {
	m := newTestManager(t)

	if _, err := m.Create("ana"); err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}
	if _, err := m.Create("ana"); !errors.Is(err, ErrProfileExists) {
		t.Errorf("Create(duplicate) error = %v, want ErrProfileExists", err)
	}
}

func TestUseSwitchesActive(t *testing.T) {
	m := newTestManager(t)

	if _, err := m.Create("ana"); err != nil {
		t.Fatal(err)
	}
	bruno, err := m.Create("bruno")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := m.Use("bruno"); err != nil {
		t.Fatalf("Use() returned error: %v", err)
	}
	cur, ok, err := m.Current()
	if err != nil || !ok {
		t.Fatalf("Current() = ok=%v err=%v", ok, err)
	}
	if cur.ID != bruno.ID {
		t.Errorf("Current() = %s, want %s", cur.Name, "bruno")
	}

	if _, err := m.Use("nobody"); !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("Use(unknown) error = %v, want ErrProfileNotFound", err)
	}
}

func TestStatePersistsAcrossManagers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.json")

	m1 := NewManager(path)
	created, err := m1.Create("ana")
	if err != nil {
		t.Fatal(err)
	}

	m2 := NewManager(path)
	list, err := m2.List()
	if err != nil {
		t.Fatalf("List() returned error: %v", err)
	}
	if len(list) != 1 || list[0].ID != created.ID {
		t.Errorf("List() = %+v, want the profile created by the first manager", list)
	}
}

func TestCurrentWithoutProfiles(t *testing.T) {
	m := newTestManager(t)

	_, ok, err := m.Current()
	if err != nil {
		t.Fatalf("Current() returned error: %v", err)
	}
	if ok {
		t.Error("Current() reported an active profile on a fresh manager")
	}
}
