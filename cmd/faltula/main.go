package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/faltula/faltula/internal/cli"
	"github.com/faltula/faltula/internal/cli/absences"
	"github.com/faltula/faltula/internal/cli/profiles"
	"github.com/faltula/faltula/internal/cli/schedule"
	"github.com/faltula/faltula/internal/cli/subjects"
	"github.com/faltula/faltula/internal/cli/system"
	"github.com/faltula/faltula/internal/constants"
	"github.com/faltula/faltula/internal/errors"
	"github.com/faltula/faltula/internal/logger"
	"github.com/faltula/faltula/internal/profile"
	"github.com/faltula/faltula/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path. A .db suffix selects the SQLite backend, anything else uses JSON." type:"string" default:"${config_path}"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init    system.InitCmd   `cmd:"" help:"Initialize faltula storage."`
	Doctor  system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Tui     system.TuiCmd    `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Status  cli.StatusCmd    `cmd:"" help:"Show the absence standing of every subject."`
	Subject struct {
		Add    subjects.SubjectAddCmd    `cmd:"" help:"Add a new subject."`
		Edit   subjects.SubjectEditCmd   `cmd:"" help:"Edit an existing subject."`
		Rm     subjects.SubjectDeleteCmd `cmd:"" help:"Delete a subject and its schedule slots."`
		List   subjects.SubjectListCmd   `cmd:"" help:"List all subjects."`
	} `cmd:"" help:"Manage subjects."`
	Schedule struct {
		Add  schedule.ScheduleAddCmd    `cmd:"" help:"Assign a subject to a weekly slot."`
		Rm   schedule.ScheduleRemoveCmd `cmd:"" help:"Clear a weekly slot."`
		Show schedule.ScheduleShowCmd   `cmd:"" help:"Print the weekly schedule grid." default:"1"`
	} `cmd:"" help:"Manage the weekly schedule."`
	Absence struct {
		Add  absences.AbsenceAddCmd    `cmd:"" help:"Record an absent day."`
		Rm   absences.AbsenceRemoveCmd `cmd:"" help:"Remove an absence record."`
		List absences.AbsenceListCmd   `cmd:"" help:"List absence records, newest first." default:"1"`
	} `cmd:"" help:"Manage absence records."`
	Profile profiles.ProfileCmd `cmd:"" help:"Manage profiles."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal class-attendance tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	configPath, err := expandHome(CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	configDir := filepath.Dir(configPath)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	var store storage.Provider
	if strings.HasSuffix(configPath, ".db") {
		store = storage.NewSQLiteStore(configPath)
	} else {
		store = storage.NewJSONStore(configPath)
	}

	appCtx := &cli.Context{
		Store:    store,
		Profiles: profile.NewManager(filepath.Join(configDir, constants.ProfilesFileName)),
	}

	runErr := ctx.Run(appCtx)
	if err := store.Close(); err != nil {
		logger.Warn("Failed to close storage", "error", err)
	}
	errors.Fatal(runErr)
}

func expandHome(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}
