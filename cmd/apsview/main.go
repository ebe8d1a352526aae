package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apsystem/apsview/internal/cli"
	"github.com/apsystem/apsview/internal/config"
	"github.com/apsystem/apsview/internal/db"
	"github.com/apsystem/apsview/internal/gantt"
	"github.com/apsystem/apsview/internal/logging"
	"github.com/apsystem/apsview/internal/repository"
	"github.com/apsystem/apsview/internal/service"
	"github.com/apsystem/apsview/internal/theme"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	interactive := func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// On a terminal the TUI owns the screen, so logs go next to the database
	// unless a file is configured.
	logFile := cfg.LogFile
	if logFile == "" && interactive() {
		logFile = filepath.Join(filepath.Dir(cfg.DBPath), "apsview.log")
	}
	logOpts := logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, File: logFile}

	logger, closer, err := logging.New(logOpts, "service")
	if err != nil {
		return err
	}
	defer closer.Close()
	console, consoleCloser, err := logging.New(logOpts, "console")
	if err != nil {
		return err
	}
	defer consoleCloser.Close()

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	modelRepo := repository.NewSQLitePlanModelRepo(database)
	lotRepo := repository.NewSQLiteLotRepo(database)
	scheduleRepo := repository.NewSQLiteScheduleRepo(database)
	settingRepo := repository.NewSQLiteSettingRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)
	observer := service.NewLogUseCaseObserver(logger)

	app := &cli.App{
		Jobs:          service.NewScheduleJobService(modelRepo, lotRepo, scheduleRepo, uow, observer),
		Results:       service.NewResultService(scheduleRepo, lotRepo, observer),
		Import:        service.NewImportService(uow, observer),
		Theme:         theme.NewManager(settingRepo),
		Console:       console,
		User:          cfg.User,
		GanttMode:     gantt.Mode(cfg.GanttMode),
		ChartColumns:  cfg.ChartColumns,
		IsInteractive: interactive,
	}

	logger.Debug().Str("db", cfg.DBPath).Str("log_file", logFile).Msg("starting")
	return cli.NewRootCmd(app).Execute()
}
