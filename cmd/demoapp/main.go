package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/evanschultz/demoapp/internal/adapters/storage/memory"
	"github.com/evanschultz/demoapp/internal/app"
	"github.com/evanschultz/demoapp/internal/config"
	"github.com/evanschultz/demoapp/internal/domain"
	"github.com/evanschultz/demoapp/internal/platform"
	"github.com/evanschultz/demoapp/internal/tui"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// version stores a package-level helper value.
var version = "dev"

// program represents program data used by this package.
type program interface {
	Run() (tea.Model, error)
}

// programFactory stores a package-level helper value.
var programFactory = func(m tea.Model) program {
	return tea.NewProgram(m)
}

// cliOptions holds flag values shared by every command.
type cliOptions struct {
	configPath     string
	appName        string
	devMode        bool
	skipOnboarding bool
	noSeed         bool
}

// main handles main.
func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// run runs the requested command flow.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}
	if args == nil {
		args = []string{}
	}

	root := newRootCommand(stdout, stderr)
	root.SetArgs(args)
	root.SetIn(os.Stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return fang.Execute(ctx, root, fang.WithVersion(version))
}

// newRootCommand builds the command tree.
func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &cliOptions{appName: "demoapp", devMode: version == "dev"}
	if envDev, ok := parseBoolEnv("DEMOAPP_DEV_MODE"); ok {
		opts.devMode = envDev
	}
	if envApp := strings.TrimSpace(os.Getenv("DEMOAPP_APP_NAME")); envApp != "" {
		opts.appName = envApp
	}

	root := &cobra.Command{
		Use:   "demoapp",
		Short: "A task list with a first-run walkthrough",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(*opts, stderr)
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config TOML")
	root.PersistentFlags().StringVar(&opts.appName, "app", opts.appName, "application name for config/data path resolution")
	root.PersistentFlags().BoolVar(&opts.devMode, "dev", opts.devMode, "use dev mode paths (<app>-dev) and the dev log file")
	root.Flags().BoolVar(&opts.skipOnboarding, "skip-onboarding", false, "open the task list without the walkthrough")
	root.Flags().BoolVar(&opts.noSeed, "no-seed", false, "start with an empty task list")

	root.AddCommand(
		&cobra.Command{
			Use:   "paths",
			Short: "Print resolved config, data and log paths",
			Args:  cobra.NoArgs,
			RunE: func(_ *cobra.Command, _ []string) error {
				return runPaths(*opts, stdout)
			},
		},
		&cobra.Command{
			Use:   "slides",
			Short: "Print the walkthrough slides",
			Args:  cobra.NoArgs,
			RunE: func(_ *cobra.Command, _ []string) error {
				_, err := fmt.Fprintln(stdout, renderSlidesTable(domain.DefaultSlides()))
				return err
			},
		},
	)
	return root
}

// resolvePaths resolves platform paths for the selected app name and mode.
func resolvePaths(opts cliOptions) (platform.Paths, error) {
	paths, err := platform.DefaultPathsWithOptions(platform.Options{
		AppName: opts.appName,
		DevMode: opts.devMode,
	})
	if err != nil {
		return platform.Paths{}, fmt.Errorf("resolve paths: %w", err)
	}
	return paths, nil
}

// runPaths prints the resolved runtime paths.
func runPaths(opts cliOptions, stdout io.Writer) error {
	paths, err := resolvePaths(opts)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(stdout, "app: %s\n", opts.appName)
	_, _ = fmt.Fprintf(stdout, "dev_mode: %t\n", opts.devMode)
	_, _ = fmt.Fprintf(stdout, "config: %s\n", configPathFor(opts, paths))
	_, _ = fmt.Fprintf(stdout, "data_dir: %s\n", paths.DataDir)
	_, _ = fmt.Fprintf(stdout, "log_dir: %s\n", paths.LogDir)
	return nil
}

// configPathFor picks the config file: flag, then DEMOAPP_CONFIG, then the platform default.
func configPathFor(opts cliOptions, paths platform.Paths) string {
	if path := strings.TrimSpace(opts.configPath); path != "" {
		return path
	}
	if envPath := strings.TrimSpace(os.Getenv("DEMOAPP_CONFIG")); envPath != "" {
		return envPath
	}
	return paths.ConfigPath
}

// runTUI loads config, wires the task list and runs the program loop.
func runTUI(opts cliOptions, stderr io.Writer) error {
	paths, err := resolvePaths(opts)
	if err != nil {
		return err
	}
	configPath := configPathFor(opts, paths)
	cfg, err := config.Load(configPath, config.Default())
	if err != nil {
		return fmt.Errorf("load config %q: %w", configPath, err)
	}

	logger, err := newRuntimeLogger(stderr, opts.appName, opts.devMode, cfg.Logging, paths.LogDir, time.Now)
	if err != nil {
		return fmt.Errorf("configure runtime logger: %w", err)
	}
	// Runtime logs stay in the dev-file sink while the program owns the terminal.
	logger.SetConsoleEnabled(false)
	defer func() {
		if closeErr := logger.Close(); closeErr != nil {
			_, _ = fmt.Fprintf(stderr, "warning: close runtime log sink: %v\n", closeErr)
		}
	}()

	logger.Info("startup configuration resolved", "app", opts.appName, "dev_mode", opts.devMode)
	logger.Debug("runtime paths resolved", "config_path", configPath, "data_dir", paths.DataDir, "log_dir", paths.LogDir)
	logger.Info("configuration loaded", "config_path", configPath, "log_level", cfg.Logging.Level)
	if devPath := logger.DevLogPath(); devPath != "" {
		logger.Info("dev file logging enabled", "path", devPath)
	}

	var seed []domain.Task
	if cfg.Tasks.Seed && !opts.noSeed {
		seed = app.DefaultSeedTasks()
	}
	svc := app.NewTaskList(memory.New(), uuid.NewString, app.TaskListConfig{
		Seed:                seed,
		SimilarityThreshold: cfg.Tasks.SimilarityThreshold,
	})
	logger.Debug("task list initialized", "seeded", len(seed), "similarity_threshold", cfg.Tasks.SimilarityThreshold)

	showOnboarding := cfg.Onboarding.Enabled && !opts.skipOnboarding
	m := tui.NewModel(
		svc,
		tui.WithOnboarding(showOnboarding),
		tui.WithOnComplete(func() {
			logger.Info("onboarding completed", "tasks", svc.Summary().Total)
		}),
		tui.WithKeyConfig(toTUIKeyConfig(cfg.Keys)),
	)
	logger.Info("starting tui program loop", "onboarding", showOnboarding)
	if _, err := programFactory(m).Run(); err != nil {
		logger.Error("tui program terminated with error", "err", err)
		return fmt.Errorf("run tui program: %w", err)
	}
	summary := svc.Summary()
	logger.Info("tui program loop finished", "completed", summary.Completed, "total", summary.Total)
	return nil
}

// toTUIKeyConfig maps config key overrides into the tui option type.
func toTUIKeyConfig(keys config.KeyConfig) tui.KeyConfig {
	return tui.KeyConfig{
		Toggle:     keys.Toggle,
		Delete:     keys.Delete,
		FocusInput: keys.FocusInput,
		Copy:       keys.Copy,
		Next:       keys.Next,
		Back:       keys.Back,
	}
}

// renderSlidesTable lays out the walkthrough slides as a bordered table.
func renderSlidesTable(slides []domain.Slide) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("62"))).
		Headers("#", "", "Title", "Description").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for idx, slide := range slides {
		t.Row(strconv.Itoa(idx+1), slide.Emoji, slide.Title, slide.Description)
	}
	return t.String()
}

// parseBoolEnv parses one boolean environment variable; unset or invalid values report false.
func parseBoolEnv(name string) (bool, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
