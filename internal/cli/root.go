// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeranaias/supportdesk-tui/internal/config"
	"github.com/jeranaias/supportdesk-tui/internal/console"
	"github.com/jeranaias/supportdesk-tui/internal/logging"
	"github.com/jeranaias/supportdesk-tui/internal/model"
	"github.com/jeranaias/supportdesk-tui/internal/session"
	"github.com/jeranaias/supportdesk-tui/internal/ui/chat"
	"github.com/jeranaias/supportdesk-tui/internal/ui/styles"
)

// globalFlags hold the values of the root persistent flags.
type globalFlags struct {
	configPath  string
	seedPath    string
	logFile     string
	verbose     bool
	noAltScreen bool
}

// NewRootCommand builds the supportdesk command tree.
func NewRootCommand() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "supportdesk",
		Short: "Client-support operator chat console",
		Long: `supportdesk is a terminal console for a support operator talking to one client.

It shows the conversation, the client profile with recent operations and
notes, quick-reply templates and a file attachment picker. All data is kept
in memory for the lifetime of the session.

Press F1 inside the console for the key reference.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(cmd, flags)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (TOML, or JSON by extension)")
	pf.StringVar(&flags.seedPath, "seed", "", "conversation fixture (TOML)")
	pf.StringVar(&flags.logFile, "log-file", "", "log file path")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "debug-level logging")
	root.Flags().BoolVar(&flags.noAltScreen, "no-alt-screen", false, "render inline instead of the alternate screen")

	root.AddCommand(newVersionCommand(), newConfigCommand(flags))
	return root
}

// Execute runs the command tree against os.Args and returns the process
// exit code.
func Execute() int {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// =============================================================================
// CONSOLE STARTUP
// =============================================================================

// app is everything the console program needs, built before the terminal
// is taken over.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	session *session.Manager
	model   chat.Model
}

// loadConfig reads the --config file when given, otherwise the default
// locations. A broken default file is reported on stderr and defaults are
// used; a broken explicit file is an error.
func loadConfig(path string, stderr io.Writer) (*config.Config, error) {
	if path != "" {
		return config.LoadFromPath(path)
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Warning: %v (using defaults)\n", err)
	}
	return cfg, nil
}

// loadSeed resolves the fixture from the flag, then the config.
func loadSeed(flagPath string, cfg *config.Config) (*model.Seed, error) {
	path := flagPath
	if path == "" {
		path = cfg.SeedFile
	}
	if path == "" {
		return model.DefaultSeed(), nil
	}
	return model.LoadSeed(path)
}

func buildApp(flags *globalFlags, stderr io.Writer) (*app, error) {
	cfg, err := loadConfig(flags.configPath, stderr)
	if err != nil {
		return nil, err
	}
	config.SetGlobal(cfg)

	seed, err := loadSeed(flags.seedPath, cfg)
	if err != nil {
		return nil, err
	}

	mgr := session.NewManager()
	logger, err := logging.New(cfg.Log, logging.Options{
		Path:      flags.logFile,
		Verbose:   flags.verbose,
		SessionID: mgr.SessionID(),
	})
	if err != nil {
		return nil, err
	}

	c := console.New(seed, console.WithLogger(logger), console.WithSession(mgr))

	opts := chat.OptionsFromConfig(config.Global())
	opts.Logger = logger
	opts.Session = mgr

	return &app{
		cfg:     cfg,
		logger:  logger,
		session: mgr,
		model:   chat.New(c, styles.NewTheme(cfg.UI.Theme), opts),
	}, nil
}

// programOptions maps the config and flags onto Bubble Tea options.
func (a *app) programOptions(flags *globalFlags) []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithMouseCellMotion()}
	if a.cfg.UI.AltScreen && !flags.noAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	return opts
}

func runConsole(cmd *cobra.Command, flags *globalFlags) error {
	if !isInteractive() {
		return ErrNotTerminal
	}

	a, err := buildApp(flags, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = a.logger.Sync() }()

	a.logger.Info("session started",
		zap.Time("started", a.session.StartTime()),
		zap.String("client", a.model.Console().Profile().Name),
		zap.Int("messages", len(a.model.Console().Messages())),
		zap.String("theme", a.cfg.UI.Theme),
	)

	p := tea.NewProgram(a.model, a.programOptions(flags)...)
	_, runErr := p.Run()

	a.logger.Info("session ended", a.session.GetStatus().Fields()...)
	fmt.Fprintln(cmd.ErrOrStderr(), sessionSummary(a.session))
	if runErr != nil {
		a.logger.Error("console exited with error", zap.Error(runErr))
		return fmt.Errorf("console: %w", runErr)
	}
	return nil
}

// sessionSummary is the line printed after the console closes.
func sessionSummary(mgr *session.Manager) string {
	return fmt.Sprintf("session %s closed after %s", mgr.SessionID(), session.FormatDuration(mgr.Duration()))
}
