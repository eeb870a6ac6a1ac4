// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/supportdesk-tui/internal/config"
	"github.com/jeranaias/supportdesk-tui/internal/model"
	"github.com/jeranaias/supportdesk-tui/internal/session"
)

// isolate points the config directory at a temp dir and clears overrides.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("SUPPORTDESK_HOME", dir)
	for _, key := range []string{
		"SUPPORTDESK_THEME", "SUPPORTDESK_SEED", "SUPPORTDESK_LOG_FILE",
		"SUPPORTDESK_LOG_LEVEL", "SUPPORTDESK_ATTACH_DIR",
	} {
		t.Setenv(key, "")
	}
	config.ResetGlobalForTesting()
	t.Cleanup(config.ResetGlobalForTesting)
	return dir
}

// run executes the command tree with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// =============================================================================
// COMMANDS
// =============================================================================

func TestVersionCommand(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "supportdesk version "+Version)
	assert.Contains(t, out, "commit: "+GitCommit)
}

func TestConfigPath(t *testing.T) {
	dir := isolate(t)

	out, _, err := run(t, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.toml"), strings.TrimSpace(out))

	out, _, err = run(t, "--config", "/tmp/other.toml", "config", "path")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/other.toml", strings.TrimSpace(out))
}

func TestConfigInitAndShow(t *testing.T) {
	dir := isolate(t)

	out, _, err := run(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote default configuration")
	assert.FileExists(t, filepath.Join(dir, "config.toml"))

	_, _, err = run(t, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, _, err = run(t, "config", "init", "--force")
	require.NoError(t, err)

	t.Setenv("SUPPORTDESK_THEME", "light")
	out, _, err = run(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, `theme = "light"`)
	assert.Contains(t, out, "sidebar_width = 40")
}

func TestConfigInit_ExplicitPath(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(t.TempDir(), "nested", "desk.toml")

	out, _, err := run(t, "--config", path, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, path)
	assert.FileExists(t, path)
	assert.NoFileExists(t, filepath.Join(dir, "config.toml"))

	cfg, err := config.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default().UI, cfg.UI)
}

func TestConfigShow_BrokenDefaultFileWarns(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("ui = ["), 0600))

	out, errOut, err := run(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, errOut, "Warning:")
	assert.Contains(t, out, `theme = "auto"`)
}

func TestConfigShow_BrokenExplicitFileFails(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\ntheme = \"neon\"\n"), 0600))

	_, _, err := run(t, "--config", path, "config", "show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ui.theme")
}

func TestRoot_RejectsArgs(t *testing.T) {
	isolate(t)
	_, _, err := run(t, "unexpected")
	assert.Error(t, err)
}

func TestRoot_RequiresTerminal(t *testing.T) {
	isolate(t)
	orig := isInteractive
	isInteractive = func() bool { return false }
	t.Cleanup(func() { isInteractive = orig })

	_, _, err := run(t)
	assert.ErrorIs(t, err, ErrNotTerminal)
}

// =============================================================================
// STARTUP WIRING
// =============================================================================

func TestBuildApp_Defaults(t *testing.T) {
	dir := isolate(t)
	logPath := filepath.Join(dir, "logs", "console.log")

	a, err := buildApp(&globalFlags{logFile: logPath}, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Len(t, a.model.Console().Messages(), 3)
	assert.Equal(t, model.DefaultSeed().Client.Name, a.model.Console().Profile().Name)
	assert.Same(t, a.cfg, config.Global())
	assert.NotEmpty(t, a.session.SessionID())

	a.logger.Info("probe")
	require.NoError(t, a.logger.Sync())
	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), a.session.SessionID())
}

func TestBuildApp_SeedFromFlagAndConfig(t *testing.T) {
	dir := isolate(t)
	seedPath := filepath.Join(dir, "seed.toml")
	require.NoError(t, os.WriteFile(seedPath, []byte(`templates = ["Один", "Два"]
notes = "из файла"
`), 0600))

	a, err := buildApp(&globalFlags{seedPath: seedPath, logFile: filepath.Join(dir, "a.log")}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Один", "Два"}, a.model.Console().Templates())
	assert.Equal(t, "из файла", a.model.Console().Notes())

	t.Setenv("SUPPORTDESK_SEED", seedPath)
	config.ResetGlobalForTesting()
	a, err = buildApp(&globalFlags{logFile: filepath.Join(dir, "b.log")}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "из файла", a.model.Console().Notes())
}

func TestBuildApp_BadSeed(t *testing.T) {
	dir := isolate(t)
	seedPath := filepath.Join(dir, "seed.toml")
	require.NoError(t, os.WriteFile(seedPath, []byte("[[messages]]\nid = 7\ntext = \"x\"\nsender = \"client\"\ntime = \"10:00\"\n"), 0600))

	_, err := buildApp(&globalFlags{seedPath: seedPath}, &bytes.Buffer{})
	assert.ErrorIs(t, err, model.ErrInvalidSeed)
}

func TestBuildApp_ChatReadsGlobalConfig(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "desk.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\nshow_help_bar = false\n"), 0600))

	a, err := buildApp(&globalFlags{configPath: path, logFile: filepath.Join(dir, "c.log")}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.False(t, config.Global().UI.ShowHelpBar)
	assert.NotContains(t, a.model.View(), "прикрепить файл", "help bar follows the loaded config")
}

func TestSessionSummary(t *testing.T) {
	start := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	now := start
	mgr := session.NewManager(
		session.WithSessionID("desk-7"),
		session.WithClock(func() time.Time { return now }),
	)
	now = start.Add(3*time.Minute + 4*time.Second)

	assert.Equal(t, "session desk-7 closed after 3m 4s", sessionSummary(mgr))
}

func TestProgramOptions(t *testing.T) {
	a := &app{cfg: config.Default()}

	assert.Len(t, a.programOptions(&globalFlags{}), 2)
	assert.Len(t, a.programOptions(&globalFlags{noAltScreen: true}), 1)

	a.cfg.UI.AltScreen = false
	assert.Len(t, a.programOptions(&globalFlags{}), 1)
}
