package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akyairhashvil/zenith/internal/database"
	"github.com/akyairhashvil/zenith/internal/tui"
)

var cliNow = time.Date(2026, time.March, 10, 9, 0, 0, 0, time.Local)

// newTestApp isolates every XDG location and the log file under a temp dir.
func newTestApp(t *testing.T) *app {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("XDG_DOCUMENTS_DIR", filepath.Join(dir, "docs"))
	t.Setenv("ZENITH_LOG_FILE", filepath.Join(dir, "logs", "zenith.log"))

	return newTestAppSameEnv()
}

// newTestAppSameEnv builds a stubbed app in the current environment.
func newTestAppSameEnv() *app {
	a := newApp()
	a.now = func() time.Time { return cliNow }
	a.clipboard = func(string) error { return errors.New("no clipboard in tests") }
	a.readPassphrase = func(string) (string, error) { return "", errors.New("unexpected prompt") }
	a.runTUI = func(context.Context, tui.Store, tui.Options) error { return errors.New("unexpected tui") }
	return a
}

func runCLI(t *testing.T, a *app, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd(a)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

// openDashboard runs the root command with a no-op dashboard, which seeds the
// plan year the way a first launch does.
func openDashboard(t *testing.T, a *app, args ...string) {
	t.Helper()
	run := a.runTUI
	a.runTUI = func(context.Context, tui.Store, tui.Options) error { return nil }
	defer func() { a.runTUI = run }()
	_, err := runCLI(t, a, args...)
	require.NoError(t, err)
}

// addGoal creates a goal and returns its id parsed from the command output.
func addGoal(t *testing.T, a *app, title string) string {
	t.Helper()
	out, err := runCLI(t, a, "add", "--title", title, "--category", "health", "--kr", "KR9", "--target", "30", "--unit", "days")
	require.NoError(t, err)
	open := strings.LastIndex(out, "(")
	closing := strings.LastIndex(out, ")")
	require.True(t, open >= 0 && closing > open, "unexpected add output %q", out)
	return out[open+1 : closing]
}

func TestGoalsListsSeededPlan(t *testing.T) {
	a := newTestApp(t)
	openDashboard(t, a)
	out, err := runCLI(t, a, "goals")
	require.NoError(t, err)
	assert.Contains(t, out, "KR5")
	assert.Contains(t, out, "HEALTH")
	assert.Contains(t, out, "0/200 天")
}

func TestGoalsFiltersByCategory(t *testing.T) {
	a := newTestApp(t)
	openDashboard(t, a)
	out, err := runCLI(t, a, "goals", "--category", "CAREER")
	require.NoError(t, err)
	assert.Contains(t, out, "KR1")
	assert.NotContains(t, out, "KR5")
}

func TestAddRejectsUnknownCategory(t *testing.T) {
	a := newTestApp(t)
	_, err := runCLI(t, a, "add", "--title", "Read", "--category", "hobby")
	require.Error(t, err)
}

func TestLogTogglesAndStreak(t *testing.T) {
	a := newTestApp(t)
	id := addGoal(t, a, "Morning run")

	out, err := runCLI(t, a, "log", id, "2026-03-09")
	require.NoError(t, err)
	assert.Contains(t, out, "Checked in 2026-03-09")

	out, err = runCLI(t, a, "log", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Checked in 2026-03-10")
	assert.Contains(t, out, "2/30 days")

	out, err = runCLI(t, a, "streak", id)
	require.NoError(t, err)
	assert.Contains(t, out, "current 2, longest 2")

	out, err = runCLI(t, a, "log", id, "2026-03-10")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed check-in 2026-03-10")

	_, err = runCLI(t, a, "log", id, "10/03/2026")
	require.Error(t, err)
}

func TestDeleteRemovesGoal(t *testing.T) {
	a := newTestApp(t)
	id := addGoal(t, a, "Temporary")
	_, err := runCLI(t, a, "delete", id)
	require.NoError(t, err)

	_, err = runCLI(t, a, "streak", id)
	require.ErrorIs(t, err, database.ErrGoalNotFound)
}

func TestStatsAt(t *testing.T) {
	a := newTestApp(t)
	out, err := runCLI(t, a, "stats", "--at", "2026-03-10")
	require.NoError(t, err)
	assert.Contains(t, out, "69 of 365")
	assert.Contains(t, out, "2026-03-10")

	_, err = runCLI(t, a, "stats", "--at", "yesterday")
	require.Error(t, err)
}

func TestShareAndOpenRoundTrip(t *testing.T) {
	a := newTestApp(t)
	openDashboard(t, a)
	var copied string
	a.clipboard = func(s string) error {
		copied = s
		return nil
	}

	out, err := runCLI(t, a, "share", "--copy")
	require.NoError(t, err)
	link := strings.SplitN(out, "\n", 2)[0]
	assert.True(t, strings.HasPrefix(link, "http://localhost:5173/#data="), "unexpected link %q", link)
	assert.Equal(t, link, copied)

	out, err = runCLI(t, a, "open", link)
	require.NoError(t, err)
	assert.Contains(t, out, "KR5")

	out, err = runCLI(t, a, "--year", "2027", "open", link, "--import")
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 goals into your 2027 plan")
}

func TestShareReportsClipboardFailure(t *testing.T) {
	a := newTestApp(t)
	out, err := runCLI(t, a, "share", "--copy")
	require.NoError(t, err)
	assert.Contains(t, out, "clipboard unavailable")
}

func TestOpenRejectsBrokenLink(t *testing.T) {
	a := newTestApp(t)
	_, err := runCLI(t, a, "open", "http://localhost:5173/#data=%%%")
	require.Error(t, err)
}

func TestExportImportRoundTrip(t *testing.T) {
	a := newTestApp(t)
	openDashboard(t, a)
	outDir := filepath.Join(t.TempDir(), "backups")

	out, err := runCLI(t, a, "export", "--out", outDir)
	require.NoError(t, err)
	path := strings.TrimSpace(strings.TrimPrefix(out, "Backup written to "))
	require.FileExists(t, path)

	out, err = runCLI(t, a, "--year", "2027", "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 goals into your 2027 plan")
}

func TestEncryptedExportPromptsOnImport(t *testing.T) {
	a := newTestApp(t)
	openDashboard(t, a)
	a.readPassphrase = func(string) (string, error) { return "Secret123", nil }

	out, err := runCLI(t, a, "export", "--encrypt", "--out", t.TempDir())
	require.NoError(t, err)
	path := strings.TrimSpace(strings.TrimPrefix(out, "Backup written to "))
	assert.True(t, strings.HasSuffix(path, ".enc.json"))

	out, err = runCLI(t, a, "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 goals")

	attempts := 0
	a.readPassphrase = func(string) (string, error) {
		attempts++
		return "Wrong9999", nil
	}
	_, err = runCLI(t, a, "import", path)
	require.ErrorIs(t, err, database.ErrWrongPassphrase)
	assert.Equal(t, 3, attempts)
}

func TestEncryptedExportRejectsWeakPassphrase(t *testing.T) {
	a := newTestApp(t)
	a.readPassphrase = func(string) (string, error) { return "short", nil }
	_, err := runCLI(t, a, "export", "--encrypt", "--out", t.TempDir())
	require.Error(t, err)
}

func TestReportWritesPDF(t *testing.T) {
	a := newTestApp(t)
	dir := t.TempDir()
	out, err := runCLI(t, a, "report", "--out", dir)
	require.NoError(t, err)
	path := strings.TrimSpace(strings.TrimPrefix(out, "Report written to "))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestVersionSkipsSetup(t *testing.T) {
	a := newTestApp(t)
	out, err := runCLI(t, a, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "zenith "+tui.VersionLabel())
	assert.Nil(t, a.cfg, "version should not load configuration")
}

func TestRootRunsDashboardWithFlags(t *testing.T) {
	a := newTestApp(t)
	var got tui.Options
	a.runTUI = func(_ context.Context, store tui.Store, opts tui.Options) error {
		require.NotNil(t, store)
		got = opts
		return nil
	}

	_, err := runCLI(t, a, "--year", "2027", "--theme", "dracula", "--share", "#data=abc")
	require.NoError(t, err)
	assert.Equal(t, 2027, got.Year)
	assert.Equal(t, "dracula", got.Theme)
	assert.Equal(t, "#data=abc", got.SharePayload)
	assert.Equal(t, "http://localhost:5173/", got.ShareBase)
}

func TestParseInstant(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2026-03-10", want: "2026-03-10"},
		{in: "2026-12-31T23:00:00Z", want: "2026-12-31"},
		{in: "03/10/2026", wantErr: true},
	}
	for _, tt := range tests {
		got, err := parseInstant(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got.Format("2006-01-02"), tt.in)
	}
}

func TestYearsListsPlans(t *testing.T) {
	a := newTestApp(t)
	openDashboard(t, a, "--year", "2025")
	openDashboard(t, a)

	out, err := runCLI(t, a, "years")
	require.NoError(t, err)
	assert.Contains(t, out, "* 2026  2 goals")
	assert.Contains(t, out, "  2025  2 goals")
	assert.Less(t, strings.Index(out, "2026"), strings.Index(out, "2025"), "newest year first")
}

func TestConfigInitAndShow(t *testing.T) {
	a := newTestApp(t)
	out, err := runCLI(t, a, "--year", "2030", "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "config.yaml")

	out, err = runCLI(t, newTestAppSameEnv(), "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "target_year:    2030")
}

func TestConfigResetUIClearsSettings(t *testing.T) {
	a := newTestApp(t)
	out, err := runCLI(t, a, "config", "reset-ui")
	require.NoError(t, err)
	assert.Contains(t, out, "Dashboard settings cleared")
}

func TestReadOnlyCommandsDoNotSeed(t *testing.T) {
	a := newTestApp(t)

	out, err := runCLI(t, a, "--year", "2030", "goals")
	require.NoError(t, err)
	assert.Contains(t, out, "No goals for 2030.")

	_, err = runCLI(t, a, "--year", "2031", "stats")
	require.NoError(t, err)

	out, err = runCLI(t, a, "years")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestOpenImportKeepsOtherYears(t *testing.T) {
	a := newTestApp(t)
	openDashboard(t, a)
	id := addGoal(t, a, "Evening stretch")
	_, err := runCLI(t, a, "log", id, "2026-03-10")
	require.NoError(t, err)

	link, err := runCLI(t, a, "share")
	require.NoError(t, err)
	out, err := runCLI(t, a, "--year", "2027", "open", strings.TrimSpace(link), "--import")
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 3 goals into your 2027 plan")

	out, err = runCLI(t, a, "streak", id)
	require.NoError(t, err, "the 2026 goal must survive the import")
	assert.Contains(t, out, "current 1")

	out, err = runCLI(t, a, "years")
	require.NoError(t, err)
	assert.Contains(t, out, "* 2026  3 goals")
	assert.Contains(t, out, "  2027  3 goals")
}
