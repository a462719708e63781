package nutrilog

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// resetFlags puts every flag back to its default so one run cannot leak
// values or Changed state into the next.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := runCLI(t, args...)
	if err != nil {
		t.Fatalf("%s failed: %v\n%s", strings.Join(args, " "), err, out)
	}
	return out
}

func setTestEnv(t *testing.T) {
	t.Helper()
	t.Setenv("NUTRILOG_TZ", "UTC")
	t.Setenv("NUTRILOG_WEEK_START", "monday")
	t.Setenv("NUTRILOG_LANG", "en")
	t.Setenv("NUTRILOG_BACKEND", "sqlite")
	t.Setenv("NUTRILOG_STORE", "")
}

func TestRootHelp(t *testing.T) {
	out := mustRun(t, "--help")
	if !strings.Contains(out, "nutrilog") {
		t.Fatalf("expected help output, got %q", out)
	}
}

func TestInitCommandIdempotent(t *testing.T) {
	setTestEnv(t)
	path := filepath.Join(t.TempDir(), "nutrilog.db")
	for i := 0; i < 2; i++ {
		out := mustRun(t, "--store", path, "init")
		if !strings.Contains(out, "Initialized sqlite store") {
			t.Fatalf("run %d: unexpected output %q", i+1, out)
		}
	}
}

func TestDayInTheLifeFlow(t *testing.T) {
	setTestEnv(t)
	dir := t.TempDir()
	store := filepath.Join(dir, "nutrilog.db")

	mustRun(t, "--store", store, "init")
	out := mustRun(t, "--store", store, "profile", "set",
		"--age", "30", "--gender", "male",
		"--height", "180", "--weight", "80",
		"--activity", "moderate", "--goal", "lose_weight")
	if !strings.Contains(out, "P 141g | C 254g | F 75g") {
		t.Fatalf("unexpected targets: %s", out)
	}

	mustRun(t, "--store", store, "meal", "add",
		"--name", "Oats", "--calories", "250", "--protein", "10", "--carbs", "40", "--fat", "5",
		"--quantity", "2", "--type", "breakfast", "--date", "2026-03-10", "--time", "08:00")
	out = mustRun(t, "--store", store, "workout", "add",
		"--type", "run", "--duration", "30", "--date", "2026-03-10", "--time", "07:00")
	if !strings.Contains(out, "(300 kcal)") {
		t.Fatalf("unexpected workout output: %s", out)
	}
	mustRun(t, "--store", store, "sleep", "log", "--hours", "7.5", "--date", "2026-03-10")

	out = mustRun(t, "--store", store, "today", "--date", "2026-03-10")
	for _, want := range []string{"Intake: 500 kcal", "Exercise: 300 kcal", "Net: 200 kcal", "breakfast: 500 kcal", "Sleep: 7.5 h"} {
		if !strings.Contains(out, want) {
			t.Fatalf("today output missing %q:\n%s", want, out)
		}
	}

	out = mustRun(t, "--store", store, "week-goal", "set", "--calories", "14000", "--buffer", "--buffer-max", "200")
	if !strings.Contains(out, "capped at 200 kcal/day") {
		t.Fatalf("unexpected week-goal output: %s", out)
	}
	out = mustRun(t, "--store", store, "week", "--date", "2026-03-10")
	if !strings.Contains(out, "Week: 2026-03-09 .. 2026-03-15") || !strings.Contains(out, "Buffer balance: 200 kcal") {
		t.Fatalf("unexpected week output: %s", out)
	}

	mustRun(t, "--store", store, "doctor")

	exportPath := filepath.Join(dir, "export.json")
	mustRun(t, "--store", store, "export", "--out", exportPath)
	other := filepath.Join(dir, "other.db")
	out = mustRun(t, "--store", other, "import", "--in", exportPath)
	if !strings.Contains(out, "inserted 3") {
		t.Fatalf("unexpected import output: %s", out)
	}
	if _, err := runCLI(t, "--store", other, "import", "--in", exportPath); err == nil {
		t.Fatal("expected second import to fail on conflicts")
	}

	backupPath := filepath.Join(dir, "backups", "snap.json")
	mustRun(t, "--store", store, "backup", "create", "--out", backupPath)
	if _, err := os.Stat(backupPath + ".sha256"); err != nil {
		t.Fatalf("expected checksum file: %v", err)
	}
	out = mustRun(t, "--store", store, "meal", "list", "--date", "2026-03-10")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one meal, got:\n%s", out)
	}
	mealID := strings.Split(lines[1], "\t")[0]
	mustRun(t, "--store", store, "meal", "delete", mealID)
	mustRun(t, "--store", store, "backup", "restore", "--file", backupPath)
	out = mustRun(t, "--store", store, "meal", "list", "--date", "2026-03-10")
	if !strings.Contains(out, mealID) {
		t.Fatalf("expected restored meal %s, got:\n%s", mealID, out)
	}
}

func TestBoltBackend(t *testing.T) {
	setTestEnv(t)
	store := filepath.Join(t.TempDir(), "nutrilog.bolt")
	mustRun(t, "--backend", "bolt", "--store", store, "mood", "log", "great", "--note", "slept well")
	out := mustRun(t, "--backend", "bolt", "--store", store, "mood", "list")
	if !strings.Contains(out, "great") || !strings.Contains(out, "slept well") {
		t.Fatalf("unexpected mood list: %s", out)
	}
}

func TestCLIValidationErrors(t *testing.T) {
	setTestEnv(t)
	store := filepath.Join(t.TempDir(), "nutrilog.db")
	cases := [][]string{
		{"meal", "add", "--name", "Oats", "--calories", "250", "--quantity", "-1"},
		{"workout", "add", "--type", "manual"},
		{"sleep", "log", "--hours", "30"},
		{"mood", "log", "meh"},
		{"today", "--date", "03/10/2026"},
		{"profile", "show"},
	}
	for _, args := range cases {
		if _, err := runCLI(t, append([]string{"--store", store}, args...)...); err == nil {
			t.Fatalf("%s: expected error", strings.Join(args, " "))
		}
	}
}

func TestWorkoutEstimate(t *testing.T) {
	out := mustRun(t, "workout", "estimate", "--type", "run", "--intensity", "low", "--duration", "10")
	if !strings.Contains(out, "Estimated: 70 kcal") {
		t.Fatalf("unexpected estimate: %s", out)
	}
	out = mustRun(t, "workout", "estimate", "--type", "manual", "--duration", "45")
	if !strings.Contains(out, "Estimated: 0 kcal") {
		t.Fatalf("manual should estimate 0: %s", out)
	}
}

func TestVersion(t *testing.T) {
	out := mustRun(t, "version")
	if !strings.HasPrefix(out, "nutrilog dev") {
		t.Fatalf("unexpected version output: %q", out)
	}
}
