package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/tourbook/internal/domain"
)

func runCLI(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

// --- command structure ---

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	cmd := newRootCmd()
	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, expected := range []string{"add", "list", "show", "delete", "query", "types", "init", "version"} {
		if !names[expected] {
			t.Errorf("expected subcommand %q to be registered", expected)
		}
	}
}

func TestAddCmd_Flags(t *testing.T) {
	cmd := addCmd(&rootOptions{})
	for _, flag := range []string{"type", "name", "hours", "duration", "stops", "method", "no-save"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected --%s flag on add command", flag)
		}
	}
}

func TestInitCmd_Flags(t *testing.T) {
	cmd := initCmd()
	if cmd.Flags().Lookup("path") == nil {
		t.Error("expected --path flag on init command")
	}
	if cmd.Flags().Lookup("force") == nil {
		t.Error("expected --force flag on init command")
	}
}

// --- end to end ---

func TestAddListShowDelete(t *testing.T) {
	ws := t.TempDir()

	out, _, err := runCLI(t, "-w", ws, "add", "--type", "hiking", "--name", "Test", "--duration", "3", "--stops", "2", "--method", "duration+stops")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !strings.Contains(out, "Total cost: 400 UAH") {
		t.Fatalf("expected cost line, got:\n%s", out)
	}
	if !strings.Contains(out, domain.VariantHiking.PlanningMessage()) {
		t.Fatalf("expected planning message, got:\n%s", out)
	}

	if _, _, err := runCLI(t, "-w", ws, "add", "-t", "9", "--hours", "-d", "5", "-s", "3"); err != nil {
		t.Fatalf("add #2: %v", err)
	}

	out, _, err = runCLI(t, "-w", ws, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "1. Test [Hiking] - 3 days, stops: 2, cost: 400 UAH") {
		t.Fatalf("unexpected list output:\n%s", out)
	}
	if !strings.Contains(out, "2. Air tour [Air tour] - 5 hours, stops: 3, cost: 25 UAH") {
		t.Fatalf("unexpected list output:\n%s", out)
	}

	out, _, err = runCLI(t, "-w", ws, "show", "2", "--format", "json")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	var shown map[string]any
	if err := json.Unmarshal([]byte(out), &shown); err != nil {
		t.Fatalf("show output is not JSON: %v\n%s", err, out)
	}
	if shown["type"] != "AirTour" || shown["cost"] != float64(25) {
		t.Fatalf("unexpected show payload: %v", shown)
	}

	out, _, err = runCLI(t, "-w", ws, "delete", "1")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !strings.Contains(out, `Deleted "Test"`) {
		t.Fatalf("unexpected delete output:\n%s", out)
	}

	out, _, err = runCLI(t, "-w", ws, "show", "1")
	if err != nil {
		t.Fatalf("show after delete: %v", err)
	}
	if !strings.Contains(out, "Air tour") {
		t.Fatalf("expected shifted entry, got:\n%s", out)
	}
}

func TestAdd_NoSaveDoesNotPersist(t *testing.T) {
	ws := t.TempDir()

	out, _, err := runCLI(t, "-w", ws, "add", "-t", "AirTour", "--hours", "-d", "5", "-s", "10", "-m", "2", "--no-save")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !strings.Contains(out, "Total cost: 25 UAH") {
		t.Fatalf("expected hours cost ignoring stops, got:\n%s", out)
	}
	if _, err := os.Stat(filepath.Join(ws, "tours.yaml")); !os.IsNotExist(err) {
		t.Fatalf("expected no store written, stat err=%v", err)
	}
}

func TestAdd_RejectsInvalidInput(t *testing.T) {
	ws := t.TempDir()

	_, _, err := runCLI(t, "-w", ws, "add", "-t", "hiking", "-d", "0")
	if !domain.IsKind(err, domain.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	_, _, err = runCLI(t, "-w", ws, "add", "-t", "hiking", "-d", "1", "-s", "-2")
	if !domain.IsKind(err, domain.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	_, _, err = runCLI(t, "-w", ws, "add", "-t", "submarine", "-d", "1")
	if err == nil {
		t.Fatalf("expected unknown type error")
	}
}

func TestShow_OutOfRange(t *testing.T) {
	ws := t.TempDir()
	_, _, err := runCLI(t, "-w", ws, "show", "1")
	if !domain.IsKind(err, domain.KindIndex) {
		t.Fatalf("expected index error, got %v", err)
	}
	_, _, err = runCLI(t, "-w", ws, "delete", "abc")
	if !domain.IsKind(err, domain.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestList_CorruptStoreWarnsAndIsEmpty(t *testing.T) {
	ws := t.TempDir()
	if err := os.WriteFile(filepath.Join(ws, "tours.yaml"), []byte("tours: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, errOut, err := runCLI(t, "-w", ws, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(errOut, "could not be read") {
		t.Fatalf("expected corrupt warning, got stderr:\n%s", errOut)
	}
	if !strings.Contains(out, "(no saved tours)") {
		t.Fatalf("expected empty list, got:\n%s", out)
	}
}

func TestList_UsesConfiguredStoreAndTemplate(t *testing.T) {
	ws := t.TempDir()
	cfg := "tourbook:\n  store:\n    path: data/routes.json\n  display:\n    currency: EUR\n    row_template: \"{{index}}|{{type}}|{{cost}} {{currency}}\"\n"
	if err := os.WriteFile(filepath.Join(ws, "tourbook.yaml"), []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TOURBOOK_STORE", "")
	t.Setenv("TOURBOOK_CURRENCY", "")

	if _, _, err := runCLI(t, "-w", ws, "add", "-t", "cruise", "-d", "2"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := os.Stat(filepath.Join(ws, "data", "routes.json")); err != nil {
		t.Fatalf("expected configured store, got %v", err)
	}

	out, _, err := runCLI(t, "-w", ws, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if strings.TrimSpace(out) != "1|Cruise|200 EUR" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestQuery(t *testing.T) {
	ws := t.TempDir()
	for _, args := range [][]string{
		{"add", "-t", "hiking", "-n", "Cheap", "-d", "1"},
		{"add", "-t", "safari", "-n", "Pricey", "-d", "5"},
	} {
		if _, _, err := runCLI(t, append([]string{"-w", ws}, args...)...); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	out, _, err := runCLI(t, "-w", ws, "query", "$[1].name")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if strings.TrimSpace(out) != "Pricey" {
		t.Fatalf("unexpected query output %q", out)
	}

	out, _, err = runCLI(t, "-w", ws, "query", "--select", "$[?(@.cost > 300)]")
	if err != nil {
		t.Fatalf("query --select: %v", err)
	}
	if !strings.HasPrefix(strings.TrimSpace(out), "2. Pricey") {
		t.Fatalf("expected row 2 selected, got %q", out)
	}
}

func TestInitAndVersion(t *testing.T) {
	ws := t.TempDir()
	out, _, err := runCLI(t, "init", "--path", ws)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if !strings.Contains(out, ws) {
		t.Fatalf("expected workspace path in output, got %q", out)
	}
	if _, err := os.Stat(filepath.Join(ws, "tourbook.yaml")); err != nil {
		t.Fatalf("expected tourbook.yaml: %v", err)
	}

	out, _, err = runCLI(t, "version")
	if err != nil || !strings.HasPrefix(out, "tourbook ") {
		t.Fatalf("unexpected version output %q %v", out, err)
	}
}

func TestTypes(t *testing.T) {
	out, _, err := runCLI(t, "types")
	if err != nil {
		t.Fatalf("types: %v", err)
	}
	if strings.Count(out, "\n") != 9 || !strings.Contains(out, "HorseRiding") {
		t.Fatalf("unexpected types output:\n%s", out)
	}
}

// --- helpers ---

func TestParseIndex(t *testing.T) {
	if n, err := parseIndex(" 3 "); err != nil || n != 3 {
		t.Fatalf("expected 3, got %d %v", n, err)
	}
	if _, err := parseIndex("x"); !domain.IsKind(err, domain.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestPrintTours_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := printTours(&buf, nil, domain.DefaultConfig(), "xml")
	if err == nil || !strings.Contains(err.Error(), "xml") {
		t.Fatalf("expected format error, got %v", err)
	}
}

func TestPrintTours_JSON(t *testing.T) {
	var buf bytes.Buffer
	tours := []domain.Tour{{ID: "x", Variant: domain.VariantTrainTour, Name: "Rail", Duration: 2, Cost: 200}}
	if err := printTours(&buf, tours, domain.DefaultConfig(), "json"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var rows []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rows); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(rows) != 1 || rows[0]["type"] != "TrainTour" || rows[0]["index"] != float64(1) {
		t.Fatalf("unexpected rows %v", rows)
	}
}

func TestResolveWorkspaceRoot_ExplicitPath(t *testing.T) {
	tmp := t.TempDir()
	got, err := resolveWorkspaceRoot(tmp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != tmp {
		t.Errorf("expected %q, got %q", tmp, got)
	}
}

func TestAdd_CorruptStoreIsCopiedBeforeOverwrite(t *testing.T) {
	ws := t.TempDir()
	store := filepath.Join(ws, "tours.yaml")
	if err := os.WriteFile(store, []byte("tours: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, errOut, err := runCLI(t, "-w", ws, "add", "-t", "cruise", "-d", "2")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !strings.Contains(errOut, ".corrupt") {
		t.Fatalf("expected backup hint in warning, got stderr:\n%s", errOut)
	}

	kept, err := os.ReadFile(store + ".corrupt")
	if err != nil {
		t.Fatalf("expected corrupt copy: %v", err)
	}
	if string(kept) != "tours: [oops" {
		t.Fatalf("unexpected copy contents %q", kept)
	}

	out, _, err := runCLI(t, "-w", ws, "list")
	if err != nil || !strings.Contains(out, "1. Cruise [Cruise]") {
		t.Fatalf("expected the new tour after overwrite, got %q %v", out, err)
	}
}

func TestDebugFlagReportsLogPath(t *testing.T) {
	ws := t.TempDir()
	_, errOut, err := runCLI(t, "-w", ws, "--debug", "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := filepath.Join(".tourbook", "logs", "tourbook.log")
	if !strings.Contains(errOut, "debug log: ") || !strings.Contains(errOut, want) {
		t.Fatalf("expected debug log path on stderr, got:\n%s", errOut)
	}

	_, errOut, err = runCLI(t, "-w", ws, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if strings.Contains(errOut, "debug log") {
		t.Fatalf("expected no log notice without --debug, got:\n%s", errOut)
	}
}

func TestAdd_RejectsControlCharsInName(t *testing.T) {
	ws := t.TempDir()
	_, _, err := runCLI(t, "-w", ws, "add", "-t", "hiking", "-n", "bad\x01name", "-d", "1")
	if !domain.IsKind(err, domain.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	_, _, err = runCLI(t, "-w", ws, "add", "-t", "cruise", "-d", "1e307")
	if !domain.IsKind(err, domain.KindValidation) {
		t.Fatalf("expected overflow to be rejected, got %v", err)
	}
}
