package main

import (
	"bytes"
	"database/sql"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/erazemk/prodajalna/internal/db"
	"github.com/erazemk/prodajalna/internal/model"
	"github.com/erazemk/prodajalna/internal/store"
)

// result is what one execution of the root command left behind.
type result struct {
	stdout string
	stderr string
	app    *app
}

// runFull executes the root command with args and stdin.
func runFull(t *testing.T, stdin string, args ...string) (result, error) {
	t.Helper()

	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	t.Setenv("PRODAJALNA_BCRYPT_COST", "4")

	var out, errOut bytes.Buffer
	a := &app{}
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := execute(cmd, a)
	return result{stdout: out.String(), stderr: errOut.String(), app: a}, err
}

// run executes the root command with args and stdin, returning stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	res, err := runFull(t, stdin, args...)
	return res.stdout, err
}

func seedStore(t *testing.T) (string, model.Product) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "store.json")
	inv := store.New()
	p := model.NewProduct("Widget", "A widget", decimal.RequireFromString("2.50"), 10)
	inv.AddProduct(p)
	if _, err := inv.RecordSale(p.ID, 3); err != nil {
		t.Fatalf("RecordSale: %v", err)
	}
	if err := inv.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	return path, p
}

func TestReportInventory(t *testing.T) {
	path, p := seedStore(t)

	out, err := run(t, "", "report", "inventory", "--store", path)
	if err != nil {
		t.Fatalf("report inventory: %v", err)
	}
	if !strings.Contains(out, "Product: Widget") || !strings.Contains(out, "ID: "+p.ID.String()) {
		t.Errorf("unexpected report:\n%s", out)
	}
	if !strings.Contains(out, "Quantity: 7") {
		t.Errorf("expected stock after sale in report:\n%s", out)
	}
}

func TestReportSales(t *testing.T) {
	path, _ := seedStore(t)

	out, err := run(t, "", "report", "sales", "--store", path)
	if err != nil {
		t.Fatalf("report sales: %v", err)
	}
	if !strings.Contains(out, "Total Sales: $7.50") {
		t.Errorf("unexpected report:\n%s", out)
	}
}

func TestReportUnknownKind(t *testing.T) {
	path, _ := seedStore(t)

	if _, err := run(t, "", "report", "profits", "--store", path); err == nil {
		t.Fatal("expected error for unknown report kind")
	}
}

func TestReportMissingStoreCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	out, err := run(t, "", "report", "purchases", "--store", path)
	if err != nil {
		t.Fatalf("report purchases: %v", err)
	}
	if !strings.Contains(out, "Total Purchases: $0.00") {
		t.Errorf("unexpected report:\n%s", out)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected store file to be created: %v", err)
	}
}

func TestExport(t *testing.T) {
	path, _ := seedStore(t)
	dbPath := filepath.Join(t.TempDir(), "export.sqlite3")

	out, err := run(t, "", "export", dbPath, "--store", path)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(out, "Exported 1 products and 1 transactions") {
		t.Errorf("unexpected output: %s", out)
	}

	database, err := db.Open(dbPath)
	if err != nil {
		t.Fatalf("opening export: %v", err)
	}
	defer database.Close()

	var quantity int
	if err := database.QueryRow(`SELECT quantity FROM products`).Scan(&quantity); err != nil && err != sql.ErrNoRows {
		t.Fatalf("querying export: %v", err)
	}
	if quantity != 7 {
		t.Errorf("expected exported quantity 7, got %d", quantity)
	}
}

func TestInteractiveSeedsAdminAndExits(t *testing.T) {
	dir := t.TempDir()
	storePath := filepath.Join(dir, "store.json")
	usersPath := filepath.Join(dir, "users.json")

	out, err := run(t, "2\n", "--store", storePath, "--users", usersPath)
	if err != nil {
		t.Fatalf("interactive: %v", err)
	}
	if !strings.Contains(out, `Created default admin user "admin"`) {
		t.Errorf("expected admin seeding message, got:\n%s", out)
	}
	if _, err := os.Stat(usersPath); err != nil {
		t.Errorf("expected users file: %v", err)
	}
	if _, err := os.Stat(storePath); err != nil {
		t.Errorf("expected store file: %v", err)
	}
}

func TestInteractiveLoginAddProduct(t *testing.T) {
	dir := t.TempDir()
	storePath := filepath.Join(dir, "store.json")
	usersPath := filepath.Join(dir, "users.json")

	input := strings.Join([]string{
		"1", "admin", "admin123",
		"2", "Gadget", "Shiny", "4.00", "5",
		"6",
		"2",
	}, "\n") + "\n"

	out, err := run(t, input, "--store", storePath, "--users", usersPath)
	if err != nil {
		t.Fatalf("interactive: %v", err)
	}
	if !strings.Contains(out, "Product added successfully") {
		t.Errorf("expected product to be added, got:\n%s", out)
	}

	inv := store.New()
	if err := inv.Load(storePath); err != nil {
		t.Fatalf("Load: %v", err)
	}
	products := inv.Products()
	if len(products) != 1 || products[0].Name != "Gadget" || products[0].Quantity != 5 {
		t.Errorf("unexpected persisted products: %+v", products)
	}
}

func TestFlagOverridesEnv(t *testing.T) {
	envPath, _ := seedStore(t)
	flagPath := filepath.Join(t.TempDir(), "store.json")
	t.Setenv("PRODAJALNA_STORE_FILE", envPath)

	out, err := run(t, "", "report", "inventory", "--store", flagPath)
	if err != nil {
		t.Fatalf("report inventory: %v", err)
	}
	if strings.Contains(out, "Widget") {
		t.Errorf("expected --store to win over environment, got:\n%s", out)
	}
}

func TestInvalidLogLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	if _, err := run(t, "", "report", "inventory", "--store", path, "--log-level", "loud"); err == nil {
		t.Fatal("expected error for invalid log level")
	}
}

func TestInteractiveLogsStayOffStdout(t *testing.T) {
	dir := t.TempDir()
	input := strings.Join([]string{"1", "admin", "wrong", "2"}, "\n") + "\n"

	res, err := runFull(t, input,
		"--store", filepath.Join(dir, "store.json"),
		"--users", filepath.Join(dir, "users.json"))
	if err != nil {
		t.Fatalf("interactive: %v", err)
	}
	if !strings.Contains(res.stdout, "Login failed!") {
		t.Errorf("expected login failure message on stdout:\n%s", res.stdout)
	}
	if strings.Contains(res.stdout, "level=") {
		t.Errorf("log records leaked into the menu output:\n%s", res.stdout)
	}
	if !strings.Contains(res.stderr, "login failed") {
		t.Errorf("expected login failure to be logged to stderr, got %q", res.stderr)
	}
}

func TestLogFileClosedWhenCommandFails(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "prodajalna.log")
	dbPath := filepath.Join(dir, "missing", "export.sqlite3")

	res, err := runFull(t, "", "export", dbPath,
		"--store", filepath.Join(dir, "store.json"),
		"--log", logPath)
	if err == nil {
		t.Fatal("expected export into a missing directory to fail")
	}
	if res.app.closeLog != nil {
		t.Error("expected log file to be closed after a failed command")
	}
	if _, err := os.Stat(logPath); err != nil {
		t.Errorf("expected log file to have been opened: %v", err)
	}
}
