package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"admindash/testutil"
)

func setupEnv(t *testing.T) *testutil.Backend {
	t.Helper()
	backend := testutil.NewBackend(t)
	t.Setenv("API_URL", backend.URL())
	t.Setenv("STATE_DB", filepath.Join(t.TempDir(), "state.db"))
	t.Setenv("ENCRYPTION_KEY", "cli-test-encryption-key")
	t.Setenv("LOG_MODE", "production")
	return backend
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	a := &app{}
	defer a.close()
	cmd := newRootCmd(a)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := run(t, args...)
	if err != nil {
		t.Fatalf("adminctl %s failed: %v", strings.Join(args, " "), err)
	}
	return out
}

func login(t *testing.T) {
	t.Helper()
	mustRun(t, "login", "--email", "admin@example.com", "--password", "secret")
}

func TestCommandsRequireLogin(t *testing.T) {
	backend := setupEnv(t)

	testCases := [][]string{
		{"categories", "list"},
		{"products", "list"},
		{"products", "show", "coffee"},
		{"transactions", "list"},
		{"dashboard"},
		{"profile"},
	}

	for _, args := range testCases {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			_, err := run(t, args...)
			if !errors.Is(err, errNotLoggedIn) {
				t.Errorf("Expected errNotLoggedIn, got %v", err)
			}
		})
	}

	if n := len(backend.Requests()); n != 0 {
		t.Errorf("Expected no backend requests, got %d", n)
	}
}

func TestLoginLogout(t *testing.T) {
	setupEnv(t)

	_, err := run(t, "login", "--email", "admin@example.com", "--password", "wrong")
	if err == nil || err.Error() != "No active account found with the given credentials" {
		t.Errorf("Expected backend detail, got %v", err)
	}

	out := mustRun(t, "login", "--email", "admin@example.com", "--password", "secret")
	if !strings.Contains(out, "Logged in as admin@example.com") {
		t.Errorf("Expected login confirmation, got %q", out)
	}

	out = mustRun(t, "products", "list")
	for _, want := range []string{"Iced Tea", "Rp 5.000", "Rp 12.000"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got %q", want, out)
		}
	}

	out = mustRun(t, "logout")
	if !strings.Contains(out, "Logged out successfully.") {
		t.Errorf("Expected logout notice, got %q", out)
	}
	if _, err := run(t, "products", "list"); !errors.Is(err, errNotLoggedIn) {
		t.Errorf("Expected errNotLoggedIn after logout, got %v", err)
	}
}

func TestExpiredSession(t *testing.T) {
	backend := setupEnv(t)
	login(t)

	backend.RevokeTokens()
	_, err := run(t, "dashboard")
	if err == nil || err.Error() != "Session has expired. Please log in again." {
		t.Errorf("Expected session expired error, got %v", err)
	}
	if _, err := run(t, "dashboard"); !errors.Is(err, errNotLoggedIn) {
		t.Errorf("Expected the token to be cleared, got %v", err)
	}
}

func TestCategoryCommands(t *testing.T) {
	setupEnv(t)
	login(t)

	out := mustRun(t, "categories", "add", "--name", "Frozen Food")
	if !strings.Contains(out, "Category created successfully.") {
		t.Errorf("Expected create notice, got %q", out)
	}

	_, err := run(t, "categories", "add", "--name", " ")
	if err == nil || err.Error() != "name: This field may not be blank." {
		t.Errorf("Expected blank name error, got %v", err)
	}

	mustRun(t, "categories", "edit", "snacks", "--name", "Chips")
	out = mustRun(t, "categories", "list", "--search", "chi")
	if !strings.Contains(out, "Chips") || strings.Contains(out, "Drinks") {
		t.Errorf("Expected only Chips, got %q", out)
	}

	out = mustRun(t, "categories", "delete", "frozen-food")
	if !strings.Contains(out, "Category deleted successfully.") {
		t.Errorf("Expected delete notice, got %q", out)
	}

	if _, err := run(t, "categories", "delete", "missing"); err == nil || err.Error() != "Category not found." {
		t.Errorf("Expected not found error, got %v", err)
	}
}

func TestTransactionCommands(t *testing.T) {
	backend := setupEnv(t)
	login(t)

	out := mustRun(t, "transactions", "list", "--status", "pending")
	if !strings.Contains(out, "TRX-00002") || strings.Contains(out, "TRX-00001") {
		t.Errorf("Expected only the pending transaction, got %q", out)
	}

	out = mustRun(t, "transactions", "create", "--status", "completed", "--item", "1:2", "--item", "2:1:10000")
	if !strings.Contains(out, "Transaction created successfully! ID: TRX-") {
		t.Errorf("Expected success notice, got %q", out)
	}
	created := backend.Transactions[len(backend.Transactions)-1]
	if !created.TotalAmount.Equal(decimal.NewFromInt(20000)) {
		t.Errorf("Expected total 20000, got %s", created.TotalAmount)
	}

	if _, err := run(t, "transactions", "create", "--item", "0:1"); err == nil || err.Error() != "All items must have a product selected." {
		t.Errorf("Expected missing product error, got %v", err)
	}
	if _, err := run(t, "transactions", "create", "--type", "refund", "--item", "1:1"); err == nil {
		t.Error("Expected invalid type error, got nil")
	}
}

func TestDashboardAndProfile(t *testing.T) {
	setupEnv(t)
	login(t)

	out := mustRun(t, "dashboard")
	for _, want := range []string{"Products:", "Sale", "unknown", "05/03/2024", "Rp 150"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected dashboard to contain %q, got %q", want, out)
		}
	}

	out = mustRun(t, "profile", "update", "--bio", "Owner")
	if !strings.Contains(out, "Profile updated successfully.") || !strings.Contains(out, "Owner") {
		t.Errorf("Expected updated profile, got %q", out)
	}
	if !strings.Contains(out, "Admin") {
		t.Errorf("Expected first name to be kept, got %q", out)
	}
}

func TestMissingEncryptionKey(t *testing.T) {
	setupEnv(t)
	t.Setenv("ENCRYPTION_KEY", "")

	if _, err := run(t, "logout"); err == nil {
		t.Error("Expected an error without ENCRYPTION_KEY, got nil")
	}
}

func TestParseItems(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		expected int
		wantErr  bool
	}{
		{"quantity only", []string{"1:2"}, 1, false},
		{"with price", []string{"1:2:500", "2:1"}, 2, false},
		{"missing quantity", []string{"1"}, 0, true},
		{"too many parts", []string{"1:2:3:4"}, 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			lines, priced, err := parseItems(tc.args)
			if tc.wantErr {
				if err == nil {
					t.Error("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if len(lines) != tc.expected || len(priced) != tc.expected {
				t.Errorf("Expected %d lines, got %d", tc.expected, len(lines))
			}
		})
	}
}

func TestParseItemsDecimalIDs(t *testing.T) {
	lines, _, err := parseItems([]string{"010:08"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if lines[0].Product != 10 || lines[0].Quantity != 8 {
		t.Errorf("Expected product 10 quantity 8, got %+v", lines[0])
	}
}
