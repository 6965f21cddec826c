package e2e_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/ece-platform/appforge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build binary before running tests
	dir, err := os.MkdirTemp("", "appforge-e2e")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	binaryPath = filepath.Join(dir, "appforge")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/appforge")
	if out, err := cmd.CombinedOutput(); err != nil {
		panic("build failed: " + string(out))
	}

	os.Exit(m.Run())
}

func fixturePath(name string) string {
	abs, _ := filepath.Abs(filepath.Join("../../testdata/js-projects", name))
	return abs
}

// run returns stdout only; logs go to stderr and would corrupt JSON output.
func run(t *testing.T, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	out, err := cmd.Output()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
	}
	return string(out), exitCode
}

// --- Analyze Tests ---

func TestE2E_Analyze(t *testing.T) {
	defer os.RemoveAll(".appforge")
	out, code := run(t, "analyze", fixturePath("healthy"))
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "VIABLE")
	assert.Contains(t, out, "98")
}

func TestE2E_AnalyzeJSON(t *testing.T) {
	defer os.RemoveAll(".appforge")
	out, code := run(t, "analyze", fixturePath("healthy"), "--json")
	assert.Equal(t, 0, code)

	var result domain.ViabilityResult
	err := json.Unmarshal([]byte(out), &result)
	require.NoError(t, err)
	assert.True(t, result.IsViable)
	assert.Equal(t, 98, result.Score)
	require.NotNil(t, result.EnhancementPlan)
	assert.NotEmpty(t, result.EnhancementPlan.Phases)
}

func TestE2E_AnalyzeCI(t *testing.T) {
	defer os.RemoveAll(".appforge")
	_, code := run(t, "analyze", fixturePath("healthy"), "--ci", "--min", "100")
	assert.Equal(t, 1, code, "should exit 1 when below minimum")
}

func TestE2E_AnalyzeOrdering(t *testing.T) {
	defer os.RemoveAll(".appforge")
	healthyOut, _ := run(t, "analyze", fixturePath("healthy"), "--json")
	legacyOut, _ := run(t, "analyze", fixturePath("legacy"), "--json")

	var healthy, legacy domain.ViabilityResult
	require.NoError(t, json.Unmarshal([]byte(healthyOut), &healthy))
	require.NoError(t, json.Unmarshal([]byte(legacyOut), &legacy))

	assert.Greater(t, healthy.Score, legacy.Score, "healthy > legacy")
	assert.True(t, healthy.IsViable)
	assert.False(t, legacy.IsViable, "security gate rejects the legacy fixture")
	assert.Nil(t, legacy.EnhancementPlan, "no plan for non-viable codebases")
}

// --- Generate Tests ---

func TestE2E_Generate(t *testing.T) {
	dir := t.TempDir()
	users, _ := json.Marshal([]domain.User{{ID: "user-1", WalletAddress: "0xabc", ECEBalance: 500}})
	orders, _ := json.Marshal([]domain.Order{{ID: "order-1", UserID: "user-1", EstimatedCost: 100, Status: domain.OrderStatusPending}})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "users.json"), users, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "orders.json"), orders, 0644))
	configPath := filepath.Join(dir, "appforge.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("data_dir: \""+dir+"\"\n"), 0644))

	out, code := run(t, "generate",
		"--config", configPath,
		"--order", "order-1",
		"--wallet", "0xabc",
		"--title", "Metrics Hub",
		"--type", "saas dashboard",
		"--json",
	)
	assert.Equal(t, 0, code)

	var result domain.GenerationResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.True(t, result.Success)
	require.NotNil(t, result.GeneratedApp)
	assert.NotEmpty(t, result.GeneratedApp.SourceCode.Frontend)
	assert.Contains(t, result.GeneratedApp.PreviewURL, "preview-")
}

// --- Version Test ---

func TestE2E_Version(t *testing.T) {
	out, code := run(t, "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "appforge")
}
