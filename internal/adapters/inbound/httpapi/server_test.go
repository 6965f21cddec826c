package httpapi_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ece-platform/appforge/internal/adapters/inbound/httpapi"
	"github.com/ece-platform/appforge/internal/application"
	"github.com/ece-platform/appforge/internal/domain"
	"github.com/ece-platform/appforge/internal/domain/genapp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	snap *domain.Snapshot
	err  error
}

func (f *stubFetcher) Fetch(_ context.Context, _ domain.CodebaseRef) (*domain.Snapshot, error) {
	return f.snap, f.err
}

type memStores struct {
	users  map[string]*domain.User
	orders map[string]*domain.Order
	apps   map[string]*domain.GeneratedApp
}

func (s *memStores) FindByWallet(wallet string) (*domain.User, error) {
	if u, ok := s.users[wallet]; ok {
		return u, nil
	}
	return nil, fmt.Errorf("no user with wallet %s", wallet)
}

func (s *memStores) FindOrder(id string) (*domain.Order, error) {
	if o, ok := s.orders[id]; ok {
		return o, nil
	}
	return nil, fmt.Errorf("order %s not found", id)
}

func (s *memStores) MarkInProgress(id, generationID string) error {
	o, err := s.FindOrder(id)
	if err != nil {
		return err
	}
	o.Status = domain.OrderStatusInProgress
	o.GenerationID = generationID
	return nil
}

func (s *memStores) SaveApp(app *domain.GeneratedApp) error {
	s.apps[app.ID] = app
	return nil
}

func (s *memStores) LoadApp(id string) (*domain.GeneratedApp, error) {
	if a, ok := s.apps[id]; ok {
		return a, nil
	}
	return nil, fmt.Errorf("app %s not found", id)
}

func (s *memStores) ListApps() ([]*domain.GeneratedApp, error) {
	var out []*domain.GeneratedApp
	for _, a := range s.apps {
		out = append(out, a)
	}
	return out, nil
}

func viableSnapshot() *domain.Snapshot {
	return &domain.Snapshot{
		Files: []domain.SourceFile{
			{Path: "package.json", Content: `{"name":"shop"}`, Size: 16},
			{Path: "README.md", Content: "# Shop", Size: 6},
			{Path: "src/App.tsx", Content: "export default function App() {}", Size: 32},
			{Path: "src/App.test.tsx", Content: "test('renders', () => {})", Size: 25},
		},
		Manifest: &domain.PackageManifest{
			Dependencies: map[string]string{"react": "^18.2.0", "typescript": "^5.0.0"},
		},
		Structure: []string{"package.json", "README.md", "tsconfig.json", "src/App.tsx", "src/App.test.tsx"},
	}
}

func newTestServer(fetcher domain.CodebaseFetcher) *httpapi.Server {
	stores := &memStores{
		users:  map[string]*domain.User{"0xabc": {ID: "user-1", WalletAddress: "0xabc", ECEBalance: 500}},
		orders: map[string]*domain.Order{"order-1": {ID: "order-1", UserID: "user-1", EstimatedCost: 100}},
		apps:   map[string]*domain.GeneratedApp{},
	}
	schema := domain.DefaultBrandingSchema()
	viability := application.NewViabilityService(fetcher, nil)
	generation := application.NewGenerationService(
		stores, stores, stores, viability,
		genapp.NewSynthesizer(schema), nil,
	)
	compliance := application.NewComplianceService(schema, nil)
	return httpapi.New(viability, generation, compliance, stores, nil)
}

func doJSON(t *testing.T, server *httpapi.Server, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	return w, parsed
}

func TestHealth(t *testing.T) {
	server := newTestServer(&stubFetcher{})
	w, body := doJSON(t, server, http.MethodGet, "/api/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", body["status"])
}

func TestEnhancePreCheck_RequiresURL(t *testing.T) {
	server := newTestServer(&stubFetcher{})
	w, body := doJSON(t, server, http.MethodGet, "/api/app-generator/enhance", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
}

func TestEnhancePreCheck_ReturnsViabilityAndRecommendations(t *testing.T) {
	server := newTestServer(&stubFetcher{snap: viableSnapshot()})
	w, body := doJSON(t, server, http.MethodGet, "/api/app-generator/enhance?url=https://github.com/acme/shop", nil)

	require.Equal(t, http.StatusOK, w.Code)
	viability := body["viability"].(map[string]any)
	assert.Equal(t, true, viability["isViable"])

	recs := body["recommendations"].(map[string]any)
	immediate := recs["immediate"].([]any)
	assert.LessOrEqual(t, len(immediate), 5, "at most 3 security + 2 structure items")
}

func enhanceBody() map[string]any {
	return map[string]any{
		"orderId":       "order-1",
		"walletAddress": "0xabc",
		"projectDetails": map[string]any{
			"title":             "Legacy Shop",
			"complexity":        1.0,
			"targetCodebaseUrl": "https://github.com/acme/shop",
		},
	}
}

func TestEnhance_MissingFields(t *testing.T) {
	server := newTestServer(&stubFetcher{snap: viableSnapshot()})
	w, body := doJSON(t, server, http.MethodPost, "/api/app-generator/enhance", map[string]any{
		"projectDetails": map[string]any{"title": "x"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
	assert.Contains(t, body["error"], "orderId")
	assert.Contains(t, body["error"], "walletAddress")
	assert.Contains(t, body["error"], "targetCodebaseUrl")
}

func TestEnhance_NonViableCodebase(t *testing.T) {
	snap := viableSnapshot()
	snap.Files = append(snap.Files, domain.SourceFile{
		Path:    "src/db.ts",
		Content: `const q = "SELECT * FROM t WHERE id=" + id; const secret = "x";`,
		Size:    60,
	})
	server := newTestServer(&stubFetcher{snap: snap})

	w, body := doJSON(t, server, http.MethodPost, "/api/app-generator/enhance", enhanceBody())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "CODEBASE_NOT_VIABLE", body["code"])
	assert.NotNil(t, body["viability"], "analysis returned for remediation")
	assert.NotNil(t, body["recommendations"])
}

func TestEnhance_Success(t *testing.T) {
	server := newTestServer(&stubFetcher{snap: viableSnapshot()})
	w, body := doJSON(t, server, http.MethodPost, "/api/app-generator/enhance", enhanceBody())

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(3), body["revisionTokens"])

	app := body["generatedApp"].(map[string]any)
	card := app["cardData"].(map[string]any)
	assert.Equal(t, "ENHANCED", card["rarity"])
}

func TestGenerate_Success(t *testing.T) {
	server := newTestServer(&stubFetcher{})
	w, body := doJSON(t, server, http.MethodPost, "/api/app-generator/generate", map[string]any{
		"orderId":       "order-1",
		"walletAddress": "0xabc",
		"projectDetails": map[string]any{
			"title":       "Metrics Hub",
			"projectType": "saas dashboard",
			"complexity":  0.8,
			"features":    []string{"analytics"},
		},
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, true, body["success"])
}

func TestGenerate_FailureIsGenerationFailed(t *testing.T) {
	server := newTestServer(&stubFetcher{})
	w, body := doJSON(t, server, http.MethodPost, "/api/app-generator/generate", map[string]any{
		"orderId":        "order-1",
		"walletAddress":  "0xunknown",
		"projectDetails": map[string]any{"title": "x"},
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "GENERATION_FAILED", body["code"])
}

func TestGetApp_NotFound(t *testing.T) {
	server := newTestServer(&stubFetcher{})
	w, _ := doJSON(t, server, http.MethodGet, "/api/apps/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestValidateBranding(t *testing.T) {
	server := newTestServer(&stubFetcher{})
	w, body := doJSON(t, server, http.MethodPost, "/api/branding/validate", map[string]any{
		"code": "export default function App() {}",
	})

	require.Equal(t, http.StatusOK, w.Code)
	report := body["report"].(map[string]any)
	assert.Equal(t, false, report["isCompliant"])
}
