package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/villnoweric/package-delivery-tycoon/core/game"
	"github.com/villnoweric/package-delivery-tycoon/core/journal"
	"github.com/villnoweric/package-delivery-tycoon/core/model"
	"github.com/villnoweric/package-delivery-tycoon/infra/persist"
	"github.com/villnoweric/package-delivery-tycoon/internal/rng"
)

func testServer(t *testing.T) (*httptest.Server, *game.Game) {
	t.Helper()
	towns := []model.Town{
		{Name: "Glencoe", Lat: 44.7691, Lon: -94.1519},
		{Name: "Hutchinson", Lat: 44.8878, Lon: -94.3697},
		{Name: "Arlington", Lat: 44.6083, Lon: -94.0803},
	}
	g := game.New(towns, game.Options{Rand: rng.New(1)})
	store := persist.NewFileStore(filepath.Join(t.TempDir(), "save.json"))
	srv := httptest.NewServer(NewServer(g, store, journal.NopStore{}).Router())
	t.Cleanup(srv.Close)
	return srv, g
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	return resp
}

func TestStateEndpoint(t *testing.T) {
	srv, _ := testServer(t)

	resp, err := http.Get(srv.URL + "/api/state")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var st model.GameState
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&st))
	assert.Equal(t, 1, st.Day)
	assert.InDelta(t, 250000, st.Cash, 0.001)
	assert.Len(t, st.Packages, 5)
}

func TestBuyDepotEndpoint(t *testing.T) {
	srv, _ := testServer(t)

	resp := postJSON(t, srv.URL+"/api/depots", map[string]string{"town": "Glencoe"})
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var d model.Depot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&d))
	assert.Equal(t, "Glencoe", d.Location.Name)
}

func TestBuyDepotUnknownTownIs404(t *testing.T) {
	srv, _ := testServer(t)

	resp := postJSON(t, srv.URL+"/api/depots", map[string]string{"town": "Nowhere"})
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestBuyDepotInsufficientFundsIs409(t *testing.T) {
	srv, _ := testServer(t)

	// 250k buys eight 30k depots; the ninth must fail
	for i := 0; i < 8; i++ {
		resp := postJSON(t, srv.URL+"/api/depots", map[string]string{"town": "Glencoe"})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		_ = resp.Body.Close()
	}
	resp := postJSON(t, srv.URL+"/api/depots", map[string]string{"town": "Glencoe"})
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestBuyVehicleWithoutDepotIs409(t *testing.T) {
	srv, _ := testServer(t)

	resp := postJSON(t, srv.URL+"/api/vehicles", map[string]string{"type": "van"})
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestBuyHubLockedIs409(t *testing.T) {
	srv, _ := testServer(t)

	resp := postJSON(t, srv.URL+"/api/hubs", map[string]string{"town": "Glencoe"})
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestLoanEndpoints(t *testing.T) {
	srv, _ := testServer(t)

	resp := postJSON(t, srv.URL+"/api/loans", map[string]float64{"amount": -5})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()

	resp = postJSON(t, srv.URL+"/api/loans", map[string]float64{"amount": 1000})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	resp = postJSON(t, srv.URL+"/api/loans/repay", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out map[string]float64
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.InDelta(t, 51000, out["repaid"], 0.001)
	_ = resp.Body.Close()

	// nothing left to repay
	resp = postJSON(t, srv.URL+"/api/loans/repay", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestAdvanceDayEndpoint(t *testing.T) {
	srv, _ := testServer(t)

	resp := postJSON(t, srv.URL+"/api/day/advance", nil)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rep game.DayReport
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rep))
	assert.Equal(t, 2, rep.Day)
	assert.GreaterOrEqual(t, rep.Generated, 3)
}

func TestDispatchValidation(t *testing.T) {
	srv, _ := testServer(t)

	resp := postJSON(t, srv.URL+"/api/drivers/DRV-x/dispatch", map[string]any{"towns": []string{}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()

	resp = postJSON(t, srv.URL+"/api/drivers/DRV-x/dispatch", map[string]any{"towns": []string{"Glencoe"}})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestRouteLifecycleEndpoints(t *testing.T) {
	srv, _ := testServer(t)

	resp := postJSON(t, srv.URL+"/api/depots", map[string]string{"town": "Glencoe"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var depot model.Depot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&depot))
	_ = resp.Body.Close()

	base := srv.URL + "/api/depots/" + depot.ID + "/routes"
	resp = postJSON(t, base, map[string]string{"name": "Morning Run"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var route model.ConfiguredRoute
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&route))
	_ = resp.Body.Close()

	resp = postJSON(t, base+"/"+route.ID+"/towns", map[string]string{"town": "Hutchinson"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&route))
	assert.Equal(t, []string{"Hutchinson"}, route.Towns)
	_ = resp.Body.Close()

	req, err := http.NewRequest(http.MethodDelete, base+"/"+route.ID, nil)
	require.NoError(t, err)
	del, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, del.StatusCode)
	_ = del.Body.Close()
}

func TestSaveLoadEndpoints(t *testing.T) {
	srv, _ := testServer(t)

	// nothing saved yet
	resp := postJSON(t, srv.URL+"/api/load", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()

	resp = postJSON(t, srv.URL+"/api/save", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	resp = postJSON(t, srv.URL+"/api/load", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var st model.GameState
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&st))
	assert.Equal(t, 1, st.Day)
	_ = resp.Body.Close()
}

func TestNearestDepotEndpoint(t *testing.T) {
	srv, _ := testServer(t)

	resp, err := http.Get(srv.URL + "/api/depots/nearest?lat=44.7&lon=-94.1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()

	created := postJSON(t, srv.URL+"/api/depots", map[string]string{"town": "Glencoe"})
	require.Equal(t, http.StatusCreated, created.StatusCode)
	_ = created.Body.Close()

	resp, err = http.Get(srv.URL + "/api/depots/nearest?lat=44.7&lon=-94.1")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var d model.Depot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&d))
	assert.Equal(t, "Glencoe", d.Location.Name)
	_ = resp.Body.Close()

	bad, err := http.Get(srv.URL + "/api/depots/nearest?lat=abc")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, bad.StatusCode)
	_ = bad.Body.Close()
}
