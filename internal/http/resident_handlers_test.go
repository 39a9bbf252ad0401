package httpapi_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jthmssse/saisonnales-app-v2/internal/config"
	"github.com/jthmssse/saisonnales-app-v2/internal/domain"
	httpapi "github.com/jthmssse/saisonnales-app-v2/internal/http"
	"github.com/jthmssse/saisonnales-app-v2/internal/repository"
	"github.com/jthmssse/saisonnales-app-v2/internal/service"
	"github.com/jthmssse/saisonnales-app-v2/internal/store"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeKV struct {
	data map[string]string
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: map[string]string{}}
}

func (f *fakeKV) Get(ctx context.Context, key string) (string, error) {
	v, ok := f.data[key]
	if !ok {
		return "", store.ErrMiss
	}
	return v, nil
}

func (f *fakeKV) Set(ctx context.Context, key string, value string, _ time.Duration) error {
	f.data[key] = value
	return nil
}

func newTestRouter(t *testing.T, residents []domain.Resident) *httpapi.Router {
	t.Helper()
	logger := zap.NewNop()
	kv := newFakeKV()

	rs := repository.NewResidentStore(kv, logger)
	rs.Load(context.Background())
	if residents != nil {
		rs.Replace(context.Background(), residents)
	}
	cs := repository.NewCommunicationStore(kv, logger)
	cs.Load(context.Background())

	facility := config.FacilityConfig{TotalRooms: 24, SeasonStart: "2025-07-01", PeakMonth: "2025-08", ForecastDays: 90}
	residentSvc := service.NewResidentService(rs, nil, facility.TotalRooms, logger)
	dashboardSvc := service.NewDashboardService(rs, facility, logger)

	router := httpapi.NewRouter(logger)
	router.RegisterRoutes(
		httpapi.NewResidentHandler(residentSvc, logger),
		httpapi.NewDashboardHandler(dashboardSvc, logger),
		httpapi.NewCommunicationHandler(cs, logger),
	)
	return router
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) (int, json.RawMessage) {
	t.Helper()
	var env struct {
		Code    int             `json:"code"`
		Message string          `json:"message"`
		Result  json.RawMessage `json:"result"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env.Code, env.Result
}

func TestListResidents_ReturnsSeedData(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/residents", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	code, result := decodeEnvelope(t, rec)
	require.Equal(t, httpapi.ResultSuccess, code)

	var resp struct {
		Items []domain.Resident `json:"items"`
		Total int               `json:"total"`
	}
	require.NoError(t, json.Unmarshal(result, &resp))
	require.Equal(t, 24, resp.Total)
	require.Len(t, resp.Items, 24)
}

func TestListResidents_Search(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/residents?search=bonavita", nil)
	code, result := decodeEnvelope(t, rec)
	require.Equal(t, httpapi.ResultSuccess, code)
	require.True(t, strings.Contains(string(result), "BONAVITA Joseph"))

	var resp struct {
		Items []domain.Resident `json:"items"`
	}
	require.NoError(t, json.Unmarshal(result, &resp))
	require.Len(t, resp.Items, 1)
}

func TestCreateReservation_EndToEnd(t *testing.T) {
	router := newTestRouter(t, []domain.Resident{
		{ID: 1, Name: "Existing", Room: "5", Arrival: "2025-07-10", Departure: "2025-07-20"},
	})

	rec := doJSON(t, router, http.MethodPost, "/api/v1/residents", map[string]any{
		"name":      "NOUVEAU Marc",
		"room":      "6",
		"gir":       "GIR 4",
		"arrival":   "2025-07-12",
		"departure": "2025-07-25",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	code, result := decodeEnvelope(t, rec)
	require.Equal(t, httpapi.ResultSuccess, code)
	require.True(t, strings.Contains(string(result), `"id":2`))
}

func TestCreateReservation_ConflictReturnsError(t *testing.T) {
	router := newTestRouter(t, []domain.Resident{
		{ID: 1, Name: "Existing", Room: "5", Arrival: "2025-07-10", Departure: "2025-07-20"},
	})

	rec := doJSON(t, router, http.MethodPost, "/api/v1/residents", map[string]any{
		"name":      "X",
		"room":      "5",
		"gir":       "GIR 3",
		"arrival":   "2025-07-15",
		"departure": "2025-07-18",
	})
	code, _ := decodeEnvelope(t, rec)
	require.Equal(t, httpapi.ResultError, code)
	require.True(t, strings.Contains(rec.Body.String(), "not available"))
}

func TestCreateReservation_InvalidBody(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/residents", strings.NewReader("{broken"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	code, _ := decodeEnvelope(t, rec)
	require.Equal(t, httpapi.ResultError, code)
}

func TestGetUpdateDeleteResident(t *testing.T) {
	router := newTestRouter(t, []domain.Resident{
		{ID: 7, Name: "MARTIN Paul", Room: "3", GIR: "GIR 4", Arrival: "2025-07-01", Departure: "2025-08-01"},
	})

	rec := doJSON(t, router, http.MethodGet, "/api/v1/residents/7", nil)
	code, result := decodeEnvelope(t, rec)
	require.Equal(t, httpapi.ResultSuccess, code)
	require.True(t, strings.Contains(string(result), "MARTIN Paul"))

	rec = doJSON(t, router, http.MethodPut, "/api/v1/residents/7", map[string]any{
		"phone": "0611223344",
	})
	code, result = decodeEnvelope(t, rec)
	require.Equal(t, httpapi.ResultSuccess, code)
	require.True(t, strings.Contains(string(result), "0611223344"))
	require.True(t, strings.Contains(string(result), "MARTIN Paul"))

	rec = doJSON(t, router, http.MethodDelete, "/api/v1/residents/7", nil)
	code, _ = decodeEnvelope(t, rec)
	require.Equal(t, httpapi.ResultSuccess, code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/residents/7", nil)
	code, _ = decodeEnvelope(t, rec)
	require.Equal(t, httpapi.ResultError, code)
}

func TestResidentItem_BadID(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/residents/abc", nil)
	code, _ := decodeEnvelope(t, rec)
	require.Equal(t, httpapi.ResultError, code)
}

func TestAvailableRooms_Endpoint(t *testing.T) {
	router := newTestRouter(t, []domain.Resident{
		{ID: 1, Room: "5", Arrival: "2025-07-10", Departure: "2025-07-20"},
	})

	rec := doJSON(t, router, http.MethodGet, "/api/v1/rooms/available?arrival=2025-07-15&departure=2025-07-18", nil)
	code, result := decodeEnvelope(t, rec)
	require.Equal(t, httpapi.ResultSuccess, code)

	var resp struct {
		Rooms []string `json:"rooms"`
	}
	require.NoError(t, json.Unmarshal(result, &resp))
	require.Len(t, resp.Rooms, 23)
	require.NotContains(t, resp.Rooms, "5")
}

func TestExport_ReturnsWorkbook(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/residents-export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		rec.Header().Get("Content-Type"))
	// xlsx files are zip archives.
	require.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("PK")))
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doJSON(t, router, http.MethodDelete, "/api/v1/residents", nil)
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRouter_SetsRequestID(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doJSON(t, router, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}
