package httpapi_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/jthmssse/saisonnales-app-v2/internal/domain"
	httpapi "github.com/jthmssse/saisonnales-app-v2/internal/http"

	"github.com/stretchr/testify/require"
)

func TestOccupancy_Endpoint(t *testing.T) {
	router := newTestRouter(t, []domain.Resident{})

	rec := doJSON(t, router, http.MethodGet, "/api/v1/dashboard/occupancy", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	code, result := decodeEnvelope(t, rec)
	require.Equal(t, httpapi.ResultSuccess, code)

	var resp struct {
		Period string `json:"period"`
		Rate   int    `json:"rate"`
		Alert  struct {
			Triggered bool `json:"triggered"`
			Rate      int  `json:"rate"`
		} `json:"alert"`
	}
	require.NoError(t, json.Unmarshal(result, &resp))
	require.Equal(t, "daily", resp.Period)
	require.Equal(t, 0, resp.Rate)
	// Empty facility in the watched month always trips the alert.
	require.True(t, resp.Alert.Triggered)
}

func TestOccupancy_InvalidPeriod(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/dashboard/occupancy?period=hourly", nil)
	code, _ := decodeEnvelope(t, rec)
	require.Equal(t, httpapi.ResultError, code)
}

func TestStats_Endpoint(t *testing.T) {
	router := newTestRouter(t, []domain.Resident{
		{ID: 1, Room: "1", GIR: "GIR 2", Arrival: "2025-07-01", Departure: "2025-07-31"},
		{ID: 2, Room: "2", GIR: "GIR 4", Arrival: "2025-07-01", Departure: "2025-07-31"},
	})

	rec := doJSON(t, router, http.MethodGet, "/api/v1/dashboard/stats", nil)
	code, result := decodeEnvelope(t, rec)
	require.Equal(t, httpapi.ResultSuccess, code)

	var resp struct {
		AverageGIR   float64 `json:"averageGir"`
		AverageGIROK bool    `json:"averageGirOk"`
		TotalRooms   int     `json:"totalRooms"`
	}
	require.NoError(t, json.Unmarshal(result, &resp))
	require.True(t, resp.AverageGIROK)
	require.Equal(t, 3.0, resp.AverageGIR)
	require.Equal(t, 24, resp.TotalRooms)
}

func TestForecast_Endpoint(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/dashboard/forecast", nil)
	code, result := decodeEnvelope(t, rec)
	require.Equal(t, httpapi.ResultSuccess, code)

	var resp struct {
		Points []struct {
			Occupancy int `json:"occupancy"`
		} `json:"points"`
	}
	require.NoError(t, json.Unmarshal(result, &resp))
	require.Len(t, resp.Points, 90)
}

func TestPlanning_Endpoint(t *testing.T) {
	router := newTestRouter(t, []domain.Resident{
		{ID: 1, Name: "MARTIN Paul", Room: "3", Arrival: "2025-07-10", Departure: "2025-07-20"},
	})

	rec := doJSON(t, router, http.MethodGet, "/api/v1/dashboard/planning?view=month&anchor=2025-07-01", nil)
	code, result := decodeEnvelope(t, rec)
	require.Equal(t, httpapi.ResultSuccess, code)

	var resp struct {
		View  string   `json:"view"`
		Title string   `json:"title"`
		Days  []string `json:"days"`
		Rooms []struct {
			Number int `json:"number"`
			Stays  []struct {
				ResidentID int `json:"residentId"`
			} `json:"stays"`
		} `json:"rooms"`
	}
	require.NoError(t, json.Unmarshal(result, &resp))
	require.Equal(t, "Juillet 2025", resp.Title)
	require.Len(t, resp.Days, 31)
	require.Len(t, resp.Rooms, 24)
	require.Len(t, resp.Rooms[2].Stays, 1)
	require.Equal(t, 1, resp.Rooms[2].Stays[0].ResidentID)
}

func TestPlanning_InvalidView(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/dashboard/planning?view=decade", nil)
	code, _ := decodeEnvelope(t, rec)
	require.Equal(t, httpapi.ResultError, code)
	require.True(t, strings.Contains(rec.Body.String(), "invalid view"))
}

func TestCommunications_CRUD(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/communications", nil)
	code, result := decodeEnvelope(t, rec)
	require.Equal(t, httpapi.ResultSuccess, code)

	var comms []domain.Communication
	require.NoError(t, json.Unmarshal(result, &comms))
	require.Len(t, comms, 4)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/communications", map[string]any{
		"type":    "Relance",
		"status":  "J+3",
		"subject": "Relance devis",
		"active":  true,
	})
	code, result = decodeEnvelope(t, rec)
	require.Equal(t, httpapi.ResultSuccess, code)

	var created domain.Communication
	require.NoError(t, json.Unmarshal(result, &created))
	require.Equal(t, 5, created.ID)

	rec = doJSON(t, router, http.MethodPut, "/api/v1/communications/5", map[string]any{
		"type":    "Relance",
		"status":  "J+7",
		"subject": "Relance devis",
		"active":  false,
	})
	code, _ = decodeEnvelope(t, rec)
	require.Equal(t, httpapi.ResultSuccess, code)

	rec = doJSON(t, router, http.MethodDelete, "/api/v1/communications/5", nil)
	code, _ = decodeEnvelope(t, rec)
	require.Equal(t, httpapi.ResultSuccess, code)

	rec = doJSON(t, router, http.MethodDelete, "/api/v1/communications/5", nil)
	code, _ = decodeEnvelope(t, rec)
	require.Equal(t, httpapi.ResultError, code)
}
