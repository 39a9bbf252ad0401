package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/jthmssse/saisonnales-app-v2/internal/service"

	"go.uber.org/zap"
)

// ResidentHandler resident CRUD plus the availability and export endpoints.
type ResidentHandler struct {
	residentService service.ResidentService
	logger          *zap.Logger
}

func NewResidentHandler(residentService service.ResidentService, logger *zap.Logger) *ResidentHandler {
	return &ResidentHandler{residentService: residentService, logger: logger}
}

// Collection handles /api/v1/residents.
func (h *ResidentHandler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.ListResidents(w, r)
	case http.MethodPost:
		h.CreateReservation(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// Item handles /api/v1/residents/{id}.
func (h *ResidentHandler) Item(w http.ResponseWriter, r *http.Request) {
	idStr := strings.TrimPrefix(r.URL.Path, "/api/v1/residents/")
	if idStr == "" || strings.Contains(idStr, "/") {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		writeJSON(w, http.StatusOK, Fail("invalid resident id"))
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.GetResident(w, r, id)
	case http.MethodPut:
		h.UpdateResident(w, r, id)
	case http.MethodDelete:
		h.DeleteResident(w, r, id)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *ResidentHandler) ListResidents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	resp, err := h.residentService.ListResidents(r.Context(), service.ListResidentsRequest{
		Search: q.Get("search"),
		Status: q.Get("status"),
	})
	if err != nil {
		writeJSON(w, http.StatusOK, Fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, Ok(resp))
}

func (h *ResidentHandler) GetResident(w http.ResponseWriter, r *http.Request, id int) {
	resident, err := h.residentService.GetResident(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusOK, Fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, Ok(resident))
}

func (h *ResidentHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req service.CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusOK, Fail("invalid body"))
		return
	}
	resp, err := h.residentService.CreateReservation(r.Context(), req)
	if err != nil {
		writeJSON(w, http.StatusOK, Fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, Ok(resp))
}

func (h *ResidentHandler) UpdateResident(w http.ResponseWriter, r *http.Request, id int) {
	var req service.UpdateResidentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusOK, Fail("invalid body"))
		return
	}
	req.ID = id
	resident, err := h.residentService.UpdateResident(r.Context(), req)
	if err != nil {
		writeJSON(w, http.StatusOK, Fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, Ok(resident))
}

func (h *ResidentHandler) DeleteResident(w http.ResponseWriter, r *http.Request, id int) {
	if err := h.residentService.DeleteResident(r.Context(), id); err != nil {
		writeJSON(w, http.StatusOK, Fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, Ok(map[string]any{"deleted": id}))
}

// AvailableRooms handles GET /api/v1/rooms/available?arrival=&departure=&exclude=.
func (h *ResidentHandler) AvailableRooms(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query()
	rooms, err := h.residentService.AvailableRooms(r.Context(), service.AvailabilityRequest{
		Arrival:           q.Get("arrival"),
		Departure:         q.Get("departure"),
		ExcludeResidentID: parseInt(q.Get("exclude"), 0),
	})
	if err != nil {
		writeJSON(w, http.StatusOK, Fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, Ok(map[string]any{"rooms": rooms}))
}

// Export handles GET /api/v1/residents-export and streams the roster as an
// Excel workbook.
func (h *ResidentHandler) Export(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	resp, err := h.residentService.ListResidents(r.Context(), service.ListResidentsRequest{
		Search: r.URL.Query().Get("search"),
		Status: r.URL.Query().Get("status"),
	})
	if err != nil {
		writeJSON(w, http.StatusOK, Fail(err.Error()))
		return
	}

	data, err := GenerateResidentExport(resp.Items)
	if err != nil {
		h.logger.Error("failed to generate resident export", zap.Error(err))
		writeJSON(w, http.StatusOK, Fail("failed to generate export"))
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="residents.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
