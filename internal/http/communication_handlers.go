package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/jthmssse/saisonnales-app-v2/internal/domain"
	"github.com/jthmssse/saisonnales-app-v2/internal/repository"

	"go.uber.org/zap"
)

// CommunicationHandler template catalog CRUD. The catalog is small and has no
// business rules beyond id assignment, so the handler works on the store
// directly.
type CommunicationHandler struct {
	store  *repository.CommunicationStore
	logger *zap.Logger
}

func NewCommunicationHandler(store *repository.CommunicationStore, logger *zap.Logger) *CommunicationHandler {
	return &CommunicationHandler{store: store, logger: logger}
}

// Collection handles /api/v1/communications.
func (h *CommunicationHandler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, Ok(h.store.Snapshot()))
	case http.MethodPost:
		h.create(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// Item handles /api/v1/communications/{id}.
func (h *CommunicationHandler) Item(w http.ResponseWriter, r *http.Request) {
	idStr := strings.TrimPrefix(r.URL.Path, "/api/v1/communications/")
	if idStr == "" || strings.Contains(idStr, "/") {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		writeJSON(w, http.StatusOK, Fail("invalid communication id"))
		return
	}

	switch r.Method {
	case http.MethodPut:
		h.update(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *CommunicationHandler) create(w http.ResponseWriter, r *http.Request) {
	var c domain.Communication
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeJSON(w, http.StatusOK, Fail("invalid body"))
		return
	}
	if c.Type == "" || c.Subject == "" {
		writeJSON(w, http.StatusOK, Fail("type and subject are required"))
		return
	}

	comms := h.store.Snapshot()
	c.ID = domain.NextCommunicationID(comms)
	h.store.Replace(r.Context(), append(comms, c))
	h.logger.Info("communication template created", zap.Int("id", c.ID), zap.String("type", c.Type))
	writeJSON(w, http.StatusOK, Ok(c))
}

func (h *CommunicationHandler) update(w http.ResponseWriter, r *http.Request, id int) {
	var c domain.Communication
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeJSON(w, http.StatusOK, Fail("invalid body"))
		return
	}

	comms := h.store.Snapshot()
	for i := range comms {
		if comms[i].ID == id {
			c.ID = id
			comms[i] = c
			h.store.Replace(r.Context(), comms)
			writeJSON(w, http.StatusOK, Ok(c))
			return
		}
	}
	writeJSON(w, http.StatusOK, Fail("communication not found"))
}

func (h *CommunicationHandler) delete(w http.ResponseWriter, r *http.Request, id int) {
	comms := h.store.Snapshot()
	kept := make([]domain.Communication, 0, len(comms))
	found := false
	for _, c := range comms {
		if c.ID == id {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		writeJSON(w, http.StatusOK, Fail("communication not found"))
		return
	}
	h.store.Replace(r.Context(), kept)
	writeJSON(w, http.StatusOK, Ok(map[string]any{"deleted": id}))
}
