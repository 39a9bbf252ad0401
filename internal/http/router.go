package httpapi

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Router wraps the standard library http.ServeMux; the API surface is small
// enough that a third-party router buys nothing.
type Router struct {
	mux    *http.ServeMux
	logger *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		logger: logger,
	}
}

func (r *Router) Handle(pattern string, h http.HandlerFunc) {
	r.mux.HandleFunc(pattern, h)
}

// HandleHandler supports the http.Handler interface (pprof etc.).
func (r *Router) HandleHandler(pattern string, h http.Handler) {
	r.mux.Handle(pattern, h)
}

// ServeHTTP tags each request with a request id and logs it on completion.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	requestID := req.Header.Get("X-Request-Id")
	if requestID == "" {
		requestID = uuid.NewString()
	}
	w.Header().Set("X-Request-Id", requestID)

	start := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	r.mux.ServeHTTP(rec, req)

	r.logger.Debug("http request",
		zap.String("request_id", requestID),
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Int("status", rec.status),
		zap.Duration("duration", time.Since(start)),
	)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// RegisterRoutes wires every API route onto the mux.
func (r *Router) RegisterRoutes(residents *ResidentHandler, dashboard *DashboardHandler, comms *CommunicationHandler) {
	r.Handle("/api/v1/residents", residents.Collection)
	r.Handle("/api/v1/residents/", residents.Item)
	r.Handle("/api/v1/residents-export", residents.Export)
	r.Handle("/api/v1/rooms/available", residents.AvailableRooms)

	r.Handle("/api/v1/dashboard/occupancy", dashboard.Occupancy)
	r.Handle("/api/v1/dashboard/stats", dashboard.Stats)
	r.Handle("/api/v1/dashboard/forecast", dashboard.Forecast)
	r.Handle("/api/v1/dashboard/planning", dashboard.Planning)

	r.Handle("/api/v1/communications", comms.Collection)
	r.Handle("/api/v1/communications/", comms.Item)

	r.Handle("/healthz", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, Ok(map[string]string{"status": "ok"}))
	})
}
