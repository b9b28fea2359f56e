package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"leetcode_proxy/internal/common"
	"leetcode_proxy/internal/domain/model"
)

type Prober interface {
	Probe(ctx context.Context) model.DiagnosticReport
}

// SystemHandler serves the liveness, greeting and diagnostic endpoints.
type SystemHandler struct {
	diagnosticService Prober
}

func NewSystemHandler(ds Prober) *SystemHandler {
	return &SystemHandler{diagnosticService: ds}
}

func (h *SystemHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.root)
	r.Get("/test", h.test)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
}

// RegisterAPIRoutes mounts the routes that live under /api.
func (h *SystemHandler) RegisterAPIRoutes(r chi.Router) {
	r.Get("/hello", h.hello) // GET /api/hello
}

func (h *SystemHandler) root(w http.ResponseWriter, r *http.Request) {
	common.RespondWithJSON(w, http.StatusOK, model.MessageResponse{Message: "Hello from the LeetCode profile backend!"})
}

func (h *SystemHandler) hello(w http.ResponseWriter, r *http.Request) {
	common.RespondWithJSON(w, http.StatusOK, model.MessageResponse{Message: "Hello from the backend API!"})
}

// test always answers 200; the report carries any database trouble.
func (h *SystemHandler) test(w http.ResponseWriter, r *http.Request) {
	common.RespondWithJSON(w, http.StatusOK, h.diagnosticService.Probe(r.Context()))
}
