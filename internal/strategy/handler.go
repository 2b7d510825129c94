package strategy

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/mcq-strategy/backend/internal/models"
)

const apiPrefix = "/api/v1"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the strategy endpoints on r under /api/v1.
// They sit on r directly: a PathPrefix subrouter answers 404, not 405, on a
// method mismatch.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc(apiPrefix+"/strategy", h.Evaluate).Methods("POST")
	r.HandleFunc(apiPrefix+"/strategy", h.EvaluateQuery).Methods("GET")
	r.HandleFunc(apiPrefix+"/strategy/limits", h.GetLimits).Methods("GET")
}

// Evaluate handles a JSON body of the form {"k":4,"p":1,"q":-0.5}.
func (h *Handler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var req models.StrategyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.K == nil || req.P == nil || req.Q == nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "k, p, and q are required"})
		return
	}

	h.respond(w, Parameters{K: *req.K, P: *req.P, Q: *req.Q})
}

// EvaluateQuery handles GET /strategy?k=4&p=1&q=-0.5. Missing values fall
// back to the form defaults.
func (h *Handler) EvaluateQuery(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	defaults := DefaultParameters()

	k, err := intQueryParam(query, "k", defaults.K)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "k must be an integer"})
		return
	}
	p, err := floatQueryParam(query, "p", defaults.P)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "p must be a number"})
		return
	}
	q, err := floatQueryParam(query, "q", defaults.Q)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "q must be a number"})
		return
	}

	h.respond(w, Parameters{K: k, P: p, Q: q})
}

func (h *Handler) GetLimits(w http.ResponseWriter, r *http.Request) {
	l := h.service.Limits()
	d := DefaultParameters()
	writeJSON(w, http.StatusOK, models.LimitsResponse{
		MinK:     l.MinK,
		MaxK:     l.MaxK,
		MinP:     l.MinP,
		MaxP:     l.MaxP,
		MinQ:     l.MinQ,
		MaxQ:     l.MaxQ,
		Defaults: models.StrategyParameters{K: d.K, P: d.P, Q: d.Q},
	})
}

func (h *Handler) respond(w http.ResponseWriter, params Parameters) {
	resp, err := h.service.Evaluate(params)
	if err != nil {
		if IsClientError(err) {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
			return
		}
		log.Printf("[handler] Evaluate error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to compute strategy"})
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func intQueryParam(query url.Values, key string, fallback int) (int, error) {
	v := query.Get(key)
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}

func floatQueryParam(query url.Values, key string, fallback float64) (float64, error) {
	v := query.Get(key)
	if v == "" {
		return fallback, nil
	}
	return strconv.ParseFloat(v, 64)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
