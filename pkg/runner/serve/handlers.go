package serve

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"tableflip.dev/actd/pkg/app"
	"tableflip.dev/actd/pkg/category"
	"tableflip.dev/actd/pkg/entry"
)

// Handler exposes the app service as a JSON API.
type Handler struct {
	app *app.Service
}

// NewHandler wraps a.
func NewHandler(a *app.Service) *Handler {
	return &Handler{app: a}
}

// Router returns a router with every route mounted under /api/v1.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	h.Register(r.PathPrefix("/api/v1").Subrouter())
	return r
}

// Register mounts the API routes on r.
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)

	r.HandleFunc("/mood", h.ListMood).Methods(http.MethodGet)
	r.HandleFunc("/mood", h.LogMood).Methods(http.MethodPost)

	r.HandleFunc("/categories", h.ListCategories).Methods(http.MethodGet)

	r.HandleFunc("/values", h.ListValues).Methods(http.MethodGet)
	r.HandleFunc("/values", h.AddValue).Methods(http.MethodPost)
	r.HandleFunc("/values/{id}", h.GetValue).Methods(http.MethodGet)
	r.HandleFunc("/values/{id}", h.DeleteValue).Methods(http.MethodDelete)
	r.HandleFunc("/values/{id}/score", h.UpdateScore).Methods(http.MethodPut)
	r.HandleFunc("/values/{id}/history", h.History).Methods(http.MethodGet)

	r.HandleFunc("/actions", h.ListActions).Methods(http.MethodGet)
	r.HandleFunc("/actions", h.AddAction).Methods(http.MethodPost)
	r.HandleFunc("/actions/{id}/toggle", h.ToggleAction).Methods(http.MethodPost)

	r.HandleFunc("/report", h.Report).Methods(http.MethodGet)
}

// Health GET /api/v1/healthz
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeData(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Report GET /api/v1/report
func (h *Handler) Report(w http.ResponseWriter, _ *http.Request) {
	writeData(w, http.StatusOK, h.app.Report())
}

// ListMood GET /api/v1/mood
func (h *Handler) ListMood(w http.ResponseWriter, _ *http.Request) {
	entries := h.app.Mood()
	writeList(w, entries, len(entries))
}

// LogMood POST /api/v1/mood
func (h *Handler) LogMood(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Score *int `json:"score"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Score == nil {
		writeError(w, fmt.Errorf("%w: score is required", app.ErrInvalidInput))
		return
	}
	e, err := h.app.AddMood(*req.Score)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, e)
}

// ListCategories GET /api/v1/categories
func (h *Handler) ListCategories(w http.ResponseWriter, _ *http.Request) {
	cats := category.All()
	writeList(w, cats, len(cats))
}

// ListValues GET /api/v1/values?category=
func (h *Handler) ListValues(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimSpace(r.URL.Query().Get("category"))
	if raw == "" {
		values := h.app.Values()
		writeList(w, values, len(values))
		return
	}
	cat, err := category.Parse(raw)
	if err != nil {
		writeError(w, fmt.Errorf("%w: %v", app.ErrUnknownCategory, err))
		return
	}
	values := h.app.ValuesIn(cat)
	writeList(w, values, len(values))
}

// AddValue POST /api/v1/values
func (h *Handler) AddValue(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Category string `json:"category"`
		Name     string `json:"name"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	cat, err := category.Parse(req.Category)
	if err != nil {
		writeError(w, fmt.Errorf("%w: %v", app.ErrUnknownCategory, err))
		return
	}
	v, err := h.app.AddValue(cat, req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, v)
}

func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) (entry.Value, bool) {
	id := mux.Vars(r)["id"]
	v, ok := h.app.Value(id)
	if !ok {
		writeError(w, fmt.Errorf("%w: value %q", app.ErrNotFound, id))
	}
	return v, ok
}

// GetValue GET /api/v1/values/{id}
func (h *Handler) GetValue(w http.ResponseWriter, r *http.Request) {
	if v, ok := h.lookup(w, r); ok {
		writeData(w, http.StatusOK, v)
	}
}

// History GET /api/v1/values/{id}/history
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	if v, ok := h.lookup(w, r); ok {
		writeList(w, v.History, len(v.History))
	}
}

// DeleteValue DELETE /api/v1/values/{id}
func (h *Handler) DeleteValue(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	removed, err := h.app.DeleteValue(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, map[string]any{"id": id, "removedActions": removed})
}

// UpdateScore PUT /api/v1/values/{id}/score
func (h *Handler) UpdateScore(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Score *int `json:"score"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Score == nil {
		writeError(w, fmt.Errorf("%w: score is required", app.ErrInvalidInput))
		return
	}
	v, err := h.app.UpdateValueScore(mux.Vars(r)["id"], *req.Score)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, v)
}

// ListActions GET /api/v1/actions?valueId=
func (h *Handler) ListActions(w http.ResponseWriter, r *http.Request) {
	views := h.app.ActionViews()
	if valueID := strings.TrimSpace(r.URL.Query().Get("valueId")); valueID != "" {
		views = h.app.ActionsFor(valueID)
	}
	writeList(w, views, len(views))
}

// AddAction POST /api/v1/actions
func (h *Handler) AddAction(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ValueID     string `json:"valueId"`
		Description string `json:"description"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	a, err := h.app.AddAction(req.ValueID, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, h.view(a))
}

// ToggleAction POST /api/v1/actions/{id}/toggle
func (h *Handler) ToggleAction(w http.ResponseWriter, r *http.Request) {
	a, err := h.app.ToggleAction(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, h.view(a))
}

func (h *Handler) view(a entry.Action) app.ActionView {
	view := app.ActionView{Action: a}
	if v, ok := h.app.Value(a.ValueID); ok {
		view.ValueName = v.Name
	}
	return view
}
