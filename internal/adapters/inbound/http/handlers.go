package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/abdidvp/polaxis/internal/application"
	"github.com/abdidvp/polaxis/internal/domain"
)

type classifyRequest struct {
	Answers      map[string]int64 `json:"answers"`
	RespondentID string           `json:"respondent_id"`
	Save         bool             `json:"save"`
	NoCache      bool             `json:"no_cache"`
}

type compareRequest struct {
	A map[string]int64 `json:"a"`
	B map[string]int64 `json:"b"`
}

type bankResponse struct {
	Version       string            `json:"version"`
	Title         string            `json:"title,omitempty"`
	QuestionCount int               `json:"question_count"`
	Questions     []domain.Question `json:"questions"`
}

func (h *handlers) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handlers) bank(w http.ResponseWriter, _ *http.Request) {
	b := h.Classify.Bank()
	writeJSON(w, http.StatusOK, bankResponse{
		Version:       b.Version,
		Title:         b.Title,
		QuestionCount: len(b.Questions),
		Questions:     b.Questions,
	})
}

func (h *handlers) classify(w http.ResponseWriter, r *http.Request) {
	var req classifyRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	}
	res, err := h.Classify.Classify(r.Context(), domain.AnswersFromInt64(req.Answers), application.ClassifyOptions{
		RespondentID: strings.TrimSpace(req.RespondentID),
		Save:         req.Save,
		NoCache:      req.NoCache,
	})
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *handlers) compare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	}
	rep, err := h.Compare.Compare(r.Context(), domain.AnswersFromInt64(req.A), domain.AnswersFromInt64(req.B))
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

func (h *handlers) archetypes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, domain.AllArchetypes())
}

func (h *handlers) archetype(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(chi.URLParam(r, "code"))
	a, ok := domain.LookupArchetype(code)
	if !ok {
		writeErr(w, http.StatusNotFound, fmt.Sprintf("unknown archetype code %q", code))
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (h *handlers) result(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Classify.Result(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *handlers) distribution(w http.ResponseWriter, r *http.Request) {
	if h.Distribution == nil {
		h.fail(w, application.ErrNoStore)
		return
	}
	d, err := h.Distribution.Distribution(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// fail maps service errors to status codes. Unexpected errors are logged and
// reported without detail.
func (h *handlers) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrResultNotFound):
		writeErr(w, http.StatusNotFound, err.Error())
	case errors.Is(err, application.ErrNoStore):
		writeErr(w, http.StatusServiceUnavailable, err.Error())
	default:
		h.Logger.Error("request failed", "error", err)
		writeErr(w, http.StatusInternalServerError, "internal error")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errResp struct {
	Error string `json:"error"`
}

func writeErr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errResp{Error: msg})
}
