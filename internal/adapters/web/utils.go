package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Dearie-de-cybek/PropTech/internal/adapters/web/views"
	"github.com/Dearie-de-cybek/PropTech/internal/contextkeys"
	"github.com/Dearie-de-cybek/PropTech/internal/core/domain"
	"github.com/Dearie-de-cybek/PropTech/internal/core/port"
	"github.com/go-chi/render"
	g "maragu.dev/gomponents"
)

// WriteJSONError answers with {"error": message}.
func WriteJSONError(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	render.Status(r, statusCode)
	render.JSON(w, r, map[string]string{"error": message})
}

// RespondWithJSON answers with payload encoded as JSON.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, code int, payload interface{}) {
	render.Status(r, code)
	render.JSON(w, r, payload)
}

// statusForError maps core errors to HTTP codes.
func statusForError(err error) int {
	var upstream *domain.UpstreamError
	switch {
	case errors.Is(err, domain.ErrInvalidPayload):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrPropertyNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrRecommendationsDisabled):
		return http.StatusServiceUnavailable
	case errors.As(err, &upstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeAPIError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusForError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}
	WriteJSONError(w, r, status, message)
}

// renderHTML writes node with the given status.
func renderHTML(w http.ResponseWriter, r *http.Request, status int, node g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := node.Render(w); err != nil {
		contextkeys.LoggerFromContext(r.Context()).Error("Failed to render page", err, nil)
	}
}

func renderErrorPage(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrPropertyNotFound) {
		renderHTML(w, r, http.StatusNotFound, views.ErrorPage(http.StatusNotFound, "Property not found", "The property you are looking for does not exist."))
		return
	}
	contextkeys.LoggerFromContext(r.Context()).Error("Page request failed", err, port.Fields{"path": r.URL.Path})
	renderHTML(w, r, http.StatusInternalServerError, views.ErrorPage(http.StatusInternalServerError, "Something went wrong", "Please try again later."))
}

// parsePropertyID accepts positive integer ids only.
func parsePropertyID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrPropertyNotFound
	}
	return id, nil
}
