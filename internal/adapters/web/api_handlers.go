package web

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Dearie-de-cybek/PropTech/internal/contextkeys"
	"github.com/Dearie-de-cybek/PropTech/internal/core/domain"
	"github.com/Dearie-de-cybek/PropTech/internal/core/port"
	"github.com/Dearie-de-cybek/PropTech/internal/core/port/usecases_port"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// APIHandler serves the JSON API under /api/v1.
type APIHandler struct {
	catalogUC         usecases_port.PropertyCatalogUseCase
	recommendationsUC usecases_port.RecommendationsUseCase
}

func NewAPIHandler(catalogUC usecases_port.PropertyCatalogUseCase, recommendationsUC usecases_port.RecommendationsUseCase) *APIHandler {
	return &APIHandler{catalogUC: catalogUC, recommendationsUC: recommendationsUC}
}

// ListProperties handles GET /api/v1/properties
func (h *APIHandler) ListProperties(w http.ResponseWriter, r *http.Request) {
	properties, err := h.catalogUC.ListProperties(r.Context())
	if err != nil {
		writeAPIError(w, r, err)
		return
	}
	RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{
		"data":  properties,
		"total": len(properties),
	})
}

// GetProperty handles GET /api/v1/properties/{propertyID}
func (h *APIHandler) GetProperty(w http.ResponseWriter, r *http.Request) {
	id, err := parsePropertyID(chi.URLParam(r, "propertyID"))
	if err != nil {
		writeAPIError(w, r, err)
		return
	}
	property, err := h.catalogUC.GetProperty(r.Context(), id)
	if err != nil {
		writeAPIError(w, r, err)
		return
	}
	RespondWithJSON(w, r, http.StatusOK, property)
}

// Suggest handles POST /api/v1/recommendations/suggest?limit=
func (h *APIHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	limit := domain.DefaultRecommendationLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			WriteJSONError(w, r, http.StatusBadRequest, "Invalid 'limit' parameter")
			return
		}
		limit = parsed
	}

	var prefs domain.Preferences
	if r.ContentLength != 0 {
		if err := render.DecodeJSON(r.Body, &prefs); err != nil {
			contextkeys.LoggerFromContext(r.Context()).Warn("Invalid preferences body", port.Fields{"error": err.Error()})
			WriteJSONError(w, r, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	list, err := h.recommendationsUC.Suggest(r.Context(), prefs, limit)
	if err != nil {
		writeAPIError(w, r, err)
		return
	}
	RespondWithJSON(w, r, http.StatusOK, list)
}

// Similar handles GET /api/v1/recommendations/similar/{propertyID}
func (h *APIHandler) Similar(w http.ResponseWriter, r *http.Request) {
	similar, err := h.recommendationsUC.Similar(r.Context(), chi.URLParam(r, "propertyID"))
	if err != nil {
		writeAPIError(w, r, err)
		return
	}
	RespondWithJSON(w, r, http.StatusOK, similar)
}

// PredictPrice handles POST /api/v1/analytics/predict-price
func (h *APIHandler) PredictPrice(w http.ResponseWriter, r *http.Request) {
	var input domain.PricePredictionInput
	if err := render.DecodeJSON(r.Body, &input); err != nil {
		WriteJSONError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	prediction, err := h.recommendationsUC.PredictPrice(r.Context(), input)
	if err != nil {
		writeAPIError(w, r, err)
		return
	}
	RespondWithJSON(w, r, http.StatusOK, prediction)
}

// AnalyzeLocation handles GET /api/v1/analytics/location/{location}
func (h *APIHandler) AnalyzeLocation(w http.ResponseWriter, r *http.Request) {
	analysis, err := h.recommendationsUC.AnalyzeLocation(r.Context(), chi.URLParam(r, "location"))
	if err != nil {
		writeAPIError(w, r, err)
		return
	}
	RespondWithJSON(w, r, http.StatusOK, analysis)
}

// ForecastPrice handles GET /api/v1/analytics/price-forecast?location=&propertyType=&months=
// Omitted months means 24; an explicit months must be positive.
func (h *APIHandler) ForecastPrice(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	q := domain.PriceForecastQuery{
		Location:     query.Get("location"),
		PropertyType: query.Get("propertyType"),
	}
	if raw := query.Get("months"); raw != "" {
		months, err := strconv.Atoi(raw)
		if err != nil || months < 1 {
			WriteJSONError(w, r, http.StatusBadRequest, fmt.Sprintf("Invalid 'months' parameter: %q", raw))
			return
		}
		q.Months = months
	}

	forecast, err := h.recommendationsUC.ForecastPrice(r.Context(), q)
	if err != nil {
		writeAPIError(w, r, err)
		return
	}
	RespondWithJSON(w, r, http.StatusOK, forecast)
}
