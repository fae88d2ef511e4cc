package web

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/Dearie-de-cybek/PropTech/internal/adapters/web/views"
	"github.com/Dearie-de-cybek/PropTech/internal/constants"
	"github.com/Dearie-de-cybek/PropTech/internal/core/domain"
	"github.com/Dearie-de-cybek/PropTech/internal/core/port/usecases_port"
	"github.com/go-chi/chi/v5"
)

// PageHandler serves the HTML pages and the htmx partials.
type PageHandler struct {
	listingUC       usecases_port.GetListingPageUseCase
	detailUC        usecases_port.GetPropertyDetailUseCase
	filterSectionUC usecases_port.GetFilterSectionUseCase
}

func NewPageHandler(listingUC usecases_port.GetListingPageUseCase,
	detailUC usecases_port.GetPropertyDetailUseCase,
	filterSectionUC usecases_port.GetFilterSectionUseCase) *PageHandler {
	return &PageHandler{
		listingUC:       listingUC,
		detailUC:        detailUC,
		filterSectionUC: filterSectionUC,
	}
}

// Listing serves GET / and GET /properties.
func (h *PageHandler) Listing(w http.ResponseWriter, r *http.Request) {
	mode, overrides := parseUIState(r.URL.Query())

	page, err := h.listingUC.Execute(r.Context(), mode, overrides)
	if err != nil {
		renderErrorPage(w, r, err)
		return
	}
	renderHTML(w, r, http.StatusOK, views.ListingPage(page))
}

// ListingPartial serves GET /partials/listing, the region swapped by the view toggles.
func (h *PageHandler) ListingPartial(w http.ResponseWriter, r *http.Request) {
	mode, overrides := parseUIState(r.URL.Query())
	page, err := h.listingUC.Execute(r.Context(), mode, overrides)
	if err != nil {
		renderErrorPage(w, r, err)
		return
	}
	renderHTML(w, r, http.StatusOK, views.ListingRegion(page.Properties, page.ViewMode, page.Sidebar))
}

// FilterSectionPartial serves GET /partials/filters/{section}?expanded=...
func (h *PageHandler) FilterSectionPartial(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "section")
	query := r.URL.Query()
	expanded, ok := domain.ParseExpansion(query.Get("expanded"))
	if !ok {
		http.Error(w, "expanded must be true or false", http.StatusBadRequest)
		return
	}
	mode, overrides := parseUIState(query)

	view, err := h.filterSectionUC.Execute(r.Context(), key, expanded, overrides)
	if err != nil {
		http.Error(w, "unknown filter section", http.StatusNotFound)
		return
	}
	renderHTML(w, r, http.StatusOK, views.FilterSection(view.Section, view.Sidebar, mode))
}

// Detail serves GET /properties/{propertyID}.
func (h *PageHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := parsePropertyID(chi.URLParam(r, "propertyID"))
	if err != nil {
		renderErrorPage(w, r, err)
		return
	}
	h.renderDetail(w, r, id)
}

// DefaultDetail serves GET /properties-detail with the showcase record.
func (h *PageHandler) DefaultDetail(w http.ResponseWriter, r *http.Request) {
	h.renderDetail(w, r, constants.DefaultDetailPropertyID)
}

func (h *PageHandler) renderDetail(w http.ResponseWriter, r *http.Request, id int64) {
	detail, err := h.detailUC.Execute(r.Context(), id)
	if err != nil {
		renderErrorPage(w, r, err)
		return
	}
	renderHTML(w, r, http.StatusOK, views.DetailPage(detail))
}

func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	renderHTML(w, r, http.StatusNotFound, views.ErrorPage(http.StatusNotFound, "Page not found", "The page you requested does not exist."))
}

// parseUIState reads the view mode and the section.<key> overrides. For a
// repeated or unparsable override the last valid value wins.
func parseUIState(query url.Values) (domain.ViewMode, map[string]bool) {
	mode := domain.ParseViewMode(query.Get(constants.QueryParamView))

	overrides := make(map[string]bool)
	for key, values := range query {
		section, ok := strings.CutPrefix(key, constants.SectionParamPrefix)
		if !ok {
			continue
		}
		for _, raw := range values {
			if expanded, ok := domain.ParseExpansion(raw); ok {
				overrides[section] = expanded
			}
		}
	}
	return mode, overrides
}
