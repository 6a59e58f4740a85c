package web

import (
	"errors"
	"html/template"
	"net/http"

	"product-categories/internal/catalog"
	"product-categories/internal/logger"
	"product-categories/internal/product"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler serves the catalog as a JSON API and as an HTML page.
type Handler struct {
	svc  catalog.Service
	page *template.Template
}

func NewHandler(svc catalog.Service) *Handler {
	return &Handler{svc: svc, page: parsePage()}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handleIndex)

	r.Route("/api", func(r chi.Router) {
		r.Get("/users", h.handleUsers)
		r.Get("/categories", h.handleCategories)
		r.Get("/products", h.handleProducts)
	})
}

type stateResponse struct {
	UserID     *int              `json:"userId,omitempty"`
	Query      string            `json:"query,omitempty"`
	Categories []string          `json:"categories"`
	Sort       product.SortState `json:"sort"`
}

type productsResponse struct {
	Items     []product.EnrichedProduct `json:"items"`
	Total     int                       `json:"total"`
	NoResults bool                      `json:"noResults"`
	Message   string                    `json:"message,omitempty"`
	State     stateResponse             `json:"state"`
	// SortLinks maps each column to the query string a header click leads to.
	SortLinks map[product.SortField]string `json:"sortLinks"`
}

func (h *Handler) handleUsers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Users(r.Context()))
}

func (h *Handler) handleCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Categories(r.Context()))
}

func (h *Handler) handleProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	state, err := ParseState(ctx, r.URL.Query(), h.svc)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	res, err := h.svc.Prepare(ctx, state)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp := productsResponse{
		Items:     res.Items,
		Total:     len(res.Items),
		NoResults: res.NoResults,
		Message:   res.Message,
		State:     toStateResponse(state),
		SortLinks: make(map[product.SortField]string, len(product.SortFields())),
	}
	for _, f := range product.SortFields() {
		resp.SortLinks[f] = EncodeState(state.ToggleSort(f)).Encode()
	}

	writeJSON(w, http.StatusOK, resp)
}

func toStateResponse(s product.FilterState) stateResponse {
	resp := stateResponse{
		Query:      s.Query,
		Categories: s.SelectedCategories,
		Sort:       s.Sort,
	}
	if resp.Categories == nil {
		resp.Categories = []string{}
	}
	if s.SelectedUser != nil {
		id := s.SelectedUser.ID
		resp.UserID = &id
	}
	return resp
}

// writeError maps filter and pipeline errors to problem responses.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromCtx(r.Context())

	switch {
	case errors.Is(err, catalog.ErrUserNotFound):
		NotFound(w, err.Error(), r.URL.RequestURI())
	case errors.Is(err, ErrInvalidFilter), errors.Is(err, product.ErrInvalidSort):
		BadRequest(w, err.Error(), r.URL.RequestURI())
	default:
		log.Error("request failed", zap.Error(err))
		InternalError(w, "catalog data is inconsistent", r.URL.RequestURI())
	}
}
