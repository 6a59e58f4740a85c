package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"product-categories/internal/catalog"
	"product-categories/internal/category"
	"product-categories/internal/logger"
	"product-categories/internal/product"
	"product-categories/internal/user"

	"go.uber.org/zap"
)

//go:embed templates/index.html
var templatesFS embed.FS

func parsePage() *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/index.html"))
}

type link struct {
	Label  string
	Href   string
	Active bool
}

type column struct {
	Title string
	Href  string
	Icon  string
}

type row struct {
	ID        int
	Name      string
	Category  string
	User      string
	UserClass string
}

type hiddenField struct {
	Name  string
	Value string
}

type pageData struct {
	AllUsers   link
	Users      []link
	Query      string
	ClearQuery string
	Hidden     []hiddenField

	AllCategories link
	Categories    []link
	Reset         string

	Columns   []column
	Rows      []row
	NoResults bool
	Message   string
}

var columnTitles = map[product.SortField]string{
	product.SortFieldID:       "ID",
	product.SortFieldProduct:  "Product",
	product.SortFieldCategory: "Category",
	product.SortFieldUser:     "User",
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
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

	data := buildPage(state, h.svc.Users(ctx), h.svc.Categories(ctx), res)

	var buf bytes.Buffer
	if err := h.page.Execute(&buf, data); err != nil {
		logger.FromCtx(ctx).Error("render page failed", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func buildPage(state product.FilterState, users []user.User, categories []category.Category, res *catalog.Result) pageData {
	data := pageData{
		AllUsers:  link{Label: "All", Href: href(state.WithUser(nil)), Active: state.SelectedUser == nil},
		Query:     state.Query,
		Reset:     href(state.Reset()),
		NoResults: res.NoResults,
		Message:   res.Message,
		AllCategories: link{
			Label:  "All",
			Href:   href(state.ClearCategories()),
			Active: len(state.SelectedCategories) == 0,
		},
	}

	for _, u := range users {
		data.Users = append(data.Users, link{
			Label:  u.Name,
			Href:   href(state.WithUser(&u)),
			Active: state.IsUserSelected(u),
		})
	}

	if state.HasQuery() {
		data.ClearQuery = href(state.ClearQuery())
	}

	data.Hidden = hiddenFields(state)

	for _, c := range categories {
		data.Categories = append(data.Categories, link{
			Label:  c.Title,
			Href:   href(state.ToggleCategory(c.Title)),
			Active: state.IsCategorySelected(c.Title),
		})
	}

	for _, f := range product.SortFields() {
		data.Columns = append(data.Columns, column{
			Title: columnTitles[f],
			Href:  href(state.ToggleSort(f)),
			Icon:  sortIcon(state.Sort.DirectionOf(f)),
		})
	}

	for _, item := range res.Items {
		data.Rows = append(data.Rows, row{
			ID:        item.ID,
			Name:      item.Name,
			Category:  item.Category.Label(),
			User:      item.User.Name,
			UserClass: userClass(item.User.Sex),
		})
	}

	return data
}

// hiddenFields carries every part of the state except the query through the
// search form, in a stable order.
func hiddenFields(state product.FilterState) []hiddenField {
	q := EncodeState(state.ClearQuery())

	var fields []hiddenField
	for _, name := range []string{paramUser, paramCategory, paramSort, paramOrder} {
		for _, v := range q[name] {
			fields = append(fields, hiddenField{Name: name, Value: v})
		}
	}
	return fields
}

func sortIcon(d product.SortDirection) string {
	switch d {
	case product.SortDirectionAsc:
		return "fa-sort-up"
	case product.SortDirectionDesc:
		return "fa-sort-down"
	default:
		return "fa-sort"
	}
}

func userClass(s user.Sex) string {
	if s == user.SexMale {
		return "has-text-link"
	}
	return "has-text-danger"
}
