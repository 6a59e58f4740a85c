package catalog

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/text/language"

	"product-categories/internal/category"
	"product-categories/internal/dataset"
	"product-categories/internal/logger"
	"product-categories/internal/metrics"
	"product-categories/internal/product"
	"product-categories/internal/user"

	"go.uber.org/zap"
)

const NoResultsMessage = "No products matching selected criteria"

// Result is one pipeline run as the view consumes it.
type Result struct {
	Items     []product.EnrichedProduct
	NoResults bool
	Message   string
}

// Service exposes the catalog to the transport layer.
type Service interface {
	Users(ctx context.Context) []user.User
	Categories(ctx context.Context) []category.Category
	FindUser(ctx context.Context, id int) (*user.User, error)
	Prepare(ctx context.Context, state product.FilterState) (*Result, error)
}

type service struct {
	ds      *dataset.Dataset
	locale  language.Tag
	metrics *metrics.Pipeline
}

type Option func(*service)

// WithLocale sets the collation used for text columns.
func WithLocale(tag language.Tag) Option {
	return func(s *service) { s.locale = tag }
}

func WithMetrics(m *metrics.Pipeline) Option {
	return func(s *service) { s.metrics = m }
}

func NewService(ds *dataset.Dataset, opts ...Option) Service {
	s := &service{ds: ds, locale: language.English}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Users(ctx context.Context) []user.User {
	return s.ds.Users()
}

func (s *service) Categories(ctx context.Context) []category.Category {
	return s.ds.Categories()
}

func (s *service) FindUser(ctx context.Context, id int) (*user.User, error) {
	u, ok := s.ds.User(id)
	if !ok {
		logger.FromCtx(ctx).Warn("user lookup failed", zap.Int("user_id", id))
		return nil, fmt.Errorf("user %d: %w", id, ErrUserNotFound)
	}
	return &u, nil
}

func (s *service) Prepare(ctx context.Context, state product.FilterState) (*Result, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Prepare"),
	)

	timer := metrics.StartTimer()

	selectedUser := ""
	if state.SelectedUser != nil {
		selectedUser = state.SelectedUser.Name
	}
	log.Debug("prepare products requested",
		zap.String("user", selectedUser),
		zap.String("query", state.Query),
		zap.Strings("categories", state.SelectedCategories),
		zap.String("sort_field", string(state.Sort.Field)),
		zap.String("sort_direction", string(state.Sort.Direction)),
	)

	items, err := product.Prepare(s.ds.Products(), s.ds.Categories(), s.ds.Users(), state, s.locale)
	if err != nil {
		s.observe(metrics.OutcomeError, timer, 0)
		if errors.Is(err, product.ErrDataIntegrity) {
			log.Error("dataset integrity violated", zap.Error(err))
		} else {
			log.Error("prepare products failed", zap.Error(err))
		}
		return nil, err
	}

	if len(items) == 0 {
		s.observe(metrics.OutcomeEmpty, timer, 0)
		log.Info("no products matched", zap.Duration("duration", timer.Duration()))
		return &Result{Items: items, NoResults: true, Message: NoResultsMessage}, nil
	}

	s.observe(metrics.OutcomeMatched, timer, len(items))
	log.Info("prepare products success",
		zap.Int("count", len(items)),
		zap.Duration("duration", timer.Duration()),
	)

	return &Result{Items: items}, nil
}

func (s *service) observe(outcome string, timer *metrics.Timer, count int) {
	if s.metrics != nil {
		s.metrics.Observe(outcome, timer.Duration(), count)
	}
}
