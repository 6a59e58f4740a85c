package catalog

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/text/language"

	"product-categories/internal/dataset"
	"product-categories/internal/logger"
	"product-categories/internal/metrics"
	"product-categories/internal/product"
	"product-categories/internal/user"
)

func newTestService(t *testing.T, opts ...Option) Service {
	t.Helper()
	ds, err := dataset.Embedded()
	require.NoError(t, err)
	return NewService(ds, opts...)
}

func productNames(items []product.EnrichedProduct) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

func TestService_Lists(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	users := svc.Users(ctx)
	require.Len(t, users, 4)
	assert.Equal(t, "Roma", users[0].Name)

	categories := svc.Categories(ctx)
	require.Len(t, categories, 5)
	assert.Equal(t, "Grocery", categories[0].Title)
}

func TestService_FindUser(t *testing.T) {
	svc := newTestService(t)

	t.Run("Found", func(t *testing.T) {
		u, err := svc.FindUser(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, &user.User{ID: 3, Name: "Max", Sex: user.SexMale}, u)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := svc.FindUser(context.Background(), 99)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestService_Prepare(t *testing.T) {
	ctx := context.Background()

	t.Run("Unfiltered", func(t *testing.T) {
		res, err := newTestService(t).Prepare(ctx, product.FilterState{})
		require.NoError(t, err)
		assert.False(t, res.NoResults)
		assert.Empty(t, res.Message)
		assert.Len(t, res.Items, 8)
		assert.Equal(t, "Milk", res.Items[0].Name)
		assert.Equal(t, "Drinks", res.Items[0].Category.Title)
		assert.Equal(t, "Roma", res.Items[0].User.Name)
	})

	t.Run("FilterByOwnerAndSort", func(t *testing.T) {
		svc := newTestService(t)
		anna, err := svc.FindUser(ctx, 2)
		require.NoError(t, err)

		state := product.FilterState{}.WithUser(anna).ToggleSort(product.SortFieldProduct)
		res, err := svc.Prepare(ctx, state)
		require.NoError(t, err)
		assert.Equal(t, []string{"Apple", "Bread", "Eggs", "Sausage", "Sugar"}, productNames(res.Items))

		res, err = svc.Prepare(ctx, state.ToggleSort(product.SortFieldProduct))
		require.NoError(t, err)
		assert.Equal(t, []string{"Sugar", "Sausage", "Eggs", "Bread", "Apple"}, productNames(res.Items))
	})

	t.Run("NoResults", func(t *testing.T) {
		res, err := newTestService(t).Prepare(ctx, product.FilterState{Query: "unicorn"})
		require.NoError(t, err)
		assert.True(t, res.NoResults)
		assert.Equal(t, NoResultsMessage, res.Message)
		assert.NotNil(t, res.Items)
		assert.Empty(t, res.Items)
	})

	t.Run("LocaleOption", func(t *testing.T) {
		svc := newTestService(t, WithLocale(language.Ukrainian))
		res, err := svc.Prepare(ctx, product.FilterState{}.ToggleSort(product.SortFieldUser))
		require.NoError(t, err)
		assert.Equal(t, "Anna", res.Items[0].User.Name)
	})
}

func TestService_Prepare_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	svc := newTestService(t, WithMetrics(metrics.NewPipeline(reg)))
	ctx := context.Background()

	_, err := svc.Prepare(ctx, product.FilterState{})
	require.NoError(t, err)
	_, err = svc.Prepare(ctx, product.FilterState{Query: "nothing-here"})
	require.NoError(t, err)

	expected := `
# HELP catalog_pipeline_runs_total Product pipeline runs by outcome.
# TYPE catalog_pipeline_runs_total counter
catalog_pipeline_runs_total{outcome="empty"} 1
catalog_pipeline_runs_total{outcome="matched"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "catalog_pipeline_runs_total"))
}

func TestService_Prepare_Logs(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	defer logger.Replace(zap.New(core))()

	_, err := newTestService(t).Prepare(context.Background(), product.FilterState{Query: "milk"})
	require.NoError(t, err)

	logs := observed.FilterMessage("prepare products success").All()
	require.Len(t, logs, 1)
	assert.Equal(t, int64(1), logs[0].ContextMap()["count"])
	assert.Equal(t, "service", logs[0].ContextMap()["layer"])
}
