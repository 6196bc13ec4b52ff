//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"cuponera/internal/infra"
	"cuponera/internal/usecase/queries"
	"cuponera/tests/common/builder"
	queriesmock "cuponera/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGroupByCategory(t *testing.T) {
	t.Run("groups preserve first-appearance order", func(t *testing.T) {
		food := builder.NewOfferBuilder().WithCategory("Food").BuildView()
		beauty := builder.NewOfferBuilder().WithCategory("Beauty").BuildView()
		food2 := builder.NewOfferBuilder().WithCategory("Food").BuildView()
		// Same category name but different category id still buckets by name.
		food2.CategoryName = food.CategoryName

		groups := queries.GroupByCategory([]*queries.OfferView{food, beauty, food2})

		require.Len(t, groups, 2)
		assert.Equal(t, "Food", groups[0].Category)
		assert.Len(t, groups[0].Offers, 2)
		assert.Equal(t, "Beauty", groups[1].Category)
		assert.Len(t, groups[1].Offers, 1)
	})

	t.Run("offers without category land in the uncategorized bucket", func(t *testing.T) {
		categorized := builder.NewOfferBuilder().WithCategory("Food").BuildView()
		orphan := builder.NewOfferBuilder().WithoutCategory().BuildView()

		groups := queries.GroupByCategory([]*queries.OfferView{categorized, orphan})

		require.Len(t, groups, 2)
		assert.Equal(t, queries.UncategorizedBucket, groups[1].Category)
		assert.Equal(t, orphan.ID, groups[1].Offers[0].ID)
	})

	t.Run("empty input yields empty groups", func(t *testing.T) {
		groups := queries.GroupByCategory(nil)
		assert.Empty(t, groups)
	})
}

func TestOfferQueriesCatalog(t *testing.T) {
	asOf := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	t.Run("successful read is complete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockOfferReadStore(ctrl)
		q := queries.NewOfferQueries(store)

		views := []*queries.OfferView{builder.NewOfferBuilder().BuildView()}
		store.EXPECT().ListActive(gomock.Any(), asOf).Return(views, nil)

		result := q.Catalog(context.Background(), asOf)

		require.NotNil(t, result)
		assert.True(t, result.Complete)
		require.Len(t, result.Groups, 1)
	})

	t.Run("read failure degrades instead of erroring", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockOfferReadStore(ctrl)
		q := queries.NewOfferQueries(store)

		store.EXPECT().ListActive(gomock.Any(), asOf).
			Return(nil, infra.WrapRepoErr("boom", assert.AnError))

		result := q.Catalog(context.Background(), asOf)

		require.NotNil(t, result)
		assert.False(t, result.Complete)
		assert.Empty(t, result.Groups)
	})
}

func TestOfferQueriesGetDetail(t *testing.T) {
	t.Run("limited offer exposes floored remaining", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockOfferReadStore(ctrl)
		q := queries.NewOfferQueries(store)

		view := builder.NewOfferBuilder().WithStockLimit(10).BuildView()
		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
		store.EXPECT().CountIssued(gomock.Any(), view.ID).Return(int64(12), nil)

		detail, err := q.GetDetail(context.Background(), view.ID)
		require.NoError(t, err)

		assert.Equal(t, int64(12), detail.Sold)
		require.NotNil(t, detail.Remaining)
		assert.Equal(t, int64(0), *detail.Remaining)
		assert.True(t, detail.SoldOut)
	})

	t.Run("remaining counts down with sales", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockOfferReadStore(ctrl)
		q := queries.NewOfferQueries(store)

		view := builder.NewOfferBuilder().WithStockLimit(10).BuildView()
		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
		store.EXPECT().CountIssued(gomock.Any(), view.ID).Return(int64(4), nil)

		detail, err := q.GetDetail(context.Background(), view.ID)
		require.NoError(t, err)

		require.NotNil(t, detail.Remaining)
		assert.Equal(t, int64(6), *detail.Remaining)
		assert.False(t, detail.SoldOut)
	})

	t.Run("unlimited offer has no remaining count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockOfferReadStore(ctrl)
		q := queries.NewOfferQueries(store)

		view := builder.NewOfferBuilder().BuildView()
		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
		store.EXPECT().CountIssued(gomock.Any(), view.ID).Return(int64(500), nil)

		detail, err := q.GetDetail(context.Background(), view.ID)
		require.NoError(t, err)

		assert.Nil(t, detail.Remaining)
		assert.False(t, detail.SoldOut)
		assert.Equal(t, int64(500), detail.Sold)
	})

	t.Run("missing offer propagates not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockOfferReadStore(ctrl)
		q := queries.NewOfferQueries(store)

		view := builder.NewOfferBuilder().BuildView()
		store.EXPECT().FindByID(gomock.Any(), view.ID).
			Return(nil, infra.WrapRepoErr("offer not found", assert.AnError, infra.KindNotFound))

		_, err := q.GetDetail(context.Background(), view.ID)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
