//go:build e2e

package offer_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	resdto "cuponera/internal/handler/dto/response"
	"cuponera/tests/common/dbtest"
	commonhttp "cuponera/tests/common/httptest"
	"cuponera/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type OfferE2ETestSuite struct {
	e2e.SharedSuite
}

func TestOfferE2ESuite(t *testing.T) {
	suite.Run(t, new(OfferE2ETestSuite))
}

func (s *OfferE2ETestSuite) categoryID(name string) uuid.UUID {
	var id uuid.UUID
	err := s.DB.QueryRow(context.Background(),
		"SELECT id FROM categories WHERE name = $1", name).Scan(&id)
	s.Require().NoError(err)
	return id
}

func (s *OfferE2ETestSuite) TestListOffers() {
	s.Run("catalog groups offers by category", func() {
		merchantID := dbtest.CreateTestMerchant(s.T(), s.DB, "PUPUSAS", "Pupuseria Maria")
		restaurants := s.categoryID("Restaurants")
		beauty := s.categoryID("Beauty")

		dbtest.CreateTestOffer(s.T(), s.DB, dbtest.TestOfferParams{
			MerchantID: merchantID, CategoryID: &restaurants, Title: "2x1 Pupusas"})
		dbtest.CreateTestOffer(s.T(), s.DB, dbtest.TestOfferParams{
			MerchantID: merchantID, CategoryID: &beauty, Title: "Spa Day"})
		dbtest.CreateTestOffer(s.T(), s.DB, dbtest.TestOfferParams{
			MerchantID: merchantID, Title: "Mystery Deal"})

		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/offers", nil, "")

		var resp resdto.CatalogResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.True(resp.Complete)
		s.Require().Len(resp.Groups, 3)

		// Category name order, nulls last.
		s.Equal("Beauty", resp.Groups[0].Category)
		s.Equal("Restaurants", resp.Groups[1].Category)
		s.Equal("Uncategorized", resp.Groups[2].Category)
		for _, g := range resp.Groups {
			s.Len(g.Offers, 1)
		}
	})

	s.Run("pending and expired offers are hidden", func() {
		merchantID := dbtest.CreateTestMerchant(s.T(), s.DB, "PUPUSAS", "Pupuseria Maria")

		dbtest.CreateTestOffer(s.T(), s.DB, dbtest.TestOfferParams{
			MerchantID: merchantID, Title: "Still Pending", ApprovalState: "pending"})

		past := time.Now().UTC().AddDate(0, 0, -10)
		ended := time.Now().UTC().AddDate(0, 0, -1)
		dbtest.CreateTestOffer(s.T(), s.DB, dbtest.TestOfferParams{
			MerchantID: merchantID, Title: "Long Gone", StartsOn: &past, EndsOn: &ended})

		dbtest.CreateTestOffer(s.T(), s.DB, dbtest.TestOfferParams{
			MerchantID: merchantID, Title: "Live Offer"})

		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/offers", nil, "")

		var resp resdto.CatalogResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Require().Len(resp.Groups, 1)
		s.Require().Len(resp.Groups[0].Offers, 1)
		s.Equal("Live Offer", resp.Groups[0].Offers[0].Title)
	})
}

func (s *OfferE2ETestSuite) TestGetOffer() {
	s.Run("detail reports sold and remaining", func() {
		merchantID := dbtest.CreateTestMerchant(s.T(), s.DB, "PUPUSAS", "Pupuseria Maria")
		limit := int32(10)
		offerID := dbtest.CreateTestOffer(s.T(), s.DB, dbtest.TestOfferParams{
			MerchantID: merchantID, StockLimit: &limit})

		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/offers/"+offerID.String(), nil, "")

		var resp resdto.OfferDetailResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(int64(0), resp.Sold)
		s.Require().NotNil(resp.Remaining)
		s.Equal(int64(10), *resp.Remaining)
		s.False(resp.SoldOut)
		s.Equal(50, resp.DiscountPercent)
	})

	s.Run("unknown offer returns not found", func() {
		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/offers/"+uuid.NewString(), nil, "")
		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("malformed id returns bad request", func() {
		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/offers/not-a-uuid", nil, "")
		s.Equal(http.StatusBadRequest, w.Code)
	})
}
