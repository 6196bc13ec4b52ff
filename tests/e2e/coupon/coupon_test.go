//go:build e2e

package coupon_test

import (
	"net/http"
	"testing"

	reqdto "cuponera/internal/handler/dto/request"
	resdto "cuponera/internal/handler/dto/response"
	"cuponera/internal/pkg/jwt"
	"cuponera/tests/common/dbtest"
	commonhttp "cuponera/tests/common/httptest"
	"cuponera/tests/e2e"
	"cuponera/tests/e2e/common/helper"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type CouponE2ETestSuite struct {
	e2e.SharedSuite
}

func TestCouponE2ESuite(t *testing.T) {
	suite.Run(t, new(CouponE2ETestSuite))
}

// purchaseCoupons buys an offer and returns the issued coupons.
func (s *CouponE2ETestSuite) purchaseCoupons(offerID uuid.UUID, token string, quantity int32) []*resdto.IssuedCouponResponse {
	w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/purchases",
		reqdto.CreatePurchaseRequest{OfferID: offerID, Quantity: &quantity}, token)

	var resp resdto.PurchaseResponse
	commonhttp.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
	return resp.Coupons
}

func (s *CouponE2ETestSuite) TestListCoupons() {
	s.Run("purchased coupons appear under available", func() {
		merchantID := dbtest.CreateTestMerchant(s.T(), s.DB, "PUPUSAS", "Pupuseria Maria")
		_, accountID := dbtest.CreateTestCustomer(s.T(), s.DB, "ana@example.com")
		offerID := dbtest.CreateTestOffer(s.T(), s.DB, dbtest.TestOfferParams{MerchantID: merchantID})
		token := helper.IssueToken(s.T(), s.Config, accountID, jwt.RoleCustomer)

		s.purchaseCoupons(offerID, token, 2)

		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/coupons", nil, token)

		var resp resdto.ClassifiedCouponsResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Len(resp.Available, 2)
		s.Empty(resp.Redeemed)
		s.Empty(resp.Expired)
		s.Equal("Test Offer", resp.Available[0].OfferTitle)
		s.Equal("PUPUSAS", resp.Available[0].MerchantCode)
	})

	s.Run("other customers see an empty wallet", func() {
		merchantID := dbtest.CreateTestMerchant(s.T(), s.DB, "PUPUSAS", "Pupuseria Maria")
		_, buyerAccountID := dbtest.CreateTestCustomer(s.T(), s.DB, "ana@example.com")
		_, otherAccountID := dbtest.CreateTestCustomer(s.T(), s.DB, "luis@example.com")
		offerID := dbtest.CreateTestOffer(s.T(), s.DB, dbtest.TestOfferParams{MerchantID: merchantID})

		buyerToken := helper.IssueToken(s.T(), s.Config, buyerAccountID, jwt.RoleCustomer)
		otherToken := helper.IssueToken(s.T(), s.Config, otherAccountID, jwt.RoleCustomer)

		s.purchaseCoupons(offerID, buyerToken, 1)

		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/coupons", nil, otherToken)

		var resp resdto.ClassifiedCouponsResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Empty(resp.Available)
	})

	s.Run("unauthenticated listing is rejected", func() {
		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/coupons", nil, "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})
}

func (s *CouponE2ETestSuite) TestRedeemCoupon() {
	s.Run("merchant redeems a coupon exactly once", func() {
		merchantID := dbtest.CreateTestMerchant(s.T(), s.DB, "PUPUSAS", "Pupuseria Maria")
		_, accountID := dbtest.CreateTestCustomer(s.T(), s.DB, "ana@example.com")
		offerID := dbtest.CreateTestOffer(s.T(), s.DB, dbtest.TestOfferParams{MerchantID: merchantID})

		customerToken := helper.IssueToken(s.T(), s.Config, accountID, jwt.RoleCustomer)
		merchantToken := helper.IssueToken(s.T(), s.Config, uuid.New(), jwt.RoleMerchant)

		coupons := s.purchaseCoupons(offerID, customerToken, 1)
		code := coupons[0].Code

		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/coupons/redeem",
			reqdto.RedeemCouponRequest{Code: code}, merchantToken)

		var resp resdto.RedeemResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(code, resp.Code)
		s.Equal("redeemed", resp.Status)

		w = commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/coupons/redeem",
			reqdto.RedeemCouponRequest{Code: code}, merchantToken)
		s.Equal(http.StatusConflict, w.Code)
	})

	s.Run("customers cannot redeem", func() {
		merchantID := dbtest.CreateTestMerchant(s.T(), s.DB, "PUPUSAS", "Pupuseria Maria")
		_, accountID := dbtest.CreateTestCustomer(s.T(), s.DB, "ana@example.com")
		offerID := dbtest.CreateTestOffer(s.T(), s.DB, dbtest.TestOfferParams{MerchantID: merchantID})

		customerToken := helper.IssueToken(s.T(), s.Config, accountID, jwt.RoleCustomer)
		coupons := s.purchaseCoupons(offerID, customerToken, 1)

		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/coupons/redeem",
			reqdto.RedeemCouponRequest{Code: coupons[0].Code}, customerToken)
		s.Equal(http.StatusForbidden, w.Code)
	})

	s.Run("unknown code returns not found", func() {
		merchantToken := helper.IssueToken(s.T(), s.Config, uuid.New(), jwt.RoleMerchant)

		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/coupons/redeem",
			reqdto.RedeemCouponRequest{Code: "PUPUSAS0000000"}, merchantToken)
		s.Equal(http.StatusNotFound, w.Code)
	})
}
