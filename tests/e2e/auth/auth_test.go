//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	reqdto "cuponera/internal/handler/dto/request"
	resdto "cuponera/internal/handler/dto/response"
	"cuponera/tests/common/dbtest"
	commonhttp "cuponera/tests/common/httptest"
	"cuponera/tests/e2e"

	"github.com/stretchr/testify/suite"
)

type AuthE2ETestSuite struct {
	e2e.SharedSuite
}

func TestAuthE2ESuite(t *testing.T) {
	suite.Run(t, new(AuthE2ETestSuite))
}

func (s *AuthE2ETestSuite) TestLogin() {
	url := "/api/auth/login"

	s.Run("login issues a token that authorizes purchases", func() {
		accountID := dbtest.CreateTestAccount(s.T(), s.DB, "ana@example.com", "hunter22", "customer")
		dbtest.CreateTestCustomerForAccount(s.T(), s.DB, "ana@example.com", accountID)

		merchantID := dbtest.CreateTestMerchant(s.T(), s.DB, "PUPUSAS", "Pupuseria Maria")
		offerID := dbtest.CreateTestOffer(s.T(), s.DB, dbtest.TestOfferParams{MerchantID: merchantID})

		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, url,
			reqdto.LoginRequest{Email: "ana@example.com", Password: "hunter22"}, "")

		var login resdto.LoginResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &login)
		s.Equal(accountID, login.AccountID)
		s.Equal("customer", login.Role)
		s.NotEmpty(login.AccessToken)

		w = commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/purchases",
			reqdto.CreatePurchaseRequest{OfferID: offerID}, login.AccessToken)
		s.Equal(http.StatusCreated, w.Code)
	})

	s.Run("wrong password is rejected", func() {
		dbtest.CreateTestAccount(s.T(), s.DB, "ana@example.com", "hunter22", "customer")

		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, url,
			reqdto.LoginRequest{Email: "ana@example.com", Password: "wrong"}, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("unknown account is rejected with the same error", func() {
		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, url,
			reqdto.LoginRequest{Email: "nobody@example.com", Password: "hunter22"}, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid email or password")
	})
}
