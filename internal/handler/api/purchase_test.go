//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"cuponera/internal/handler/api"
	reqdto "cuponera/internal/handler/dto/request"
	resdto "cuponera/internal/handler/dto/response"
	"cuponera/internal/usecase/commands"
	"cuponera/internal/usecase/queries"
	commonhttp "cuponera/tests/common/httptest"
	"cuponera/tests/common/testutil"
	commandsmock "cuponera/tests/mock/commands"
	queriesmock "cuponera/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PurchaseHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCtrl        *gomock.Controller
	mockCommands    *commandsmock.MockPurchaseCommands
	mockCustomers   *queriesmock.MockCustomerQueries
	handler         *api.PurchaseHandler
	accountID       uuid.UUID
	customer        *queries.CustomerView
}

func (s *PurchaseHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPurchaseCommands(s.mockCtrl)
	s.mockCustomers = queriesmock.NewMockCustomerQueries(s.mockCtrl)
	s.handler = api.NewPurchaseHandler(s.mockCommands, s.mockCustomers)

	s.accountID = uuid.New()
	s.customer = &queries.CustomerView{
		ID:        uuid.New(),
		AccountID: s.accountID,
		FirstName: "Ana",
		LastName:  "Lopez",
		Email:     "ana@example.com",
	}

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("account_id", s.accountID)
		c.Next()
	}

	s.router.POST("/purchases", authMiddleware, s.handler.CreatePurchase)
}

func (s *PurchaseHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPurchaseHandlerSuite(t *testing.T) {
	suite.Run(t, new(PurchaseHandlerTestSuite))
}

func (s *PurchaseHandlerTestSuite) TestCreatePurchase() {
	url := "/purchases"
	offerID := uuid.New()
	quantity := int32(2)
	reqBody := reqdto.CreatePurchaseRequest{OfferID: offerID, Quantity: &quantity}

	s.Run("successful purchase", func() {
		result := &commands.PurchaseResult{
			PurchaseID: uuid.New(),
			Coupons: []*commands.IssuedCoupon{
				{ID: uuid.New(), Code: "PUPUSAS0000001", Status: "available", Amount: 5},
				{ID: uuid.New(), Code: "PUPUSAS0000002", Status: "available", Amount: 5},
			},
			Amount: 5,
			Total:  10,
		}

		s.mockCustomers.EXPECT().GetByAccountID(gomock.Any(), s.accountID).Return(s.customer, nil)
		s.mockCommands.EXPECT().
			Purchase(gomock.Any(), offerID, s.customer.ID, quantity).
			Return(result, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var resp resdto.PurchaseResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal(result.PurchaseID, resp.PurchaseID)
		s.Len(resp.Coupons, 2)
		s.Equal(10.0, resp.Total)
	})

	s.Run("quantity defaults to one", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("quantity", nil))

		s.mockCustomers.EXPECT().GetByAccountID(gomock.Any(), s.accountID).Return(s.customer, nil)
		s.mockCommands.EXPECT().
			Purchase(gomock.Any(), offerID, s.customer.ID, int32(1)).
			Return(&commands.PurchaseResult{PurchaseID: uuid.New()}, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
		s.Equal(http.StatusCreated, w.Code)
	})

	s.Run("unauthenticated request", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("malformed body", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("offer_id", "not-a-uuid"))

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("offer not found", func() {
		s.mockCustomers.EXPECT().GetByAccountID(gomock.Any(), s.accountID).Return(s.customer, nil)
		s.mockCommands.EXPECT().
			Purchase(gomock.Any(), offerID, s.customer.ID, quantity).
			Return(nil, commands.ErrOfferNotFound)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Offer not found")
	})

	s.Run("customer missing for account", func() {
		s.mockCustomers.EXPECT().GetByAccountID(gomock.Any(), s.accountID).
			Return(nil, queries.ErrCustomerNotFound)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Customer not found")
	})

	s.Run("insufficient inventory returns remaining count", func() {
		s.mockCustomers.EXPECT().GetByAccountID(gomock.Any(), s.accountID).Return(s.customer, nil)
		s.mockCommands.EXPECT().
			Purchase(gomock.Any(), offerID, s.customer.ID, quantity).
			Return(nil, &commands.InsufficientInventoryError{Remaining: 1})

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var resp struct {
			Error     string `json:"error"`
			Remaining int64  `json:"remaining"`
		}
		s.Equal(http.StatusConflict, w.Code)
		commonhttp.DecodeResponseBody(s.T(), w.Body, &resp)
		s.Equal(int64(1), resp.Remaining)
	})

	s.Run("offer not purchasable", func() {
		s.mockCustomers.EXPECT().GetByAccountID(gomock.Any(), s.accountID).Return(s.customer, nil)
		s.mockCommands.EXPECT().
			Purchase(gomock.Any(), offerID, s.customer.ID, quantity).
			Return(nil, commands.ErrOfferNotPurchasable)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "not currently purchasable")
	})

	s.Run("code space exhausted", func() {
		s.mockCustomers.EXPECT().GetByAccountID(gomock.Any(), s.accountID).Return(s.customer, nil)
		s.mockCommands.EXPECT().
			Purchase(gomock.Any(), offerID, s.customer.ID, quantity).
			Return(nil, commands.ErrCodeSpaceExhausted)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		s.Equal(http.StatusServiceUnavailable, w.Code)
	})

	s.Run("unexpected error", func() {
		s.mockCustomers.EXPECT().GetByAccountID(gomock.Any(), s.accountID).Return(s.customer, nil)
		s.mockCommands.EXPECT().
			Purchase(gomock.Any(), offerID, s.customer.ID, quantity).
			Return(nil, commands.ErrDatabaseOperationFailed)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		s.Equal(http.StatusInternalServerError, w.Code)
	})
}
