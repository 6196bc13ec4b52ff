package api

import (
	"errors"
	"net/http"

	reqdto "cuponera/internal/handler/dto/request"
	resdto "cuponera/internal/handler/dto/response"
	"cuponera/internal/handler/middleware"
	"cuponera/internal/usecase/commands"
	"cuponera/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PurchaseHandler struct {
	purchaseCommands commands.PurchaseCommands
	customerQueries  queries.CustomerQueries
}

func NewPurchaseHandler(
	purchaseCommands commands.PurchaseCommands,
	customerQueries queries.CustomerQueries,
) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseCommands: purchaseCommands,
		customerQueries:  customerQueries,
	}
}

// @Summary Purchase an offer
// @Description Buy one or more coupons for an offer
// @Tags purchases
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePurchaseRequest true "Purchase request"
// @Success 201 {object} resdto.PurchaseResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /purchases [post]
func (h *PurchaseHandler) CreatePurchase(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreatePurchaseRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	customer, err := h.customerQueries.GetByAccountID(c.Request.Context(), accountID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrCustomerNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Customer not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	result, err := h.purchaseCommands.Purchase(c.Request.Context(), req.OfferID, customer.ID, req.GetQuantity())
	if err != nil {
		var insufficientErr *commands.InsufficientInventoryError
		switch {
		case errors.Is(err, commands.ErrOfferNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Offer not found",
			})
		case errors.Is(err, commands.ErrCustomerNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Customer not found",
			})
		case errors.As(err, &insufficientErr):
			c.JSON(http.StatusConflict, gin.H{
				"error":     "Insufficient inventory",
				"remaining": insufficientErr.Remaining,
			})
		case errors.Is(err, commands.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Quantity must be at least 1",
			})
		case errors.Is(err, commands.ErrOfferNotPurchasable):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Offer is not currently purchasable",
			})
		case errors.Is(err, commands.ErrCodeSpaceExhausted):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Could not allocate a coupon code, try again",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPurchaseResult(result))
}
