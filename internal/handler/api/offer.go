package api

import (
	"net/http"

	resdto "cuponera/internal/handler/dto/response"
	"cuponera/internal/infra"
	"cuponera/internal/pkg/clock"
	"cuponera/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OfferHandler struct {
	offerQueries queries.OfferQueries
	clock        clock.Clock
}

func NewOfferHandler(offerQueries queries.OfferQueries, clock clock.Clock) *OfferHandler {
	return &OfferHandler{
		offerQueries: offerQueries,
		clock:        clock,
	}
}

// @Summary List active offers
// @Description List approved offers currently on sale, grouped by category
// @Tags offers
// @Produce json
// @Success 200 {object} resdto.CatalogResponse
// @Router /offers [get]
func (h *OfferHandler) ListOffers(c *gin.Context) {
	result := h.offerQueries.Catalog(c.Request.Context(), h.clock.Now())
	c.JSON(http.StatusOK, resdto.FromCatalogResult(result))
}

// @Summary Get offer detail
// @Description Get one offer with its sold and remaining counts
// @Tags offers
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {object} resdto.OfferDetailResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /offers/{id} [get]
func (h *OfferHandler) GetOffer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid offer ID format",
		})
		return
	}

	detail, err := h.offerQueries.GetDetail(c.Request.Context(), id)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Offer not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromOfferDetailView(detail))
}
