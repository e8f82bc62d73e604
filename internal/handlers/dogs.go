package handlers

import (
	"net/http"

	"doggyrank"

	"github.com/gin-gonic/gin"
)

const msgDogFailed = "Oops! There was an error getting your dog. Please try again"

// @Summary      Random dog
// @Description  Fetches a random dog picture and the breed parsed from its URL.
// @Tags         dogs
// @Produce      json
// @Success      200  {object}  doggyrank.DogImage
// @Failure      500  {object}  doggyrank.ErrorResponse
// @Router       /getdog [get]
func (h *Handler) getDog(c *gin.Context) {
	img, err := h.services.RandomDog(c.Request.Context())
	if err != nil {
		if h.log != nil {
			h.log.Errorw("dog_fetch_failed", "err", err)
		}
		c.JSON(http.StatusInternalServerError, doggyrank.ErrorResponse{Message: msgDogFailed})
		return
	}
	c.JSON(http.StatusOK, img)
}
