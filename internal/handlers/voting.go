package handlers

import (
	"context"
	"errors"
	"net/http"

	"doggyrank"
	"doggyrank/internal/models"
	"doggyrank/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	statusOK = "ok"

	msgSomethingWrong = "something went wrong"
)

// logAndJSONError logs err under logKey and writes {message, err}.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	resp := doggyrank.ErrorResponse{Message: userMsg}
	if err != nil {
		resp.Err = err.Error()
	}
	c.JSON(httpCode, resp)
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled, true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		}
		c.JSON(http.StatusBadRequest, doggyrank.ErrorResponse{
			Message: msgInvalidRequest,
			Err:     describeBindError(err),
		})
		return false
	}
	return true
}

// VoteRequest is the body of /voteup and /votedown.
type VoteRequest struct {
	UserID int64  `json:"user_id" binding:"required,gt=0" example:"1"`
	Breed  string `json:"breed" binding:"required" example:"maltese"`
}

type voteFunc func(ctx context.Context, userID int64, breed string) (models.Points, error)

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Vote a breed up
// @Description  Adds 5 points to the (user, breed) pair, creating the dog and points row when missing.
// @Tags         votes
// @Accept       json
// @Produce      json
// @Param        input  body      VoteRequest  true  "user and breed"
// @Success      200    {object}  models.Points
// @Failure      400    {object}  doggyrank.ErrorResponse
// @Failure      500    {object}  doggyrank.ErrorResponse
// @Router       /voteup [post]
func (h *Handler) voteUp(c *gin.Context) {
	h.vote(c, "up", h.services.VoteUp)
}

// @Summary      Vote a breed down
// @Description  Subtracts 3 points from the (user, breed) pair, creating the dog and points row when missing.
// @Tags         votes
// @Accept       json
// @Produce      json
// @Param        input  body      VoteRequest  true  "user and breed"
// @Success      200    {object}  models.Points
// @Failure      400    {object}  doggyrank.ErrorResponse
// @Failure      500    {object}  doggyrank.ErrorResponse
// @Router       /votedown [post]
func (h *Handler) voteDown(c *gin.Context) {
	h.vote(c, "down", h.services.VoteDown)
}

func (h *Handler) vote(c *gin.Context, direction string, apply voteFunc) {
	var req VoteRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	rec, err := apply(c.Request.Context(), req.UserID, req.Breed)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, doggyrank.ErrorResponse{
				Message: msgInvalidRequest,
				Err:     err.Error(),
			})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, msgSomethingWrong, "vote_failed", err,
			"direction", direction, "user_id", req.UserID, "breed", req.Breed)
		return
	}

	if h.log != nil {
		h.log.Infow("vote_applied", "direction", direction, "user_id", rec.UserID, "dog_id", rec.DogID, "points", rec.Points)
	}
	c.JSON(http.StatusOK, rec)
}
