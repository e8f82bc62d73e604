package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"doggyrank"
	"doggyrank/internal/service"

	"github.com/gin-gonic/gin"
)

const msgUserNotFound = "User not found!"

// UpdateUserRequest carries the profile fields to change. Omitted fields stay as they are.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=1"`
	Photo    *string `json:"photo"`
	Bio      *string `json:"bio"`
}

// parseIDParam reads :id as a positive integer, writing 400 otherwise.
func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, doggyrank.ErrorResponse{
			Message: msgInvalidRequest,
			Err:     "id must be a positive integer",
		})
		return 0, false
	}
	return id, true
}

// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "user id"
// @Success      200  {object}  models.User
// @Failure      400  {object}  doggyrank.ErrorResponse
// @Failure      404  {object}  doggyrank.ErrorResponse
// @Failure      500  {object}  doggyrank.ErrorResponse
// @Router       /users/{id} [get]
func (h *Handler) getUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	u, err := h.services.GetUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, doggyrank.ErrorResponse{Message: msgUserNotFound})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, msgSomethingWrong, "user_get_failed", err, "user_id", id)
		return
	}
	c.JSON(http.StatusOK, u)
}

// @Summary      Update a user
// @Description  Only the owner of the token may edit the profile. A new password is re-hashed.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id     path      int                true  "user id"
// @Param        input  body      UpdateUserRequest  true  "fields to change"
// @Success      200    {object}  models.User
// @Failure      400    {object}  doggyrank.ErrorResponse
// @Failure      401    {object}  doggyrank.ErrorResponse
// @Failure      403    {object}  doggyrank.ErrorResponse
// @Failure      404    {object}  doggyrank.ErrorResponse
// @Failure      409    {object}  doggyrank.ErrorResponse
// @Failure      500    {object}  doggyrank.ErrorResponse
// @Router       /users/{id} [put]
// @Router       /users/{id} [patch]
// @Security     BearerAuth
func (h *Handler) updateUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if uid, ok := currentUserID(c); !ok || uid != id {
		c.JSON(http.StatusForbidden, doggyrank.ErrorResponse{Message: "forbidden"})
		return
	}

	var input UpdateUserRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	u, err := h.services.UpdateUser(c.Request.Context(), id, service.UserUpdate{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Photo:    input.Photo,
		Bio:      input.Bio,
	})
	switch {
	case err == nil:
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, doggyrank.ErrorResponse{Message: msgUserNotFound})
		return
	case errors.Is(err, service.ErrEmailTaken):
		c.JSON(http.StatusConflict, doggyrank.ErrorResponse{Message: err.Error()})
		return
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, doggyrank.ErrorResponse{Message: msgInvalidRequest, Err: err.Error()})
		return
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, msgSomethingWrong, "user_update_failed", err, "user_id", id)
		return
	}

	c.JSON(http.StatusOK, u)
}

// @Summary      List a user's points
// @Description  One entry per breed the user has voted on, ordered by breed.
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "user id"
// @Success      200  {object}  map[string]interface{}  "count, points"
// @Failure      400  {object}  doggyrank.ErrorResponse
// @Failure      500  {object}  doggyrank.ErrorResponse
// @Router       /users/{id}/points [get]
func (h *Handler) listUserPoints(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	points, err := h.services.ListPoints(c.Request.Context(), id)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, msgSomethingWrong, "user_points_failed", err, "user_id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":  len(points),
		"points": points,
	})
}
