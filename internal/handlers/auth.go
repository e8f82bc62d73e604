package handlers

import (
	"errors"
	"net/http"

	"doggyrank"
	"doggyrank/internal/service"

	"github.com/gin-gonic/gin"
)

// SignUpRequest is the body of POST /users.
type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email" example:"rex@example.com"`
	Password string `json:"password" binding:"required" example:"s3cret"`
	Name     string `json:"name" example:"Rex Owner"`
}

// SignInRequest is the body of POST /auth/sign-in.
type SignInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        input  body      SignUpRequest  true  "account"
// @Success      201    {object}  map[string]interface{}  "id, email"
// @Failure      400    {object}  doggyrank.ErrorResponse
// @Failure      409    {object}  doggyrank.ErrorResponse
// @Failure      500    {object}  doggyrank.ErrorResponse
// @Router       /users [post]
func (h *Handler) signUp(c *gin.Context) {
	var input SignUpRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	id, err := h.services.SignUp(c.Request.Context(), service.SignUpInput{
		Email:    input.Email,
		Password: input.Password,
		Name:     input.Name,
	})
	switch {
	case err == nil:
	case errors.Is(err, service.ErrEmailTaken):
		c.JSON(http.StatusConflict, doggyrank.ErrorResponse{Message: err.Error()})
		return
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, doggyrank.ErrorResponse{Message: msgInvalidRequest, Err: err.Error()})
		return
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, msgSomethingWrong, "user_sign_up_failed", err, "email", input.Email)
		return
	}

	if h.log != nil {
		h.log.Infow("user_created", "user_id", id)
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "email": input.Email})
}

// @Summary      Sign in
// @Description  Exchanges email and password for a bearer token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input  body      SignInRequest  true  "credentials"
// @Success      200    {object}  doggyrank.TokenResponse
// @Failure      400    {object}  doggyrank.ErrorResponse
// @Failure      401    {object}  doggyrank.ErrorResponse
// @Router       /auth/sign-in [post]
func (h *Handler) signIn(c *gin.Context) {
	var input SignInRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	token, err := h.services.GenerateToken(c.Request.Context(), input.Email, input.Password)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrInvalidPassword):
		if h.log != nil {
			h.log.Infow("auth_sign_in_failed", "email", input.Email, "err", err)
		}
		c.JSON(http.StatusUnauthorized, doggyrank.ErrorResponse{Message: "invalid credentials"})
		return
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, msgSomethingWrong, "auth_sign_in_error", err)
		return
	}

	c.JSON(http.StatusOK, doggyrank.TokenResponse{Token: token})
}
