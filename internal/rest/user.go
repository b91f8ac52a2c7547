package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vishnukothappllii/Blogging-Platform/domain"
	"github.com/vishnukothappllii/Blogging-Platform/internal/rest/request"
	"github.com/vishnukothappllii/Blogging-Platform/internal/rest/response"
)

// UserHandler represent the httphandler for accounts
type UserHandler struct {
	Service domain.UserUsecase
}

func NewUserHandler(svc domain.UserUsecase) *UserHandler {
	return &UserHandler{
		Service: svc,
	}
}

// Register creates a new account.
func (h *UserHandler) Register(c *gin.Context) {
	var req request.Register
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	u, err := h.Service.Register(c.Request.Context(), req.Name, req.Username, req.Email, req.Password)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, response.NewUserFromDomain(&u))
}

// Login verifies credentials and returns a token.
func (h *UserHandler) Login(c *gin.Context) {
	var req request.Login
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.Service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		// do not leak whether the username or the password was wrong
		c.JSON(http.StatusUnauthorized, ResponseError{Message: "invalid credentials"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// GetProfile returns one account's public profile.
func (h *UserHandler) GetProfile(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	u, err := h.Service.GetProfile(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewUserFromDomain(&u))
}

// UpdateProfile rewrites the caller's profile fields.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req request.UpdateProfile
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	uid, ok := authedUserID(c)
	if !ok {
		return
	}

	u := req.ToDomain(uid)
	if err := h.Service.UpdateProfile(c.Request.Context(), &u); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewUserFromDomain(&u))
}

// EditPassword verifies the old password and stores the new one.
func (h *UserHandler) EditPassword(c *gin.Context) {
	var req request.EditPassword
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	uid, ok := authedUserID(c)
	if !ok {
		return
	}

	if err := h.Service.EditPassword(c.Request.Context(), uid, req.OldPassword, req.NewPassword); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}

// Delete removes the caller's account and cascades over everything it
// touches.
func (h *UserHandler) Delete(c *gin.Context) {
	uid, ok := authedUserID(c)
	if !ok {
		return
	}

	if err := h.Service.Delete(c.Request.Context(), uid); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
