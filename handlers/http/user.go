package httpHandler

import (
	"errors"
	"fmt"
	"net/http"

	"blog-server/schemas"
	"blog-server/usecases"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type UserHandler struct {
	useCase *usecases.UserUseCase
	log     *logrus.Logger
}

func NewUserHandler(useCase *usecases.UserUseCase, log *logrus.Logger) *UserHandler {
	return &UserHandler{
		useCase: useCase,
		log:     log,
	}
}

// CreateUser handles POST /user
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req schemas.UserRequest
	if !bindBody(c, &req) {
		return
	}

	user := req.ToEntity()
	err := h.useCase.CreateUser(c.Request.Context(), user, req.PlainPassword())
	if errors.Is(err, usecases.ErrEmailTaken) {
		c.JSON(http.StatusConflict, gin.H{
			"error": err.Error(),
		})
		return
	}
	if err != nil {
		internalError(c, h.log, "Failed to create user", err)
		return
	}

	c.JSON(http.StatusCreated, schemas.NewShowUser(user))
}

// GetAllUsers handles GET /user. An empty list is still returned, with a 404 status.
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.useCase.GetAllUsers(c.Request.Context())
	if err != nil {
		internalError(c, h.log, "Failed to retrieve users", err)
		return
	}

	status := http.StatusOK
	if len(users) == 0 {
		status = http.StatusNotFound
	}
	c.JSON(status, schemas.NewShowUsers(users))
}

// GetUser handles GET /user/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	user, err := h.useCase.GetUser(c.Request.Context(), id)
	if errors.Is(err, usecases.ErrUserNotFound) {
		userNotFound(c, id)
		return
	}
	if err != nil {
		internalError(c, h.log, "Failed to retrieve user", err)
		return
	}

	c.JSON(http.StatusOK, schemas.NewShowUser(user))
}

// UpdateUser handles PUT /user/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var req schemas.UserUpdateRequest
	if !bindBody(c, &req) {
		return
	}

	err := h.useCase.UpdateUser(c.Request.Context(), req.ToEntity(id))
	switch {
	case errors.Is(err, usecases.ErrUserNotFound):
		userNotFound(c, id)
		return
	case errors.Is(err, usecases.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{
			"error": err.Error(),
		})
		return
	case err != nil:
		internalError(c, h.log, "Failed to update user", err)
		return
	}

	c.JSON(http.StatusAccepted, "updated")
}

// DeleteUser handles DELETE /user/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	err := h.useCase.DeleteUser(c.Request.Context(), id)
	if errors.Is(err, usecases.ErrUserNotFound) {
		userNotFound(c, id)
		return
	}
	if err != nil {
		internalError(c, h.log, "Failed to delete user", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func userNotFound(c *gin.Context, id uint) {
	c.JSON(http.StatusNotFound, gin.H{
		"error": fmt.Sprintf("No User found with id %d", id),
	})
}
