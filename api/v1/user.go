package v1

import (
	"net/http"

	"github.com/commplan-simple/dto"
	"github.com/commplan-simple/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserController handles user-related API endpoints
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new user controller
func NewUserController(db *gorm.DB, logger *zap.Logger) *UserController {
	return &UserController{
		userService: services.NewUserService(db, logger),
	}
}

// RegisterRoutes registers user routes
func (ctl *UserController) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.GET("", ctl.ListUsers)
		users.POST("", ctl.CreateUser)
		users.GET("/:id", ctl.GetUser)
		users.PUT("/:id", ctl.UpdateUser)
		users.DELETE("/:id", ctl.DeleteUser)
	}
}

// ListUsers retrieves all users
func (ctl *UserController) ListUsers(c *gin.Context) {
	users, err := ctl.userService.ListUsers()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, users)
}

// GetUser retrieves a single user
func (ctl *UserController) GetUser(c *gin.Context) {
	user, err := ctl.userService.GetUser(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, user)
}

// CreateUser creates a new user
func (ctl *UserController) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	user, err := ctl.userService.CreateUser(req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, user)
}

// UpdateUser applies a partial update to a user
func (ctl *UserController) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	user, err := ctl.userService.UpdateUser(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, user)
}

// DeleteUser removes a user
func (ctl *UserController) DeleteUser(c *gin.Context) {
	if err := ctl.userService.DeleteUser(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "User deleted successfully"})
}
