package http

import (
	"errors"
	"net/http"

	"blogicum/internal/usecase"
	"blogicum/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	userUseCase usecase.UserUseCase
	postUseCase usecase.PostUseCase
	logger      *logger.Logger
}

func NewProfileHandler(userUseCase usecase.UserUseCase, postUseCase usecase.PostUseCase, logger *logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		userUseCase: userUseCase,
		postUseCase: postUseCase,
		logger:      logger,
	}
}

type UpdateProfileRequest struct {
	Username  string `json:"username" binding:"required,min=3,max=150"`
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// GetProfile godoc
// @Summary      Get a user profile
// @Description  Profile with a paginated list of the user's posts. Owners see all their posts, visitors only visible ones.
// @Tags         profiles
// @Produce      json
// @Param        username path string true "Username"
// @Param        page query int false "Page number (1-based)"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /profiles/{username} [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	username := c.Param("username")
	actorID := c.GetString("user_id")

	user, page, err := h.postUseCase.ListByProfile(username, actorID, pageParam(c))
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		h.logger.Error("Failed to get profile %s: %v", username, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": user, "posts": page.Posts, "total": page.Total, "page": page.Page, "total_pages": page.TotalPages})
}

// UpdateProfile godoc
// @Summary      Edit a profile
// @Description  Update first/last name, username and email. Self only; others get 404.
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        username path string true "Username"
// @Param        request body UpdateProfileRequest true "Profile data"
// @Success      200  {object}  entity.User
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /profiles/{username} [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	username := c.Param("username")
	actorID := c.GetString("user_id")

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userUseCase.UpdateProfile(actorID, username, usecase.UpdateProfileInput{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		if errors.Is(err, usecase.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "username or email already taken"})
			return
		}
		h.logger.Error("Failed to update profile %s: %v", username, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, user)
}
