package v1

import (
	"net/http"
	"strconv"

	"initiative-discovery-backend/internal/delivery/http/middleware"
	"initiative-discovery-backend/internal/delivery/http/response"
	"initiative-discovery-backend/internal/domain"
	"initiative-discovery-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUC domain.UserUsecase
}

func NewUserHandler(protected *gin.RouterGroup, userUC domain.UserUsecase) {
	handler := &UserHandler{userUC: userUC}

	users := protected.Group("/users")
	{
		users.GET("/me", handler.GetMe)
		users.PUT("/me", handler.UpdateMe)
		users.GET("/:id", handler.GetByID)
		users.GET("", handler.List)
		users.DELETE("/:id", handler.Delete)
	}
}

type UpdateProfileRequest struct {
	FullName        string   `json:"full_name" binding:"required"`
	Bio             string   `json:"bio"`
	Practice        string   `json:"practice"`
	Skills          []string `json:"skills"`
	Interests       []string `json:"interests"`
	Industries      []string `json:"industries"`
	Certifications  []string `json:"certifications"`
	ExperienceYears *int     `json:"experience_years" binding:"omitempty,gte=0,lte=60"`
}

// GetMe godoc
// @Summary      Get current user profile
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /users/me [get]
// @Security     BearerAuth
func (h *UserHandler) GetMe(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	user, err := h.userUC.GetByID(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Current user", user)
}

// UpdateMe godoc
// @Summary      Update current user profile
// @Description  Update profile fields including the matching tag sets
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      UpdateProfileRequest  true  "Profile JSON"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Router       /users/me [put]
// @Security     BearerAuth
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	// The ID always comes from the token, never the payload.
	user := &domain.User{
		ID:              middleware.CurrentUserID(c),
		FullName:        req.FullName,
		Bio:             req.Bio,
		Practice:        req.Practice,
		Skills:          req.Skills,
		Interests:       req.Interests,
		Industries:      req.Industries,
		Certifications:  req.Certifications,
		ExperienceYears: req.ExperienceYears,
	}

	updated, err := h.userUC.UpdateProfile(c.Request.Context(), user)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", updated)
}

// GetByID godoc
// @Summary      Get user by ID
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /users/{id} [get]
// @Security     BearerAuth
func (h *UserHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	user, err := h.userUC.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User details", user)
}

// List godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Param        page       query     int  false  "Page number"
// @Param        page_size  query     int  false  "Page size"
// @Success      200        {object}  response.Response
// @Router       /users [get]
// @Security     BearerAuth
func (h *UserHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	users, total, err := h.userUC.List(c.Request.Context(), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User list", gin.H{
		"users":     users,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// Delete godoc
// @Summary      Delete user account
// @Description  Delete an account and its initiatives and engagement records (self or admin only)
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /users/{id} [delete]
// @Security     BearerAuth
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	role := c.GetString(string(domain.KeyUserRole))
	if err := h.userUC.Delete(c.Request.Context(), middleware.CurrentUserID(c), role, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Account deleted successfully", nil)
}
