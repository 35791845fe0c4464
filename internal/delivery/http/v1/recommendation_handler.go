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

type RecommendationHandler struct {
	recommendationUC domain.RecommendationUsecase
}

func NewRecommendationHandler(protected *gin.RouterGroup, recommendationUC domain.RecommendationUsecase) {
	handler := &RecommendationHandler{recommendationUC: recommendationUC}

	recommendations := protected.Group("/recommendations")
	{
		recommendations.GET("", handler.ForMe)
		recommendations.GET("/user/:id", handler.ForUser)
	}
}

// ForMe godoc
// @Summary      Get recommendations for the current user
// @Description  Rank open initiatives against the caller's profile
// @Tags         recommendations
// @Produce      json
// @Param        limit  query     int  false  "Maximum results (1-50, default 10)"
// @Success      200    {object}  response.Response
// @Router       /recommendations [get]
// @Security     BearerAuth
func (h *RecommendationHandler) ForMe(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	recs, err := h.recommendationUC.ForUser(c.Request.Context(), middleware.CurrentUserID(c), limit)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Recommendations", recs)
}

// ForUser godoc
// @Summary      Get recommendations for another user
// @Description  Rank open initiatives against a given user's profile (leader or admin only)
// @Tags         recommendations
// @Produce      json
// @Param        id     path      int  true   "User ID"
// @Param        limit  query     int  false  "Maximum results (1-50, default 10)"
// @Success      200    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /recommendations/user/{id} [get]
// @Security     BearerAuth
func (h *RecommendationHandler) ForUser(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleLeader && role != domain.RoleAdmin {
		c.Error(apperror.Forbidden("Only leaders or admins can view other users' recommendations"))
		return
	}

	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	recs, err := h.recommendationUC.ForUser(c.Request.Context(), userID, limit)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Recommendations", recs)
}
