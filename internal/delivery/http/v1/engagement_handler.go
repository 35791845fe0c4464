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

type EngagementHandler struct {
	engagementUC domain.EngagementUsecase
}

func NewEngagementHandler(protected *gin.RouterGroup, engagementUC domain.EngagementUsecase) {
	handler := &EngagementHandler{engagementUC: engagementUC}

	engagement := protected.Group("/engagement")
	{
		engagement.POST("/save", handler.Save)
		engagement.DELETE("/save/:initiative_id", handler.Unsave)
		engagement.GET("/saved", handler.ListSaved)
		engagement.POST("/apply", handler.Apply)
		engagement.GET("/applications", handler.MyApplications)
		engagement.GET("/initiative/:id/applications", handler.InitiativeApplications)
		engagement.PATCH("/applications/:id/status", handler.SetApplicationStatus)
	}
}

type SaveRequest struct {
	InitiativeID int64 `json:"initiative_id" binding:"required"`
}

type ApplyRequest struct {
	InitiativeID int64  `json:"initiative_id" binding:"required"`
	Message      string `json:"message"`
}

type ApplicationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=accepted rejected"`
}

// Save godoc
// @Summary      Save an initiative
// @Description  Bookmark an initiative for later; saving twice is a conflict
// @Tags         engagement
// @Accept       json
// @Produce      json
// @Param        body  body      SaveRequest  true  "Save JSON"
// @Success      201   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /engagement/save [post]
// @Security     BearerAuth
func (h *EngagementHandler) Save(c *gin.Context) {
	var req SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.engagementUC.Save(c.Request.Context(), middleware.CurrentUserID(c), req.InitiativeID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Initiative saved", nil)
}

// Unsave godoc
// @Summary      Remove a saved initiative
// @Tags         engagement
// @Produce      json
// @Param        initiative_id  path      int  true  "Initiative ID"
// @Success      200            {object}  response.Response
// @Failure      404            {object}  response.Response
// @Router       /engagement/save/{initiative_id} [delete]
// @Security     BearerAuth
func (h *EngagementHandler) Unsave(c *gin.Context) {
	initiativeID, err := strconv.ParseInt(c.Param("initiative_id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	if err := h.engagementUC.Unsave(c.Request.Context(), middleware.CurrentUserID(c), initiativeID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Initiative removed from saved", nil)
}

// ListSaved godoc
// @Summary      List saved initiatives
// @Tags         engagement
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /engagement/saved [get]
// @Security     BearerAuth
func (h *EngagementHandler) ListSaved(c *gin.Context) {
	initiatives, err := h.engagementUC.ListSaved(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Saved initiatives", initiatives)
}

// Apply godoc
// @Summary      Apply to an initiative
// @Description  Submit an application with an optional message; applying twice is a conflict
// @Tags         engagement
// @Accept       json
// @Produce      json
// @Param        body  body      ApplyRequest  true  "Application JSON"
// @Success      201   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /engagement/apply [post]
// @Security     BearerAuth
func (h *EngagementHandler) Apply(c *gin.Context) {
	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	application, err := h.engagementUC.Apply(c.Request.Context(), middleware.CurrentUserID(c), req.InitiativeID, req.Message)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted", application)
}

// MyApplications godoc
// @Summary      List my applications
// @Tags         engagement
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /engagement/applications [get]
// @Security     BearerAuth
func (h *EngagementHandler) MyApplications(c *gin.Context) {
	applications, err := h.engagementUC.MyApplications(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "My applications", applications)
}

// InitiativeApplications godoc
// @Summary      List applications for an initiative
// @Description  List everyone who applied to an initiative (owner or admin only)
// @Tags         engagement
// @Produce      json
// @Param        id   path      int  true  "Initiative ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /engagement/initiative/{id}/applications [get]
// @Security     BearerAuth
func (h *EngagementHandler) InitiativeApplications(c *gin.Context) {
	initiativeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	role := c.GetString(string(domain.KeyUserRole))
	applications, err := h.engagementUC.InitiativeApplications(c.Request.Context(), middleware.CurrentUserID(c), role, initiativeID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Initiative applications", applications)
}

// SetApplicationStatus godoc
// @Summary      Accept or reject an application
// @Description  Update an application's status (initiative owner or admin only)
// @Tags         engagement
// @Accept       json
// @Produce      json
// @Param        id    path      int                       true  "Application ID"
// @Param        body  body      ApplicationStatusRequest  true  "Status JSON"
// @Success      200   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /engagement/applications/{id}/status [patch]
// @Security     BearerAuth
func (h *EngagementHandler) SetApplicationStatus(c *gin.Context) {
	applicationID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	var req ApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	role := c.GetString(string(domain.KeyUserRole))
	if err := h.engagementUC.SetApplicationStatus(c.Request.Context(), middleware.CurrentUserID(c), role, applicationID, req.Status); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application status updated", nil)
}
