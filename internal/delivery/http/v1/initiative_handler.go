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

type InitiativeHandler struct {
	initiativeUC domain.InitiativeUsecase
}

func NewInitiativeHandler(protected *gin.RouterGroup, initiativeUC domain.InitiativeUsecase) {
	handler := &InitiativeHandler{initiativeUC: initiativeUC}

	initiatives := protected.Group("/initiatives")
	{
		initiatives.POST("", handler.Create)
		initiatives.GET("", handler.List)
		initiatives.GET("/:id", handler.GetDetails)
		initiatives.PUT("/:id", handler.Update)
		initiatives.DELETE("/:id", handler.Delete)
		initiatives.GET("/my/initiatives", handler.ListMine)
	}
}

type InitiativeRequest struct {
	Title           string   `json:"title" binding:"required"`
	Description     string   `json:"description" binding:"required"`
	PracticeArea    string   `json:"practice_area"`
	SkillsNeeded    []string `json:"skills_needed"`
	Industries      []string `json:"industries"`
	Tags            []string `json:"tags"`
	TimeCommitment  string   `json:"time_commitment"`
	Duration        string   `json:"duration" binding:"omitempty,oneof=short_term ongoing fixed_duration"`
	DurationDetails string   `json:"duration_details"`
	RoleType        string   `json:"role_type"`
	ContactPerson   string   `json:"contact_person"`
	ContactEmail    string   `json:"contact_email" binding:"omitempty,email"`
	Status          string   `json:"status" binding:"omitempty,oneof=open active full closed"`
}

func (req *InitiativeRequest) toDomain() *domain.Initiative {
	return &domain.Initiative{
		Title:           req.Title,
		Description:     req.Description,
		PracticeArea:    req.PracticeArea,
		SkillsNeeded:    req.SkillsNeeded,
		Industries:      req.Industries,
		Tags:            req.Tags,
		TimeCommitment:  req.TimeCommitment,
		Duration:        req.Duration,
		DurationDetails: req.DurationDetails,
		RoleType:        req.RoleType,
		ContactPerson:   req.ContactPerson,
		ContactEmail:    req.ContactEmail,
		Status:          req.Status,
	}
}

// Create godoc
// @Summary      Create initiative
// @Description  Post a new initiative (leader or admin only)
// @Tags         initiatives
// @Accept       json
// @Produce      json
// @Param        body  body      InitiativeRequest  true  "Initiative JSON"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Router       /initiatives [post]
// @Security     BearerAuth
func (h *InitiativeHandler) Create(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleLeader && role != domain.RoleAdmin {
		c.Error(apperror.Forbidden("Only leaders or admins can create initiatives"))
		return
	}

	var req InitiativeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	ini := req.toDomain()
	if err := h.initiativeUC.Create(c.Request.Context(), middleware.CurrentUserID(c), ini); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Initiative created", ini)
}

// List godoc
// @Summary      List initiatives
// @Description  List initiatives with optional status and practice area filters
// @Tags         initiatives
// @Produce      json
// @Param        status         query     string  false  "Status filter"
// @Param        practice_area  query     string  false  "Practice area filter"
// @Param        skip           query     int     false  "Records to skip"
// @Param        limit          query     int     false  "Page size (1-100)"
// @Success      200            {object}  response.Response
// @Router       /initiatives [get]
// @Security     BearerAuth
func (h *InitiativeHandler) List(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	criteria := domain.SearchCriteria{
		Status:       c.Query("status"),
		PracticeArea: c.Query("practice_area"),
		Skip:         skip,
		Limit:        limit,
	}

	list, err := h.initiativeUC.List(c.Request.Context(), criteria)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Initiative list", list)
}

// GetDetails godoc
// @Summary      Get initiative by ID
// @Description  Get one initiative; the view is recorded for the caller
// @Tags         initiatives
// @Produce      json
// @Param        id   path      int  true  "Initiative ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /initiatives/{id} [get]
// @Security     BearerAuth
func (h *InitiativeHandler) GetDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	ini, err := h.initiativeUC.GetDetails(c.Request.Context(), id, middleware.CurrentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Initiative details", ini)
}

// Update godoc
// @Summary      Update initiative
// @Description  Update an initiative (owner or admin only)
// @Tags         initiatives
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "Initiative ID"
// @Param        body  body      InitiativeRequest  true  "Initiative JSON"
// @Success      200   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /initiatives/{id} [put]
// @Security     BearerAuth
func (h *InitiativeHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	var req InitiativeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	ini := req.toDomain()
	ini.ID = id

	role := c.GetString(string(domain.KeyUserRole))
	updated, err := h.initiativeUC.Update(c.Request.Context(), middleware.CurrentUserID(c), role, ini)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Initiative updated", updated)
}

// Delete godoc
// @Summary      Delete initiative
// @Description  Delete an initiative and its engagement records (owner or admin only)
// @Tags         initiatives
// @Produce      json
// @Param        id   path      int  true  "Initiative ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /initiatives/{id} [delete]
// @Security     BearerAuth
func (h *InitiativeHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	role := c.GetString(string(domain.KeyUserRole))
	if err := h.initiativeUC.Delete(c.Request.Context(), middleware.CurrentUserID(c), role, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Initiative deleted successfully", nil)
}

// ListMine godoc
// @Summary      List my initiatives
// @Description  List initiatives created by the current user
// @Tags         initiatives
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /initiatives/my/initiatives [get]
// @Security     BearerAuth
func (h *InitiativeHandler) ListMine(c *gin.Context) {
	initiatives, err := h.initiativeUC.ListByOwner(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "My initiatives", initiatives)
}
