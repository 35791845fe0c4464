package v1

import (
	"net/http"
	"strconv"

	"initiative-discovery-backend/internal/delivery/http/response"
	"initiative-discovery-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	initiativeUC domain.InitiativeUsecase
}

func NewSearchHandler(protected *gin.RouterGroup, initiativeUC domain.InitiativeUsecase) {
	handler := &SearchHandler{initiativeUC: initiativeUC}

	protected.GET("/search", handler.Search)
}

// Search godoc
// @Summary      Search initiatives
// @Description  Combine free-text, skill, industry, practice area, time commitment and status filters
// @Tags         search
// @Produce      json
// @Param        q                query     string    false  "Substring matched against title and description"
// @Param        skills           query     []string  false  "Skills, any match"  collectionFormat(multi)
// @Param        practice_area    query     string    false  "Exact practice area"
// @Param        industries       query     []string  false  "Industries, any match"  collectionFormat(multi)
// @Param        time_commitment  query     string    false  "Exact time commitment"
// @Param        skip             query     int       false  "Records to skip"
// @Param        limit            query     int       false  "Page size (1-100)"
// @Success      200              {object}  response.Response
// @Failure      400              {object}  response.Response
// @Router       /search [get]
// @Security     BearerAuth
func (h *SearchHandler) Search(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	criteria := domain.SearchCriteria{
		Query:          c.Query("q"),
		Skills:         c.QueryArray("skills"),
		PracticeArea:   c.Query("practice_area"),
		Industries:     c.QueryArray("industries"),
		TimeCommitment: c.Query("time_commitment"),
		Skip:           skip,
		Limit:          limit,
	}

	list, err := h.initiativeUC.Search(c.Request.Context(), criteria)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Search results", list)
}
