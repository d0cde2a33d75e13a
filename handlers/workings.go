package handlers

import (
	"errors"
	"net/http"

	"goodjob/models"
	"goodjob/services/workings"
	"goodjob/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type WorkingsHandler struct {
	Service workings.WorkingService
}

func NewWorkingsHandler(svc workings.WorkingService) *WorkingsHandler {
	return &WorkingsHandler{Service: svc}
}

// SearchByCompanyHandler handles GET /workings/search_by/company/group_by/company.
func (h *WorkingsHandler) SearchByCompanyHandler(c *gin.Context) {
	groups, err := h.Service.SearchByCompany(c.Request.Context(), groupQuery(c, "company"))
	if err != nil {
		respondWorkingsError(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

// SearchByJobTitleHandler handles GET /workings/search_by/job_title/group_by/company.
func (h *WorkingsHandler) SearchByJobTitleHandler(c *gin.Context) {
	groups, err := h.Service.SearchByJobTitle(c.Request.Context(), groupQuery(c, "job_title"))
	if err != nil {
		respondWorkingsError(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

// ListHandler handles GET /workings.
func (h *WorkingsHandler) ListHandler(c *gin.Context) {
	list, err := h.Service.List(c.Request.Context(), listQuery(c))
	if err != nil {
		respondWorkingsError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// ExtremeHandler handles GET /workings/extreme.
func (h *WorkingsHandler) ExtremeHandler(c *gin.Context) {
	list, err := h.Service.ListExtremes(c.Request.Context(), listQuery(c))
	if err != nil {
		respondWorkingsError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// UpdateStatusHandler handles PATCH /workings/:id for the authenticated author.
func (h *WorkingsHandler) UpdateStatusHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	userID := c.GetString("userID")
	if userID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "missing user")
		return
	}

	var req models.StatusUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Invalid request body", err.Error())
		return
	}

	if err := h.Service.UpdateStatus(c.Request.Context(), userID, id, req.Status); err != nil {
		respondWorkingsError(c, err)
		return
	}
	logger.Info("Working status changed", zap.String("id", id), zap.String("status", req.Status))
	c.JSON(http.StatusOK, gin.H{"success": true, "status": req.Status})
}

func groupQuery(c *gin.Context, keywordParam string) workings.GroupQuery {
	return workings.GroupQuery{
		Keyword: c.Query(keywordParam),
		SortBy:  c.Query("group_sort_by"),
		Order:   c.Query("group_sort_order"),
	}
}

func listQuery(c *gin.Context) workings.ListQuery {
	return workings.ListQuery{
		SortBy: c.Query("sort_by"),
		Order:  c.Query("order"),
		Page:   c.Query("page"),
		Limit:  c.Query("limit"),
		Skip:   c.Query("skip"),
	}
}

func respondWorkingsError(c *gin.Context, err error) {
	var verr *workings.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.JSONError(c, http.StatusUnprocessableEntity, verr.Error(), "")
	case errors.Is(err, workings.ErrWorkingNotFound):
		utils.JSONError(c, http.StatusNotFound, "Working not found", "")
	case errors.Is(err, workings.ErrForbidden):
		utils.JSONError(c, http.StatusForbidden, "Forbidden", err.Error())
	default:
		getLogger(c).Error("Workings request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
	}
}
