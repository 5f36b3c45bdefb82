package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jobsterhq/jobster-api/internal/apperrors"
	"github.com/jobsterhq/jobster-api/internal/dtos"
	"github.com/jobsterhq/jobster-api/internal/middleware"
	"github.com/jobsterhq/jobster-api/internal/services"
)

type JobHandler struct {
	Jobs *services.JobService
}

func NewJobHandler(jobs *services.JobService) *JobHandler {
	return &JobHandler{
		Jobs: jobs,
	}
}

func (h *JobHandler) ListJobs(c *gin.Context) {
	ident := middleware.Identity(c)
	query := dtos.ParseListJobsQuery(c.Request.URL.Query())

	resp, err := h.Jobs.ListJobs(c.Request.Context(), ident.UserID, query)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest("Invalid request body: " + err.Error()))
		return
	}

	job, err := h.Jobs.CreateJob(c.Request.Context(), middleware.Identity(c).UserID, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, dtos.JobEnvelope{Job: *job})
}

func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.Jobs.GetJob(c.Request.Context(), middleware.Identity(c).UserID, c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dtos.JobEnvelope{Job: *job})
}

func (h *JobHandler) UpdateJob(c *gin.Context) {
	var req dtos.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest("Invalid JSON body"))
		return
	}

	job, err := h.Jobs.UpdateJob(c.Request.Context(), middleware.Identity(c).UserID, c.Param("id"), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dtos.JobEnvelope{Job: *job})
}

func (h *JobHandler) DeleteJob(c *gin.Context) {
	err := h.Jobs.DeleteJob(c.Request.Context(), middleware.Identity(c).UserID, c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *JobHandler) Stats(c *gin.Context) {
	resp, err := h.Jobs.Stats(c.Request.Context(), middleware.Identity(c).UserID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
