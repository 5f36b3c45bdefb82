package dtos

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/jobsterhq/jobster-api/internal/models"
)

type CreateJobRequest struct {
	Company  string `json:"company" binding:"required"`
	Position string `json:"position" binding:"required"`

	// Optional, defaulted by the store when empty
	Status  string `json:"status" binding:"omitempty,oneof=pending interview declined"`
	JobType string `json:"jobType" binding:"omitempty,oneof=full-time part-time internship contract"`
}

// UpdateJobRequest uses pointers so "field absent" and "field set to empty"
// stay distinguishable; an explicit empty company or position is rejected.
type UpdateJobRequest struct {
	Company  *string `json:"company"`
	Position *string `json:"position"`
	Status   *string `json:"status"`
	JobType  *string `json:"jobType"`
}

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Sort keys accepted by the list endpoint. Anything else falls back to
// SortLatest without erroring.
const (
	SortLatest = "latest"
	SortOldest = "oldest"
	SortAZ     = "a-z"
	SortZA     = "z-a"
)

// ListJobsQuery is the validated query plan for GET /jobs. Every field is
// optional on the wire; parsing never fails, it applies defaults.
type ListJobsQuery struct {
	Search  string
	Status  string
	JobType string
	Sort    string
	Page    int
	Limit   int
}

// ParseListJobsQuery turns untrusted query parameters into a ListJobsQuery.
// Missing or non-numeric page/limit take the documented defaults, and both
// are clamped to at least 1 so the skip offset can never go negative.
func ParseListJobsQuery(q url.Values) ListJobsQuery {
	return ListJobsQuery{
		Search:  strings.TrimSpace(q.Get("search")),
		Status:  q.Get("status"),
		JobType: q.Get("jobType"),
		Sort:    q.Get("sort"),
		Page:    positiveIntOrDefault(q.Get("page"), DefaultPage),
		Limit:   positiveIntOrDefault(q.Get("limit"), DefaultLimit),
	}
}

func positiveIntOrDefault(raw string, def int) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	if n < 1 {
		return 1
	}
	return n
}

type JobListResponse struct {
	Jobs       []models.Job `json:"jobs"`
	TotalJobs  int64        `json:"totalJobs"`
	NumOfPages int          `json:"numOfPages"`
}

type JobEnvelope struct {
	Job models.Job `json:"job"`
}

// DefaultStats is the fixed-shape status rollup. Missing statuses are
// zeroed; statuses outside the enum are dropped.
type DefaultStats struct {
	Pending   int64 `json:"pending"`
	Interview int64 `json:"interview"`
	Declined  int64 `json:"declined"`
}

type MonthlyApplication struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type StatsResponse struct {
	DefaultStats        DefaultStats         `json:"defaultStats"`
	MonthlyApplications []MonthlyApplication `json:"monthlyApplications"`
}
