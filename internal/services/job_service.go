package services

import (
	"context"
	"errors"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jobsterhq/jobster-api/internal/apperrors"
	"github.com/jobsterhq/jobster-api/internal/dtos"
	"github.com/jobsterhq/jobster-api/internal/models"
)

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{
		DB: db,
	}
}

// filterClause is one optional predicate of the list query. Clauses are
// composed with AND in order, always on top of the owner clause.
type filterClause struct {
	cond string
	args []any
}

// buildJobFilter translates the query plan into predicate clauses. The
// owner clause comes first and cannot be overridden by any input.
func buildJobFilter(owner uuid.UUID, q dtos.ListJobsQuery) []filterClause {
	clauses := []filterClause{
		{cond: "created_by = ?", args: []any{owner}},
	}

	if q.Search != "" {
		clauses = append(clauses, filterClause{
			cond: "LOWER(position) LIKE LOWER(?)",
			args: []any{"%" + q.Search + "%"},
		})
	}
	if q.Status != "" && q.Status != "all" {
		clauses = append(clauses, filterClause{cond: "status = ?", args: []any{q.Status}})
	}
	if q.JobType != "" && q.JobType != "all" {
		clauses = append(clauses, filterClause{cond: "job_type = ?", args: []any{q.JobType}})
	}
	return clauses
}

var jobSortOrders = map[string]string{
	dtos.SortLatest: "created_at DESC",
	dtos.SortOldest: "created_at ASC",
	dtos.SortAZ:     "position ASC",
	dtos.SortZA:     "position DESC",
}

// ListJobs runs the filtered, sorted, paginated query plus the matching
// count over the identical predicate. Invalid optional parameters never
// error; they were already replaced by defaults during parsing.
func (s *JobService) ListJobs(ctx context.Context, owner uuid.UUID, q dtos.ListJobsQuery) (*dtos.JobListResponse, error) {
	clauses := buildJobFilter(owner, q)
	filtered := func() *gorm.DB {
		tx := s.DB.WithContext(ctx).Model(&models.Job{})
		for _, cl := range clauses {
			tx = tx.Where(cl.cond, cl.args...)
		}
		return tx
	}

	var totalJobs int64
	if err := filtered().Count(&totalJobs).Error; err != nil {
		return nil, err
	}

	order, ok := jobSortOrders[q.Sort]
	if !ok {
		order = jobSortOrders[dtos.SortLatest]
	}

	jobs := make([]models.Job, 0, q.Limit)
	err := filtered().
		Order(order).
		Offset((q.Page - 1) * q.Limit).
		Limit(q.Limit).
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}

	return &dtos.JobListResponse{
		Jobs:       jobs,
		TotalJobs:  totalJobs,
		NumOfPages: int(math.Ceil(float64(totalJobs) / float64(q.Limit))),
	}, nil
}

func (s *JobService) CreateJob(ctx context.Context, owner uuid.UUID, req *dtos.CreateJobRequest) (*models.Job, error) {
	if req.Company == "" || req.Position == "" {
		return nil, apperrors.BadRequest("Company or Position fields cannot be empty")
	}

	job := &models.Job{
		ID:        uuid.New(),
		CreatedBy: owner,
		Company:   req.Company,
		Position:  req.Position,
		Status:    req.Status,
		JobType:   req.JobType,
	}
	if job.Status == "" {
		job.Status = models.StatusPending
	}
	if job.JobType == "" {
		job.JobType = models.JobTypeFullTime
	}

	if err := s.DB.WithContext(ctx).Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// GetJob fetches a single record scoped by (id, owner). A record owned by
// someone else and a missing record are deliberately the same NotFound.
func (s *JobService) GetJob(ctx context.Context, owner uuid.UUID, id string) (*models.Job, error) {
	jobID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.NotFound("No job with id " + id)
	}

	var job models.Job
	err = s.DB.WithContext(ctx).
		Where("id = ? AND created_by = ?", jobID, owner).
		First(&job).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("No job with id " + id)
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (s *JobService) UpdateJob(ctx context.Context, owner uuid.UUID, id string, req *dtos.UpdateJobRequest) (*models.Job, error) {
	if (req.Company != nil && *req.Company == "") || (req.Position != nil && *req.Position == "") {
		return nil, apperrors.BadRequest("Company or Position fields cannot be empty")
	}
	if req.Status != nil && !validStatus(*req.Status) {
		return nil, apperrors.BadRequest("Invalid status value")
	}
	if req.JobType != nil && !validJobType(*req.JobType) {
		return nil, apperrors.BadRequest("Invalid jobType value")
	}

	job, err := s.GetJob(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	if req.Company != nil {
		job.Company = *req.Company
	}
	if req.Position != nil {
		job.Position = *req.Position
	}
	if req.Status != nil {
		job.Status = *req.Status
	}
	if req.JobType != nil {
		job.JobType = *req.JobType
	}

	if err := s.DB.WithContext(ctx).Save(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

func (s *JobService) DeleteJob(ctx context.Context, owner uuid.UUID, id string) error {
	jobID, err := uuid.Parse(id)
	if err != nil {
		return apperrors.NotFound("No job with id " + id)
	}

	res := s.DB.WithContext(ctx).
		Where("id = ? AND created_by = ?", jobID, owner).
		Delete(&models.Job{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("No job with id " + id)
	}
	return nil
}

type monthBucket struct {
	year  int
	month time.Month
}

// Stats runs the two independent rollups over the same ownership
// predicate: a per-status count and a 6-month application trend. They are
// separate reads; minor skew between them under concurrent writes is fine.
func (s *JobService) Stats(ctx context.Context, owner uuid.UUID) (*dtos.StatsResponse, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := s.DB.WithContext(ctx).
		Model(&models.Job{}).
		Select("status, COUNT(*) AS count").
		Where("created_by = ?", owner).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	// Fixed-schema merge: the three known statuses always appear, zeroed
	// when absent. Statuses outside the enum are dropped here.
	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	defaultStats := dtos.DefaultStats{
		Pending:   counts[models.StatusPending],
		Interview: counts[models.StatusInterview],
		Declined:  counts[models.StatusDeclined],
	}

	var createdAt []time.Time
	err = s.DB.WithContext(ctx).
		Model(&models.Job{}).
		Where("created_by = ?", owner).
		Pluck("created_at", &createdAt).Error
	if err != nil {
		return nil, err
	}

	return &dtos.StatsResponse{
		DefaultStats:        defaultStats,
		MonthlyApplications: monthlyTrend(createdAt, 6),
	}, nil
}

// monthlyTrend buckets creation times by (year, month), keeps the keep
// most recent buckets and returns them oldest first.
func monthlyTrend(createdAt []time.Time, keep int) []dtos.MonthlyApplication {
	buckets := make(map[monthBucket]int)
	for _, t := range createdAt {
		buckets[monthBucket{year: t.Year(), month: t.Month()}]++
	}

	keys := make([]monthBucket, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year > keys[j].year
		}
		return keys[i].month > keys[j].month
	})
	if len(keys) > keep {
		keys = keys[:keep]
	}

	trend := make([]dtos.MonthlyApplication, 0, len(keys))
	for i := len(keys) - 1; i >= 0; i-- {
		k := keys[i]
		label := time.Date(k.year, k.month, 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006")
		trend = append(trend, dtos.MonthlyApplication{Date: label, Count: buckets[k]})
	}
	return trend
}

func validStatus(s string) bool {
	switch s {
	case models.StatusPending, models.StatusInterview, models.StatusDeclined:
		return true
	}
	return false
}

func validJobType(s string) bool {
	switch s {
	case models.JobTypeFullTime, models.JobTypePartTime, models.JobTypeInternship, models.JobTypeContract:
		return true
	}
	return false
}
