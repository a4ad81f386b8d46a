package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/recruitly/internal/model"
	"github.com/deppfellow/recruitly/internal/sqlerr"
	"github.com/jackc/pgx/v5"
)

const jobSeekerColumns = `id, user_id, agency_id, headline, date_of_birth, phone, city, country,
	skills, education, experience, expected_salary, resume_key, photo_key, profile_completion,
	open_to_work, created_at, updated_at`

type JobSeekerRepository struct {
	db DBTX
}

func NewJobSeekerRepository(db DBTX) *JobSeekerRepository {
	return &JobSeekerRepository{db: db}
}

func scanJobSeeker(row pgx.Row, extra ...any) (*model.JobSeeker, error) {
	var s model.JobSeeker
	dest := []any{
		&s.ID, &s.UserID, &s.AgencyID, &s.Headline, &s.DateOfBirth, &s.Phone, &s.City, &s.Country,
		&s.Skills, &s.Education, &s.Experience, &s.ExpectedSalary, &s.ResumeKey, &s.PhotoKey,
		&s.ProfileCompletion, &s.OpenToWork, &s.CreatedAt, &s.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *JobSeekerRepository) Create(ctx context.Context, s *model.JobSeeker) (*model.JobSeeker, error) {
	query := `INSERT INTO job_seekers (user_id, agency_id, headline, date_of_birth, phone, city, country,
			skills, education, experience, expected_salary, profile_completion, open_to_work)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8::jsonb, $9::jsonb, $10::jsonb, $11, $12, $13)
		RETURNING ` + jobSeekerColumns

	seeker, err := scanJobSeeker(r.db.QueryRow(ctx, query,
		s.UserID, s.AgencyID, s.Headline, s.DateOfBirth, s.Phone, s.City, s.Country,
		string(s.Skills), string(s.Education), string(s.Experience), s.ExpectedSalary,
		s.ProfileCompletion, s.OpenToWork,
	))
	if err != nil {
		return nil, sqlerr.WithTable("job_seekers", err)
	}
	return seeker, nil
}

func (r *JobSeekerRepository) GetByID(ctx context.Context, id int64) (*model.JobSeeker, error) {
	seeker, err := scanJobSeeker(r.db.QueryRow(ctx, `SELECT `+jobSeekerColumns+` FROM job_seekers WHERE id = $1`, id))
	if err != nil {
		return nil, sqlerr.WithTable("job_seekers", err)
	}
	return seeker, nil
}

func (r *JobSeekerRepository) Update(ctx context.Context, s *model.JobSeeker) (*model.JobSeeker, error) {
	query := `UPDATE job_seekers SET
			agency_id = $2, headline = $3, date_of_birth = $4, phone = $5, city = $6, country = $7,
			skills = $8::jsonb, education = $9::jsonb, experience = $10::jsonb, expected_salary = $11,
			resume_key = $12, photo_key = $13, profile_completion = $14, open_to_work = $15
		WHERE id = $1
		RETURNING ` + jobSeekerColumns

	seeker, err := scanJobSeeker(r.db.QueryRow(ctx, query,
		s.ID, s.AgencyID, s.Headline, s.DateOfBirth, s.Phone, s.City, s.Country,
		string(s.Skills), string(s.Education), string(s.Experience), s.ExpectedSalary,
		s.ResumeKey, s.PhotoKey, s.ProfileCompletion, s.OpenToWork,
	))
	if err != nil {
		return nil, sqlerr.WithTable("job_seekers", err)
	}
	return seeker, nil
}

// Delete removes the job seeker and returns the keys of its stored files.
func (r *JobSeekerRepository) Delete(ctx context.Context, id int64) ([]string, error) {
	var resumeKey, photoKey *string
	err := r.db.QueryRow(ctx, `DELETE FROM job_seekers WHERE id = $1 RETURNING resume_key, photo_key`, id).
		Scan(&resumeKey, &photoKey)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to delete job seeker: %w", err)
	}

	var keys []string
	for _, key := range []*string{resumeKey, photoKey} {
		if key != nil {
			keys = append(keys, *key)
		}
	}
	return keys, nil
}

func (r *JobSeekerRepository) List(ctx context.Context, req *model.ListJobSeekersRequest) ([]model.JobSeeker, int64, error) {
	var f filter
	if req.AgencyID != nil {
		f.add("agency_id = $%d", *req.AgencyID)
	}
	if req.City != "" {
		f.add("city ILIKE $%d", req.City)
	}
	if req.OpenToWork != nil {
		f.add("open_to_work = $%d", *req.OpenToWork)
	}
	if req.Q != "" {
		f.add("(headline ILIKE $%[1]d OR skills::text ILIKE $%[1]d)", likePattern(req.Q))
	}

	items, total, err := listPage(ctx, r.db, "job_seekers", jobSeekerColumns, "created_at DESC, id DESC", &f, req.PaginationQuery, scanJobSeeker)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list job seekers: %w", err)
	}
	return items, total, nil
}

// ListIncompleteProfiles returns the contacts of job seekers whose profile
// completion is below cutoff.
func (r *JobSeekerRepository) ListIncompleteProfiles(ctx context.Context, cutoff int) ([]model.IncompleteProfile, error) {
	query := `SELECT u.id, u.email, u.full_name, s.id, s.profile_completion
		FROM job_seekers s
		JOIN users u ON u.id = s.user_id
		WHERE s.profile_completion < $1
		ORDER BY s.id`

	rows, err := r.db.Query(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list incomplete profiles: %w", err)
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.IncompleteProfile, error) {
		var p model.IncompleteProfile
		err := row.Scan(&p.UserID, &p.Email, &p.FullName, &p.JobSeekerID, &p.Completion)
		return p, err
	})
}
