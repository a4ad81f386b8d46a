package service

import (
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"

	"github.com/deppfellow/recruitly/internal/lib/utils"
	"github.com/deppfellow/recruitly/internal/model"
)

type JobSeekerService struct {
	*Deps
}

func (s *JobSeekerService) Create(ctx context.Context, req *model.CreateJobSeekerRequest) (*model.JobSeeker, error) {
	js := &model.JobSeeker{
		UserID:         req.UserID,
		AgencyID:       req.AgencyID,
		Headline:       req.Headline,
		Phone:          req.Phone,
		City:           req.City,
		Country:        req.Country,
		ExpectedSalary: req.ExpectedSalary,
		OpenToWork:     true,
	}
	assign(&js.OpenToWork, req.OpenToWork)

	var err error
	if js.DateOfBirth, err = utils.CoerceDatePtr(req.DateOfBirth); err != nil {
		return nil, invalidField("date_of_birth", "must be a valid date")
	}
	if js.Skills, err = jsonField("skills", req.Skills); err != nil {
		return nil, err
	}
	if js.Education, err = jsonField("education", req.Education); err != nil {
		return nil, err
	}
	if js.Experience, err = jsonField("experience", req.Experience); err != nil {
		return nil, err
	}

	js.ProfileCompletion = utils.CompletionPercentage(js.CompletionFields()...)

	created, err := s.Repos.JobSeeker.Create(ctx, js)
	if err != nil {
		return nil, err
	}
	return decorateJobSeeker(s.Deps, created), nil
}

func (s *JobSeekerService) GetByID(ctx context.Context, id int64) (*model.JobSeeker, error) {
	js, err := s.Repos.JobSeeker.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return decorateJobSeeker(s.Deps, js), nil
}

func (s *JobSeekerService) Update(ctx context.Context, req *model.UpdateJobSeekerRequest) (*model.JobSeeker, error) {
	js, err := s.Repos.JobSeeker.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	assignPtr(&js.AgencyID, req.AgencyID)
	assignPtr(&js.Headline, req.Headline)
	assignPtr(&js.Phone, req.Phone)
	assignPtr(&js.City, req.City)
	assignPtr(&js.Country, req.Country)
	assignPtr(&js.ExpectedSalary, req.ExpectedSalary)
	assign(&js.OpenToWork, req.OpenToWork)

	if req.DateOfBirth != nil {
		if js.DateOfBirth, err = utils.CoerceDate(*req.DateOfBirth); err != nil {
			return nil, invalidField("date_of_birth", "must be a valid date")
		}
	}
	for _, f := range []struct {
		name string
		src  json.RawMessage
		dst  *json.RawMessage
	}{
		{"skills", req.Skills, &js.Skills},
		{"education", req.Education, &js.Education},
		{"experience", req.Experience, &js.Experience},
	} {
		if f.src == nil {
			continue
		}
		if *f.dst, err = jsonField(f.name, f.src); err != nil {
			return nil, err
		}
	}

	return s.save(ctx, js)
}

// UploadResume accepts PDF, DOC and DOCX files.
func (s *JobSeekerService) UploadResume(ctx context.Context, id int64, fh *multipart.FileHeader) (*model.JobSeeker, error) {
	return s.replaceFile(ctx, id, fh, "resumes", resumeTypes, func(js *model.JobSeeker) **string {
		return &js.ResumeKey
	})
}

// UploadPhoto accepts JPEG, PNG and WebP images.
func (s *JobSeekerService) UploadPhoto(ctx context.Context, id int64, fh *multipart.FileHeader) (*model.JobSeeker, error) {
	return s.replaceFile(ctx, id, fh, "photos", imageTypes, func(js *model.JobSeeker) **string {
		return &js.PhotoKey
	})
}

func (s *JobSeekerService) replaceFile(
	ctx context.Context,
	id int64,
	fh *multipart.FileHeader,
	folder string,
	allowed []string,
	field func(*model.JobSeeker) **string,
) (*model.JobSeeker, error) {
	js, err := s.Repos.JobSeeker.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	key, err := s.storeUpload(ctx, fh, fmt.Sprintf("job-seekers/%d/%s", id, folder), allowed)
	if err != nil {
		return nil, err
	}

	slot := field(js)
	previous := *slot
	*slot = &key

	updated, err := s.save(ctx, js)
	if err != nil {
		s.removeFiles(ctx, key)
		return nil, err
	}

	if previous != nil {
		s.removeFiles(ctx, *previous)
	}
	return updated, nil
}

// Delete removes the job seeker with its resume and photo.
func (s *JobSeekerService) Delete(ctx context.Context, id int64) error {
	keys, err := s.Repos.JobSeeker.Delete(ctx, id)
	if err != nil {
		return err
	}
	s.removeFiles(ctx, keys...)
	return nil
}

func (s *JobSeekerService) List(ctx context.Context, req *model.ListJobSeekersRequest) (*model.PaginatedResponse[model.JobSeeker], error) {
	seekers, total, err := s.Repos.JobSeeker.List(ctx, req)
	if err != nil {
		return nil, err
	}
	for i := range seekers {
		decorateJobSeeker(s.Deps, &seekers[i])
	}
	return model.NewPaginatedResponse(seekers, req.PaginationQuery, total), nil
}

func (s *JobSeekerService) save(ctx context.Context, js *model.JobSeeker) (*model.JobSeeker, error) {
	js.ProfileCompletion = utils.CompletionPercentage(js.CompletionFields()...)

	updated, err := s.Repos.JobSeeker.Update(ctx, js)
	if err != nil {
		return nil, err
	}
	return decorateJobSeeker(s.Deps, updated), nil
}

func decorateJobSeeker(d *Deps, js *model.JobSeeker) *model.JobSeeker {
	js.ResumeURL = d.fileURL(js.ResumeKey)
	js.PhotoURL = d.fileURL(js.PhotoKey)
	return js
}

// jsonField normalizes a JSONB input, defaulting to an empty array.
func jsonField(name string, raw json.RawMessage) (json.RawMessage, error) {
	normalized, err := utils.NormalizeJSON(raw, "[]")
	if err != nil {
		return nil, invalidField(name, "must be valid JSON")
	}
	return normalized, nil
}
