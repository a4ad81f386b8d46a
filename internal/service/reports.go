package service

import (
	"context"

	"github.com/deppfellow/recruitly/internal/model"
)

// ReportService manages one report table. Candidate reports target a job
// seeker and job reports target a job position.
type ReportService struct {
	*Deps
	kind model.ReportKind
}

func (s *ReportService) Kind() model.ReportKind {
	return s.kind
}

func (s *ReportService) CreateCandidate(ctx context.Context, req *model.CreateCandidateReportRequest) (*model.Report, error) {
	return s.create(ctx, req.ReporterUserID, req.JobSeekerID, req.Reason, req.Details)
}

func (s *ReportService) CreateJob(ctx context.Context, req *model.CreateJobReportRequest) (*model.Report, error) {
	return s.create(ctx, req.ReporterUserID, req.JobPositionID, req.Reason, req.Details)
}

func (s *ReportService) create(ctx context.Context, reporterUserID, targetID int64, reason string, details *string) (*model.Report, error) {
	report, err := s.Repos.Report[s.kind].Create(ctx, reporterUserID, targetID, reason, details)
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info().
		Str("kind", string(s.kind)).
		Int64("report_id", report.ID).
		Int64("target_id", targetID).
		Msg("report filed")
	return report, nil
}

func (s *ReportService) GetByID(ctx context.Context, id int64) (*model.Report, error) {
	return s.Repos.Report[s.kind].GetByID(ctx, id)
}

func (s *ReportService) SetStatus(ctx context.Context, req *model.UpdateReportStatusRequest) (*model.Report, error) {
	return s.Repos.Report[s.kind].SetStatus(ctx, req.ID, req.Status)
}

func (s *ReportService) Delete(ctx context.Context, id int64) error {
	return s.Repos.Report[s.kind].Delete(ctx, id)
}

func (s *ReportService) List(ctx context.Context, req *model.ListReportsRequest) (*model.PaginatedResponse[model.Report], error) {
	reports, total, err := s.Repos.Report[s.kind].List(ctx, req)
	if err != nil {
		return nil, err
	}
	return model.NewPaginatedResponse(reports, req.PaginationQuery, total), nil
}
