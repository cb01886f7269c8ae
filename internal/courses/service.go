package courses

import (
	"context"
	"fmt"

	"github.com/studentmanagement/students-api/internal/apperrors"
	"github.com/studentmanagement/students-api/internal/models"
	"github.com/studentmanagement/students-api/internal/pagination"
	"github.com/studentmanagement/students-api/internal/validation"
	"github.com/studentmanagement/students-api/pkg/logger"
)

const kind = "Course"

// Repository defines the persistence operations the service depends on.
type Repository interface {
	Save(ctx context.Context, c *models.Course) (string, error)
	FindByID(ctx context.Context, id string) (*models.Course, bool, error)
	FindAll(ctx context.Context) ([]models.Course, error)
	FindAllWithPagination(ctx context.Context, req pagination.Request) ([]models.Course, error)
	FindByField(ctx context.Context, field string, value any) ([]models.Course, error)
	Count(ctx context.Context) (int64, error)
	DeleteByID(ctx context.Context, id string) error
}

// Service encapsulates course business rules on top of a Repository.
type Service struct {
	repo     Repository
	validate *validation.Validator
}

func NewService(r Repository) *Service {
	return &Service{repo: r, validate: validation.New()}
}

func (s *Service) Create(ctx context.Context, req Request) (Response, error) {
	rec, err := s.build(req)
	if err != nil {
		return Response{}, err
	}
	logger.Infof("creating course: %s", req.Name)
	id, err := s.repo.Save(ctx, &rec)
	if err != nil {
		return Response{}, err
	}
	return s.reload(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id string) (Response, error) {
	rec, err := s.find(ctx, id)
	if err != nil {
		return Response{}, err
	}
	return toResponse(*rec), nil
}

func (s *Service) GetAll(ctx context.Context) ([]Response, error) {
	recs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(recs), nil
}

// GetByLecturer lists the courses taught by lecturerID.
func (s *Service) GetByLecturer(ctx context.Context, lecturerID string) ([]Response, error) {
	recs, err := s.repo.FindByField(ctx, "lecturerId", lecturerID)
	if err != nil {
		return nil, err
	}
	return toResponses(recs), nil
}

// GetByName lists the courses whose name equals name exactly.
func (s *Service) GetByName(ctx context.Context, name string) ([]Response, error) {
	recs, err := s.repo.FindByField(ctx, "name", name)
	if err != nil {
		return nil, err
	}
	return toResponses(recs), nil
}

func (s *Service) GetAllWithPagination(ctx context.Context, req pagination.Request) (pagination.Page[Response], error) {
	if err := req.Validate(models.CourseSortFields); err != nil {
		return pagination.Page[Response]{}, err
	}
	logger.Infof("listing courses: page=%d size=%d sortBy=%s %s", req.Page, req.Size, req.SortBy, req.SortDirection)
	page, err := pagination.Load(ctx, req,
		func(ctx context.Context) ([]models.Course, error) { return s.repo.FindAllWithPagination(ctx, req) },
		s.repo.Count,
	)
	if err != nil {
		return pagination.Page[Response]{}, err
	}
	return pagination.Map(page, toResponse), nil
}

// Update replaces every client-owned field of the course at id. The
// identifier and createdAt of the stored record are kept.
func (s *Service) Update(ctx context.Context, id string, req Request) (Response, error) {
	rec, err := s.build(req)
	if err != nil {
		return Response{}, err
	}
	existing, err := s.find(ctx, id)
	if err != nil {
		return Response{}, err
	}
	rec.ID = existing.ID
	rec.CreatedAt = existing.CreatedAt
	if _, err := s.repo.Save(ctx, &rec); err != nil {
		return Response{}, err
	}
	return s.reload(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteByID(ctx, id)
}

// build validates req and converts it into an unsaved record.
func (s *Service) build(req Request) (models.Course, error) {
	if err := s.validate.Struct(req); err != nil {
		return models.Course{}, err
	}
	fee, err := validation.ParseNonNegativeDecimal(req.Fee)
	if err != nil {
		return models.Course{}, apperrors.NewValidation("fee", "Fee must be a non-negative decimal")
	}
	return models.Course{
		Name:         req.Name,
		Fee:          fee,
		LecturerID:   req.LecturerID,
		LecturerName: req.LecturerName,
	}, nil
}

func (s *Service) find(ctx context.Context, id string) (*models.Course, error) {
	rec, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.NewNotFound(kind, id)
	}
	return rec, nil
}

func (s *Service) reload(ctx context.Context, id string) (Response, error) {
	rec, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Response{}, err
	}
	if !found {
		return Response{}, fmt.Errorf("course %s missing after save", id)
	}
	return toResponse(*rec), nil
}

func toResponses(recs []models.Course) []Response {
	out := make([]Response, 0, len(recs))
	for _, r := range recs {
		out = append(out, toResponse(r))
	}
	return out
}
