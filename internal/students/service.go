package students

import (
	"context"
	"fmt"

	"github.com/studentmanagement/students-api/internal/apperrors"
	"github.com/studentmanagement/students-api/internal/models"
	"github.com/studentmanagement/students-api/internal/pagination"
	"github.com/studentmanagement/students-api/internal/validation"
	"github.com/studentmanagement/students-api/pkg/logger"
)

const kind = "Student"

// Repository defines the persistence operations the service depends on.
type Repository interface {
	Save(ctx context.Context, s *models.Student) (string, error)
	FindByID(ctx context.Context, id string) (*models.Student, bool, error)
	FindAll(ctx context.Context) ([]models.Student, error)
	FindAllWithPagination(ctx context.Context, req pagination.Request) ([]models.Student, error)
	Count(ctx context.Context) (int64, error)
	DeleteByID(ctx context.Context, id string) error
}

// Service encapsulates student business rules on top of a Repository.
type Service struct {
	repo     Repository
	validate *validation.Validator
}

func NewService(r Repository) *Service {
	return &Service{repo: r, validate: validation.New()}
}

func (s *Service) Create(ctx context.Context, req Request) (Response, error) {
	if err := s.validate.Struct(req); err != nil {
		return Response{}, err
	}
	logger.Infof("creating student with name: %s", req.Name)
	rec := fromRequest(req)
	id, err := s.repo.Save(ctx, &rec)
	if err != nil {
		return Response{}, err
	}
	logger.Debugf("student saved with id %s, reading back", id)
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
	out := make([]Response, 0, len(recs))
	for _, r := range recs {
		out = append(out, toResponse(r))
	}
	return out, nil
}

func (s *Service) GetAllWithPagination(ctx context.Context, req pagination.Request) (pagination.Page[Response], error) {
	if err := req.Validate(models.StudentSortFields); err != nil {
		return pagination.Page[Response]{}, err
	}
	logger.Infof("listing students: page=%d size=%d sortBy=%s %s", req.Page, req.Size, req.SortBy, req.SortDirection)
	page, err := pagination.Load(ctx, req,
		func(ctx context.Context) ([]models.Student, error) { return s.repo.FindAllWithPagination(ctx, req) },
		s.repo.Count,
	)
	if err != nil {
		return pagination.Page[Response]{}, err
	}
	return pagination.Map(page, toResponse), nil
}

// Update replaces every client-owned field of the student at id. The
// identifier and createdAt of the stored record are kept.
func (s *Service) Update(ctx context.Context, id string, req Request) (Response, error) {
	if err := s.validate.Struct(req); err != nil {
		return Response{}, err
	}
	existing, err := s.find(ctx, id)
	if err != nil {
		return Response{}, err
	}
	rec := fromRequest(req)
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

func (s *Service) find(ctx context.Context, id string) (*models.Student, error) {
	rec, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.NewNotFound(kind, id)
	}
	return rec, nil
}

// reload reads back a record that was just written so the response carries
// exactly what the store holds.
func (s *Service) reload(ctx context.Context, id string) (Response, error) {
	rec, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Response{}, err
	}
	if !found {
		return Response{}, fmt.Errorf("student %s missing after save", id)
	}
	return toResponse(*rec), nil
}

func fromRequest(req Request) models.Student {
	return models.Student{
		Title:   req.Title,
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		Course:  req.Course,
	}
}
