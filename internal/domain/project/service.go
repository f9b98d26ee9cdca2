package project

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"hrservice/internal/domain"
	"hrservice/internal/domain/company"
)

type Service interface {
	List(ctx context.Context, f Filter) (domain.Page[Project], error)
	Get(ctx context.Context, id string) (Project, error)
	Create(ctx context.Context, p Project) (Project, error)
}

type service struct {
	uow       domain.UnitOfWork
	projects  Repository
	companies company.Repository
}

func NewService(uow domain.UnitOfWork, projects Repository, companies company.Repository) Service {
	return &service{uow: uow, projects: projects, companies: companies}
}

func (s *service) List(ctx context.Context, f Filter) (domain.Page[Project], error) {
	f.PageRequest = f.PageRequest.Normalize()
	f.Query = strings.TrimSpace(f.Query)
	items, total, err := s.projects.List(ctx, f)
	if err != nil {
		return domain.Page[Project]{}, err
	}
	return domain.Page[Project]{Items: items, Page: f.Page, Size: f.Size, Total: total}, nil
}

func (s *service) Get(ctx context.Context, id string) (Project, error) {
	return s.projects.GetByID(ctx, id)
}

// Create adds a project to a company. Names are unique within a company.
func (s *service) Create(ctx context.Context, p Project) (Project, error) {
	p.Name = strings.TrimSpace(p.Name)
	if n := utf8.RuneCountInString(p.Name); n < 3 || n > 50 {
		return Project{}, domain.BadRequest("project name must be 3..50 characters")
	}
	p.ID = uuid.NewString()

	var res Project
	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.companies.GetByID(ctx, p.CompanyID); err != nil {
			return err
		}
		taken, err := s.projects.NameTaken(ctx, p.CompanyID, p.Name)
		if err != nil {
			return err
		}
		if taken {
			return domain.Conflict("project already exists")
		}
		created, err := s.projects.Create(ctx, p)
		if err != nil {
			return err
		}
		res = created
		return nil
	})
	return res, err
}
