package position

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"hrservice/internal/domain"
	"hrservice/internal/domain/company"
	"hrservice/internal/domain/manager"
	"hrservice/internal/domain/project"
)

type Service interface {
	List(ctx context.Context, f Filter) (domain.Page[Position], error)
	Get(ctx context.Context, id string) (Position, error)
	Create(ctx context.Context, p Position) (Position, error)
	Update(ctx context.Context, id string, p Patch) (Position, error)
	Delete(ctx context.Context, id string) error
	AssignManager(ctx context.Context, id, userID, actor string) (manager.Manager, error)
}

type service struct {
	uow       domain.UnitOfWork
	positions Repository
	companies company.Repository
	projects  project.Repository
	managers  *manager.Assigner
}

func NewService(
	uow domain.UnitOfWork,
	positions Repository,
	companies company.Repository,
	projects project.Repository,
	managers *manager.Assigner,
) Service {
	return &service{uow: uow, positions: positions, companies: companies, projects: projects, managers: managers}
}

func (s *service) List(ctx context.Context, f Filter) (domain.Page[Position], error) {
	f = f.Normalize()
	f.Query = strings.TrimSpace(f.Query)
	items, total, err := s.positions.List(ctx, f)
	if err != nil {
		return domain.Page[Position]{}, err
	}
	return domain.Page[Position]{Items: items, Page: f.Page, Size: f.Size, Total: total}, nil
}

func (s *service) Get(ctx context.Context, id string) (Position, error) {
	return s.positions.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, p Position) (Position, error) {
	p.Title = strings.TrimSpace(p.Title)
	if err := validateTitle(p.Title); err != nil {
		return Position{}, err
	}
	if !p.Level.Valid() {
		return Position{}, domain.BadRequest("position level is incorrect")
	}
	p.ID = uuid.NewString()

	var res Position
	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.checkOwners(ctx, p.CompanyID, p.ProjectID); err != nil {
			return err
		}
		if err := s.checkTitle(ctx, p.CompanyID, p.Title, ""); err != nil {
			return err
		}
		created, err := s.positions.Create(ctx, p)
		if err != nil {
			return err
		}
		res = created
		return nil
	})
	return res, err
}

func (s *service) Update(ctx context.Context, id string, p Patch) (Position, error) {
	if p.Empty() {
		return Position{}, domain.BadRequest("nothing to update")
	}
	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		if err := validateTitle(title); err != nil {
			return Position{}, err
		}
		p.Title = &title
	}
	if p.Level != nil && !p.Level.Valid() {
		return Position{}, domain.BadRequest("position level is incorrect")
	}

	var res Position
	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.positions.GetByID(ctx, id)
		if err != nil {
			return err
		}

		companyID, projectID, title := current.CompanyID, current.ProjectID, current.Title
		if p.CompanyID != nil {
			companyID = *p.CompanyID
		}
		if p.ProjectID != nil {
			projectID = *p.ProjectID
		}
		if p.Title != nil {
			title = *p.Title
		}

		if p.CompanyID != nil || p.ProjectID != nil {
			if err := s.checkOwners(ctx, companyID, projectID); err != nil {
				return err
			}
		}
		if p.CompanyID != nil || p.Title != nil {
			if err := s.checkTitle(ctx, companyID, title, id); err != nil {
				return err
			}
		}

		updated, err := s.positions.Update(ctx, id, p)
		if err != nil {
			return err
		}
		res = updated
		return nil
	})
	return res, err
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.positions.SoftDelete(ctx, id)
}

func (s *service) AssignManager(ctx context.Context, id, userID, actor string) (manager.Manager, error) {
	var res manager.Manager
	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.positions.GetByID(ctx, id); err != nil {
			return err
		}
		m, err := s.managers.Assign(ctx, manager.EntityPosition, id, userID, actor)
		if err != nil {
			return err
		}
		res = m
		return nil
	})
	return res, err
}

// checkOwners requires the company and project to exist and the project to
// belong to the company.
func (s *service) checkOwners(ctx context.Context, companyID, projectID string) error {
	if _, err := s.companies.GetByID(ctx, companyID); err != nil {
		return err
	}
	pr, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if pr.CompanyID != companyID {
		return domain.BadRequest("project belongs to another company")
	}
	return nil
}

func (s *service) checkTitle(ctx context.Context, companyID, title, excludeID string) error {
	taken, err := s.positions.TitleTaken(ctx, companyID, title, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return domain.Conflict("position already exists")
	}
	return nil
}

func validateTitle(title string) error {
	n := utf8.RuneCountInString(title)
	if n < 3 || n > 50 {
		return domain.BadRequest("position title must be 3..50 characters")
	}
	return nil
}
