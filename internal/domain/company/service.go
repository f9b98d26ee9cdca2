package company

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"hrservice/internal/domain"
	"hrservice/internal/domain/manager"
)

type Service interface {
	List(ctx context.Context, f Filter) (domain.Page[Company], error)
	Get(ctx context.Context, id string) (Company, error)
	Create(ctx context.Context, c Company) (Company, error)
	Update(ctx context.Context, id string, p Patch) (Company, error)
	Delete(ctx context.Context, id string) error
	AssignManager(ctx context.Context, id, userID, actor string) (manager.Manager, error)
}

type service struct {
	uow       domain.UnitOfWork
	companies Repository
	managers  *manager.Assigner
}

func NewService(uow domain.UnitOfWork, companies Repository, managers *manager.Assigner) Service {
	return &service{uow: uow, companies: companies, managers: managers}
}

func (s *service) List(ctx context.Context, f Filter) (domain.Page[Company], error) {
	f = f.Normalize()
	f.Query = strings.TrimSpace(f.Query)
	items, total, err := s.companies.List(ctx, f)
	if err != nil {
		return domain.Page[Company]{}, err
	}
	return domain.Page[Company]{Items: items, Page: f.Page, Size: f.Size, Total: total}, nil
}

func (s *service) Get(ctx context.Context, id string) (Company, error) {
	return s.companies.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, c Company) (Company, error) {
	c.Name = strings.TrimSpace(c.Name)
	if err := validateName(c.Name); err != nil {
		return Company{}, err
	}
	c.ID = uuid.NewString()

	var res Company
	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		taken, err := s.companies.NameTaken(ctx, c.Name, "")
		if err != nil {
			return err
		}
		if taken {
			return domain.Conflict("company name already exists")
		}
		created, err := s.companies.Create(ctx, c)
		if err != nil {
			return err
		}
		res = created
		return nil
	})
	return res, err
}

func (s *service) Update(ctx context.Context, id string, p Patch) (Company, error) {
	if p.Empty() {
		return Company{}, domain.BadRequest("nothing to update")
	}
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if err := validateName(name); err != nil {
			return Company{}, err
		}
		p.Name = &name
	}

	var res Company
	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		if p.Name != nil {
			taken, err := s.companies.NameTaken(ctx, *p.Name, id)
			if err != nil {
				return err
			}
			if taken {
				return domain.Conflict("company name already exists")
			}
		}
		updated, err := s.companies.Update(ctx, id, p)
		if err != nil {
			return err
		}
		res = updated
		return nil
	})
	return res, err
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.companies.SoftDelete(ctx, id)
}

func (s *service) AssignManager(ctx context.Context, id, userID, actor string) (manager.Manager, error) {
	var res manager.Manager
	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.companies.GetByID(ctx, id); err != nil {
			return err
		}
		m, err := s.managers.Assign(ctx, manager.EntityCompany, id, userID, actor)
		if err != nil {
			return err
		}
		res = m
		return nil
	})
	return res, err
}

func validateName(name string) error {
	n := utf8.RuneCountInString(name)
	if n < 2 || n > 100 {
		return domain.BadRequest("company name must be 2..100 characters")
	}
	return nil
}
