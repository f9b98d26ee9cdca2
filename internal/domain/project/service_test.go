package project_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"hrservice/internal/domain"
	"hrservice/internal/domain/company"
	"hrservice/internal/domain/project"
)

type uowStub struct{}

func (uowStub) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// companyLookup implements only GetByID.
type companyLookup struct {
	company.Repository
	ids map[string]bool
}

func (c companyLookup) GetByID(_ context.Context, id string) (company.Company, error) {
	if !c.ids[id] {
		return company.Company{}, domain.NotFound("company not found")
	}
	return company.Company{ID: id}, nil
}

type projectRepoFake struct {
	byID map[string]project.Project
}

func (r *projectRepoFake) Create(_ context.Context, p project.Project) (project.Project, error) {
	r.byID[p.ID] = p
	return p, nil
}

func (r *projectRepoFake) GetByID(_ context.Context, id string) (project.Project, error) {
	p, ok := r.byID[id]
	if !ok {
		return project.Project{}, domain.NotFound("project not found")
	}
	return p, nil
}

func (r *projectRepoFake) List(_ context.Context, f project.Filter) ([]project.Project, int, error) {
	var res []project.Project
	for _, p := range r.byID {
		if f.CompanyID == "" || p.CompanyID == f.CompanyID {
			res = append(res, p)
		}
	}
	return res, len(res), nil
}

func (r *projectRepoFake) NameTaken(_ context.Context, companyID, name string) (bool, error) {
	for _, p := range r.byID {
		if p.CompanyID == companyID && strings.EqualFold(p.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func newService() (project.Service, *projectRepoFake) {
	repo := &projectRepoFake{byID: map[string]project.Project{}}
	companies := companyLookup{ids: map[string]bool{"c1": true, "c2": true}}
	return project.NewService(uowStub{}, repo, companies), repo
}

func TestCreate(t *testing.T) {
	svc, repo := newService()
	ctx := context.Background()

	p, err := svc.Create(ctx, project.Project{CompanyID: "c1", Name: "  Hiring 2024 "})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.ID == "" || p.Name != "Hiring 2024" {
		t.Fatalf("unexpected project: %+v", p)
	}
	if _, ok := repo.byID[p.ID]; !ok {
		t.Fatalf("project not stored")
	}

	_, err = svc.Create(ctx, project.Project{CompanyID: "c1", Name: "hiring 2024"})
	var de *domain.DomainError
	if !errors.As(err, &de) || de.Code != domain.ErrorCodeConflict {
		t.Fatalf("expected CONFLICT, got %v", err)
	}

	if _, err := svc.Create(ctx, project.Project{CompanyID: "c2", Name: "Hiring 2024"}); err != nil {
		t.Fatalf("same name in another company must pass, got %v", err)
	}
}

func TestCreate_Validation(t *testing.T) {
	svc, _ := newService()

	if _, err := svc.Create(context.Background(), project.Project{CompanyID: "c1", Name: "ab"}); err == nil {
		t.Fatalf("expected error for short name")
	}
	if _, err := svc.Create(context.Background(), project.Project{CompanyID: "c9", Name: "Hiring"}); !domain.IsNotFound(err) {
		t.Fatalf("expected NOT_FOUND for unknown company, got %v", err)
	}
}

func TestList_FiltersByCompany(t *testing.T) {
	svc, repo := newService()
	repo.byID["p1"] = project.Project{ID: "p1", CompanyID: "c1", Name: "Alpha"}
	repo.byID["p2"] = project.Project{ID: "p2", CompanyID: "c2", Name: "Beta"}

	page, err := svc.List(context.Background(), project.Filter{CompanyID: "c2"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if page.Total != 1 || page.Items[0].ID != "p2" || page.Page != 1 {
		t.Fatalf("unexpected page: %+v", page)
	}
}
