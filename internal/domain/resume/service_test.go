package resume_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"hrservice/internal/domain"
	"hrservice/internal/domain/resume"
)

func newService(t *testing.T) (resume.Service, *resumeRepoFake, *busFake) {
	t.Helper()
	uow := &uowFake{}
	repo := newResumeRepoFake()
	bus := &busFake{uow: uow}
	return resume.NewService(uow, repo, positionsFake{"pos-1": true}, bus, zap.NewNop()), repo, bus
}

func TestService_CreatePublishesAfterCommit(t *testing.T) {
	svc, repo, bus := newService(t)

	r, err := svc.Create(context.Background(), resume.CreateInput{
		Firstname: "Ada",
		Lastname:  "Lovelace",
		Email:     "ADA@Example.com",
		CreatedBy: "u1",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if r.Status != resume.StatusPending {
		t.Fatalf("expected pending, got %s", r.Status)
	}
	if r.StageEnteredAt == nil {
		t.Fatalf("expected stage entry time to be set")
	}
	if r.Email != "ada@example.com" {
		t.Fatalf("expected lowercased email, got %s", r.Email)
	}
	if _, ok := repo.byID[r.ID]; !ok {
		t.Fatalf("resume not stored")
	}

	if len(bus.events) != 1 || bus.events[0].Name != resume.EventCreate {
		t.Fatalf("expected one create event, got %v", bus.names())
	}
	if bus.publishTx[0] {
		t.Fatalf("event published inside the transaction")
	}
	if bus.events[0].ID == "" {
		t.Fatalf("event id is empty")
	}
}

func TestService_FailedMutationPublishesNothing(t *testing.T) {
	svc, repo, bus := newService(t)
	repo.failWrite = errors.New("db down")

	if _, err := svc.Create(context.Background(), resume.CreateInput{Firstname: "A", Lastname: "B"}); err == nil {
		t.Fatalf("expected error")
	}
	if len(bus.events) != 0 {
		t.Fatalf("expected no events, got %v", bus.names())
	}
}

func TestService_PublishErrorDoesNotFailMutation(t *testing.T) {
	svc, _, bus := newService(t)
	bus.err = domain.ErrUnknownEvent

	if _, err := svc.Create(context.Background(), resume.CreateInput{Firstname: "A", Lastname: "B"}); err != nil {
		t.Fatalf("publish error leaked into result: %v", err)
	}
}

func TestService_UpdateStatus(t *testing.T) {
	svc, repo, bus := newService(t)
	repo.put(resume.Resume{ID: "r1", Status: resume.StatusPending})

	r, err := svc.UpdateStatus(context.Background(), "r1", resume.StatusInterview)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if r.Status != resume.StatusInterview || r.StageExitedAt == nil {
		t.Fatalf("status not applied: %+v", r)
	}
	if len(bus.events) != 1 || bus.events[0].Name != resume.EventUpdateStatus {
		t.Fatalf("expected update_status event, got %v", bus.names())
	}
	if bus.publishTx[0] {
		t.Fatalf("event published inside the transaction")
	}
}

func TestService_UpdateStatusMeasuresEachStage(t *testing.T) {
	svc, repo, bus := newService(t)
	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	repo.put(resume.Resume{ID: "r1", Status: resume.StatusPending, StageEnteredAt: &created})

	first, err := svc.UpdateStatus(context.Background(), "r1", resume.StatusReviewing)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !first.StageEnteredAt.Equal(created) {
		t.Fatalf("first stage should start at creation, got %v", first.StageEnteredAt)
	}

	second, err := svc.UpdateStatus(context.Background(), "r1", resume.StatusInterview)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if second.StageEnteredAt == nil || !second.StageEnteredAt.Equal(*first.StageExitedAt) {
		t.Fatalf("second stage should start when the first ended: entered %v, first exit %v",
			second.StageEnteredAt, first.StageExitedAt)
	}
	if len(bus.events) != 2 {
		t.Fatalf("expected two events, got %v", bus.names())
	}
}

func TestService_UpdateStatusSameIsNoop(t *testing.T) {
	svc, repo, bus := newService(t)
	repo.put(resume.Resume{ID: "r1", Status: resume.StatusOffered})

	if _, err := svc.UpdateStatus(context.Background(), "r1", resume.StatusOffered); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(bus.events) != 0 {
		t.Fatalf("expected no events, got %v", bus.names())
	}
}

func TestService_UpdateStatusValidation(t *testing.T) {
	svc, repo, bus := newService(t)
	repo.put(resume.Resume{ID: "r1", Status: resume.StatusPending})

	_, err := svc.UpdateStatus(context.Background(), "r1", resume.Status("archived"))
	var de *domain.DomainError
	if !errors.As(err, &de) || de.Code != domain.ErrorCodeBadRequest {
		t.Fatalf("expected BAD_REQUEST, got %v", err)
	}

	_, err = svc.UpdateStatus(context.Background(), "missing", resume.StatusHired)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
	if len(bus.events) != 0 {
		t.Fatalf("expected no events, got %v", bus.names())
	}
}

func TestService_AddCommentCarriesParent(t *testing.T) {
	svc, repo, bus := newService(t)
	repo.put(resume.Resume{ID: "r1", Firstname: "Ada"})

	c, err := svc.AddComment(context.Background(), "r1", "  strong candidate ", "u2")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if c.Body != "strong candidate" || c.CreatedBy != "u2" {
		t.Fatalf("unexpected comment: %+v", c)
	}

	if len(bus.events) != 1 || bus.events[0].Name != resume.EventAddComment {
		t.Fatalf("expected add_comment event, got %v", bus.names())
	}
	parent, ok := bus.events[0].Payload.(resume.Resume)
	if !ok || parent.ID != "r1" {
		t.Fatalf("expected resume payload, got %#v", bus.events[0].Payload)
	}
}

func TestService_AddCommentErrors(t *testing.T) {
	svc, repo, bus := newService(t)
	repo.put(resume.Resume{ID: "r1"})

	if _, err := svc.AddComment(context.Background(), "r1", "   ", "u"); err == nil {
		t.Fatalf("expected error for empty body")
	}
	if _, err := svc.AddComment(context.Background(), "nope", "hi", "u"); !domain.IsNotFound(err) {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
	repo.failWrite = errors.New("insert failed")
	if _, err := svc.AddComment(context.Background(), "r1", "hi", "u"); err == nil {
		t.Fatalf("expected error")
	}
	if len(bus.events) != 0 {
		t.Fatalf("expected no events, got %v", bus.names())
	}
}

func TestService_AddCallHistory(t *testing.T) {
	svc, repo, bus := newService(t)
	repo.put(resume.Resume{ID: "r1"})

	h, err := svc.AddCallHistory(context.Background(), resume.CallHistory{ResumeID: "r1", Result: resume.CallAnswered})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if h.ID == "" || h.CalledAt.IsZero() {
		t.Fatalf("expected id and call time to be set: %+v", h)
	}
	if len(bus.events) != 1 || bus.events[0].Name != resume.EventAddCallHistory {
		t.Fatalf("expected add_call_history event, got %v", bus.names())
	}

	if _, err := svc.AddCallHistory(context.Background(), resume.CallHistory{ResumeID: "r1", Result: "voicemail"}); err == nil {
		t.Fatalf("expected error for invalid result")
	}
}

func TestService_AttachFileAndDelete(t *testing.T) {
	svc, repo, bus := newService(t)
	repo.put(resume.Resume{ID: "r1"})

	r, err := svc.AttachFile(context.Background(), "r1", "uploads/resumes/r1.pdf")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if r.FilePath != "uploads/resumes/r1.pdf" {
		t.Fatalf("file path not stored: %q", r.FilePath)
	}

	if err := svc.Delete(context.Background(), "r1"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := svc.Get(context.Background(), "r1"); !domain.IsNotFound(err) {
		t.Fatalf("expected deleted resume to be hidden, got %v", err)
	}
	if err := svc.Delete(context.Background(), "r1"); !domain.IsNotFound(err) {
		t.Fatalf("expected NOT_FOUND on second delete, got %v", err)
	}

	want := []domain.EventName{resume.EventAddFile, resume.EventDelete}
	got := bus.names()
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestService_UpdateRequiresFields(t *testing.T) {
	svc, repo, bus := newService(t)
	repo.put(resume.Resume{ID: "r1", Firstname: "Old"})

	if _, err := svc.Update(context.Background(), "r1", resume.Patch{}); err == nil {
		t.Fatalf("expected error for empty patch")
	}

	name := "New"
	r, err := svc.Update(context.Background(), "r1", resume.Patch{Firstname: &name})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if r.Firstname != "New" {
		t.Fatalf("expected updated name, got %s", r.Firstname)
	}
	if len(bus.events) != 1 || bus.events[0].Name != resume.EventUpdate {
		t.Fatalf("expected update event, got %v", bus.names())
	}
}

func TestService_ListRejectsUnknownStatus(t *testing.T) {
	svc, repo, _ := newService(t)
	repo.put(resume.Resume{ID: "r1", Firstname: "Ada", Status: resume.StatusPending})
	repo.put(resume.Resume{ID: "r2", Firstname: "Bob", Status: resume.StatusHired})

	page, err := svc.List(context.Background(), resume.Filter{Status: resume.StatusHired})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if page.Total != 1 || page.Items[0].ID != "r2" {
		t.Fatalf("unexpected page: %+v", page)
	}
	if page.Page != 1 || page.Size != domain.DefaultPageSize {
		t.Fatalf("expected normalized paging, got %d/%d", page.Page, page.Size)
	}

	if _, err := svc.List(context.Background(), resume.Filter{Status: "ghost"}); err == nil {
		t.Fatalf("expected error for unknown status")
	}
}

func TestService_CreateRequiresLivePosition(t *testing.T) {
	svc, repo, bus := newService(t)

	missing := "pos-9"
	_, err := svc.Create(context.Background(), resume.CreateInput{Firstname: "Ada", Lastname: "Lovelace", PositionID: &missing})
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NOT_FOUND for unknown position, got %v", err)
	}
	if len(repo.byID) != 0 || len(bus.events) != 0 {
		t.Fatalf("nothing should be stored or published")
	}

	live := "pos-1"
	r, err := svc.Create(context.Background(), resume.CreateInput{Firstname: "Ada", Lastname: "Lovelace", PositionID: &live})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if r.PositionID == nil || *r.PositionID != live {
		t.Fatalf("position not attached: %+v", r.PositionID)
	}
}

func TestService_UpdatePosition(t *testing.T) {
	svc, repo, _ := newService(t)
	live := "pos-1"
	repo.put(resume.Resume{ID: "r1", Status: resume.StatusPending, PositionID: &live})
	ctx := context.Background()

	missing := "pos-9"
	if _, err := svc.Update(ctx, "r1", resume.Patch{PositionID: &missing}); !domain.IsNotFound(err) {
		t.Fatalf("expected NOT_FOUND for unknown position, got %v", err)
	}

	if _, err := svc.Update(ctx, "r1", resume.Patch{PositionID: &live, ClearPosition: true}); err == nil {
		t.Fatalf("expected error when setting and clearing together")
	}

	r, err := svc.Update(ctx, "r1", resume.Patch{ClearPosition: true})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if r.PositionID != nil {
		t.Fatalf("position not cleared: %v", *r.PositionID)
	}
}
