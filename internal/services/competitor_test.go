package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/speedsolve/cubecomp/internal/logger"
	"github.com/speedsolve/cubecomp/internal/repository/mock"
	"github.com/speedsolve/cubecomp/internal/testutil"
)

func newCompetitorService(t *testing.T) (*CompetitorService, *SettingsService) {
	t.Helper()
	log := logger.New()
	repo := mock.NewRepository(testutil.NewTestRepository(t))
	settings := NewSettingsService(log, repo)
	return NewCompetitorService(log, repo, settings), settings
}

func TestCompetitorCreate(t *testing.T) {
	svc, _ := newCompetitorService(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, "  Ada Lovelace  ", "2019LOVE01")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := svc.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Name != "Ada Lovelace" {
		t.Errorf("name = %q, want trimmed", got.Name)
	}
	if got.WcaID != "2019LOVE01" {
		t.Errorf("wca id = %q", got.WcaID)
	}
}

func TestCompetitorCreate_EmptyName(t *testing.T) {
	svc, _ := newCompetitorService(t)

	if _, err := svc.Create(context.Background(), "   ", ""); err != ErrEmptyName {
		t.Errorf("expected ErrEmptyName, got %v", err)
	}
}

func TestCompetitorGet_NotFound(t *testing.T) {
	svc, _ := newCompetitorService(t)

	if _, err := svc.Get(context.Background(), 999); err != ErrCompetitorNotFound {
		t.Errorf("expected ErrCompetitorNotFound, got %v", err)
	}
}

func TestCompetitorUpdateAndDelete(t *testing.T) {
	svc, _ := newCompetitorService(t)
	ctx := context.Background()

	id, _ := svc.Create(ctx, "Ben", "")
	if err := svc.Update(ctx, id, "Benjamin", "2020BENJ01"); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, _ := svc.Get(ctx, id)
	if got.Name != "Benjamin" || got.WcaID != "2020BENJ01" {
		t.Errorf("after update: %+v", got)
	}

	if err := svc.Delete(ctx, id); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := svc.Get(ctx, id); err != ErrCompetitorNotFound {
		t.Errorf("expected ErrCompetitorNotFound after delete, got %v", err)
	}

	if err := svc.Update(ctx, id, "Ghost", ""); err != ErrCompetitorNotFound {
		t.Errorf("expected ErrCompetitorNotFound on update, got %v", err)
	}
}

func TestGenerateRecordsQRImage(t *testing.T) {
	svc, settings := newCompetitorService(t)
	ctx := context.Background()

	id, _ := svc.Create(ctx, "Cleo", "")

	// no base URL configured yet
	if _, err := svc.GenerateRecordsQRImage(ctx, id); err == nil {
		t.Error("expected error without a configured base URL")
	}

	if err := settings.SetBaseURL(ctx, "https://cube.example.com/"); err != nil {
		t.Fatalf("SetBaseURL failed: %v", err)
	}

	png, err := svc.GenerateRecordsQRImage(ctx, id)
	if err != nil {
		t.Fatalf("GenerateRecordsQRImage failed: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Error("expected a PNG image")
	}

	if _, err := svc.GenerateRecordsQRImage(ctx, 999); err != ErrCompetitorNotFound {
		t.Errorf("expected ErrCompetitorNotFound, got %v", err)
	}
}
