package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/upsaclinic/clinic-admin/internal/core/domain"
)

func TestSessionStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore()

	session := domain.NewSession("sess-1", "admin", domain.RoleAdmin)
	if err := store.Save(ctx, session); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if store.ActiveCount(ctx) != 1 {
		t.Fatalf("active count = %d, want 1", store.ActiveCount(ctx))
	}

	found, err := store.Find(ctx, "sess-1")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found.Username != "admin" || found.CurrentSection != domain.SectionDashboard {
		t.Fatalf("unexpected session: %+v", found)
	}

	if err := store.SetSection(ctx, "sess-1", domain.SectionPharmacy); err != nil {
		t.Fatalf("set section failed: %v", err)
	}
	found, _ = store.Find(ctx, "sess-1")
	if found.CurrentSection != domain.SectionPharmacy {
		t.Fatalf("section = %s, want pharmacy", found.CurrentSection)
	}

	if err := store.Delete(ctx, "sess-1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := store.Find(ctx, "sess-1"); !errors.Is(err, domain.ErrSessionRevoked) {
		t.Fatalf("expected ErrSessionRevoked, got %v", err)
	}
	if err := store.SetSection(ctx, "sess-1", domain.SectionBilling); !errors.Is(err, domain.ErrSessionRevoked) {
		t.Fatalf("expected ErrSessionRevoked from SetSection, got %v", err)
	}
}

func TestSessionStore_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore()

	if err := store.Delete(ctx, "never-existed"); err != nil {
		t.Fatalf("deleting an absent session must succeed, got %v", err)
	}
}

// Find hands out copies; mutating a returned session must not leak into the
// store.
func TestSessionStore_ReturnsClones(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore()
	_ = store.Save(ctx, domain.NewSession("sess-1", "nurse1", domain.RoleNurse))

	first, _ := store.Find(ctx, "sess-1")
	first.CurrentSection = domain.SectionBeds

	second, _ := store.Find(ctx, "sess-1")
	if second.CurrentSection != domain.SectionDashboard {
		t.Fatalf("mutation leaked into store: %s", second.CurrentSection)
	}
}
