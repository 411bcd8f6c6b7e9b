package store

import (
	"context"
	"strings"
	"testing"

	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/testutil"
)

func TestVerify_Intact(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	d := loadFixture(t, testutil.LibraryV3)

	for _, v := range ir.SupportedFormatVersions {
		if _, _, err := s.Put(ctx, d, v, ""); err != nil {
			t.Fatalf("Put(v%d) failed: %v", v, err)
		}
	}

	mismatches, err := s.Verify(ctx)
	if err != nil {
		t.Fatalf("Verify() failed: %v", err)
	}
	if len(mismatches) != 0 {
		t.Errorf("Verify() = %+v, want no mismatches", mismatches)
	}
}

func TestVerify_DetectsTampering(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	rec, _, err := s.Put(ctx, loadFixture(t, testutil.LibraryV3), ir.FormatV3, "")
	if err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	broken, _, err := s.Put(ctx, emptyLibrary("broken"), ir.FormatV3, "")
	if err != nil {
		t.Fatalf("Put() failed: %v", err)
	}

	// Rename the package in place: still decodes, but to different content.
	_, err = s.db.Exec(`UPDATE distributions SET document = replace(document, '"my"', '"your"') WHERE id = ?`, rec.ID)
	if err != nil {
		t.Fatalf("tamper failed: %v", err)
	}
	_, err = s.db.Exec(`UPDATE distributions SET document = '{"formatVersion":3}' WHERE id = ?`, broken.ID)
	if err != nil {
		t.Fatalf("tamper failed: %v", err)
	}

	mismatches, err := s.Verify(ctx)
	if err != nil {
		t.Fatalf("Verify() failed: %v", err)
	}
	if len(mismatches) != 2 {
		t.Fatalf("Verify() = %+v, want 2 mismatches", mismatches)
	}
	if mismatches[0].ID != rec.ID || !strings.HasPrefix(mismatches[0].Reason, "content id is ") {
		t.Errorf("mismatches[0] = %+v, want changed content id for %s", mismatches[0], rec.ID)
	}
	if mismatches[1].ID != broken.ID || !strings.Contains(mismatches[1].Reason, "distribution") {
		t.Errorf("mismatches[1] = %+v, want decode failure for %s", mismatches[1], broken.ID)
	}
}
