package repositories

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
)

// staticRow plays a single query result. A nil err fills the JSONB columns
// with empty arrays and leaves everything else zero
type staticRow struct {
	err error
}

func (r staticRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for _, d := range dest {
		if b, ok := d.(*[]byte); ok {
			*b = []byte("[]")
		}
	}
	return nil
}

func TestScanMemberDetailsNoRow(t *testing.T) {
	d, err := scanMemberDetails(staticRow{err: pgx.ErrNoRows})
	if err != nil {
		t.Fatalf("missing row should not error, got %v", err)
	}
	if d != nil {
		t.Fatalf("missing row should yield nil section, got %+v", d)
	}
}

func TestScanSpouseDetailsNoRow(t *testing.T) {
	d, err := scanSpouseDetails(staticRow{err: pgx.ErrNoRows})
	if err != nil {
		t.Fatalf("missing row should not error, got %v", err)
	}
	if d != nil {
		t.Fatalf("missing row should yield nil section, got %+v", d)
	}
}

func TestScanSectionsPresentRow(t *testing.T) {
	if d, err := scanMemberDetails(staticRow{}); err != nil || d == nil {
		t.Errorf("present member row: section=%v err=%v, want non-nil section", d, err)
	}
	if d, err := scanSpouseDetails(staticRow{}); err != nil || d == nil {
		t.Errorf("present spouse row: section=%v err=%v, want non-nil section", d, err)
	}
}

func TestScanSectionsRealError(t *testing.T) {
	boom := fmt.Errorf("connection reset: %w", errors.New("broken pipe"))
	if _, err := scanSpouseDetails(staticRow{err: boom}); err == nil {
		t.Error("query failures must still surface as errors")
	}
}
