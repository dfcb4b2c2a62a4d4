package application

import (
	"context"
	"testing"

	"applicant-intake/intake/domain"
)

type fixedReader struct {
	snap domain.StatsSnapshot
}

func (f fixedReader) Snapshot(context.Context) (domain.StatsSnapshot, error) { return f.snap, nil }

func TestListingService_ReturnsAllInOrder(t *testing.T) {
	store := &sliceStore{}
	store.Append(domain.Applicant{FullName: "first"})
	store.Append(domain.Applicant{FullName: "second"})

	got := ListingService{Store: store}.List(context.Background())
	if len(got) != 2 || got[0].FullName != "first" || got[1].FullName != "second" {
		t.Fatalf("unexpected listing %+v", got)
	}
}

func TestStatsService_NoReaderReturnsEmptySnapshot(t *testing.T) {
	snap, err := StatsService{}.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Total != 0 || snap.ByPosition == nil {
		t.Fatalf("expected empty non-nil snapshot, got %+v", snap)
	}
}

func TestStatsService_DelegatesToReader(t *testing.T) {
	want := domain.StatsSnapshot{Total: 4, ByPosition: map[string]int64{"Engineer": 4}}
	snap, err := StatsService{Reader: fixedReader{snap: want}}.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Total != 4 || snap.ByPosition["Engineer"] != 4 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}
