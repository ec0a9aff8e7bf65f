package app

import (
	"context"
	"errors"
	"testing"

	"github.com/marquee-tv/marquee/internal/library"
	"github.com/marquee-tv/marquee/internal/state"
)

type fakeFetcher struct {
	videos []library.Video
	err    error
}

func (f *fakeFetcher) FetchCatalog(ctx context.Context) ([]library.Video, error) {
	return f.videos, f.err
}

func TestRefresh_SuccessReplacesCatalog(t *testing.T) {
	store := &state.Store{}
	fetcher := &fakeFetcher{videos: []library.Video{{Name: "a.mp4", Size: 10}}}

	refresh(context.Background(), store, fetcher)

	snap := store.Snapshot()
	if !snap.HasCatalog || len(snap.Catalog) != 1 || snap.Catalog[0].Name != "a.mp4" {
		t.Fatalf("snapshot = %#v, want one entry a.mp4", snap)
	}
}

func TestRefresh_FailureKeepsCatalogAndRecordsError(t *testing.T) {
	store := &state.Store{}

	refresh(context.Background(), store, &fakeFetcher{videos: []library.Video{{Name: "a.mp4"}}})
	refresh(context.Background(), store, &fakeFetcher{err: errors.New("listing endpoint down")})

	snap := store.Snapshot()
	if len(snap.Catalog) != 1 || snap.Catalog[0].Name != "a.mp4" {
		t.Fatalf("catalog = %#v, want previous catalog preserved", snap.Catalog)
	}
	if snap.LastError == nil || snap.LastError.Error() != "listing endpoint down" {
		t.Fatalf("LastError = %v, want listing endpoint down", snap.LastError)
	}
	if snap.Failures != 1 {
		t.Fatalf("Failures = %d, want 1", snap.Failures)
	}
}

func TestRefresh_LastResolvedCycleWins(t *testing.T) {
	store := &state.Store{}

	// Two overlapping cycles: the one that started first resolves last.
	// The store must reflect resolution order, not start order.
	refresh(context.Background(), store, &fakeFetcher{videos: []library.Video{{Name: "second-start.mp4"}}})
	refresh(context.Background(), store, &fakeFetcher{videos: []library.Video{{Name: "first-start.mp4"}}})

	snap := store.Snapshot()
	if snap.Catalog[0].Name != "first-start.mp4" {
		t.Fatalf("catalog = %q, want the last resolved cycle", snap.Catalog[0].Name)
	}
}
