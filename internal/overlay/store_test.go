package overlay

import (
	"sync"
	"testing"

	"github.com/Alejomarqz/liganacionalgt-live/internal/domain/matches"
)

func TestStoreReplaceAndGet(t *testing.T) {
	s := NewStore()
	if s.Len() != 0 {
		t.Fatalf("new store should be empty, got %d", s.Len())
	}

	s.Replace(map[int]matches.OverlayPatch{101: {MatchID: 101, RawScore: "1-0"}})
	p, ok := s.Get(101)
	if !ok || p.RawScore != "1-0" {
		t.Fatalf("patch not stored: %+v ok=%v", p, ok)
	}
	if _, ok := s.Get(999); ok {
		t.Fatal("unexpected patch for unknown id")
	}
}

func TestStoreReplaceIsWholesale(t *testing.T) {
	s := NewStore()
	s.Replace(map[int]matches.OverlayPatch{1: {MatchID: 1}, 2: {MatchID: 2}})
	s.Replace(map[int]matches.OverlayPatch{3: {MatchID: 3}})

	if s.Len() != 1 {
		t.Fatalf("expected 1 patch after replace, got %d", s.Len())
	}
	if _, ok := s.Get(1); ok {
		t.Fatal("old batch must not survive a replace")
	}
}

func TestStoreSnapshotStableAcrossReplace(t *testing.T) {
	s := NewStore()
	s.Replace(map[int]matches.OverlayPatch{1: {MatchID: 1}})
	snap := s.Snapshot()
	s.Replace(map[int]matches.OverlayPatch{2: {MatchID: 2}})

	if _, ok := snap[1]; !ok {
		t.Fatal("snapshot taken before replace must keep its batch")
	}
	if _, ok := snap[2]; ok {
		t.Fatal("snapshot must not see the later batch")
	}
}

func TestStoreClear(t *testing.T) {
	s := NewStore()
	s.Replace(map[int]matches.OverlayPatch{1: {MatchID: 1}})
	s.Clear()
	if s.Len() != 0 {
		t.Fatalf("expected empty store, got %d", s.Len())
	}
	if s.Snapshot() == nil {
		t.Fatal("snapshot after clear should be an empty map, not nil")
	}
}

func TestStoreConcurrentAccess(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			s.Replace(map[int]matches.OverlayPatch{n: {MatchID: n}})
		}(i)
		go func() {
			defer wg.Done()
			_ = s.Snapshot()
			_ = s.Len()
		}()
	}
	wg.Wait()
}
