package recent

// Slot is one fixed menu action backing a recent-file entry. Slots beyond
// the current list are hidden, not deleted, until overwritten by future
// insertions.
type Slot struct {
	Label   string
	Path    string
	Visible bool
}

// MenuModel mirrors a "recent files" menu with a fixed number of slots.
type MenuModel struct {
	slots []Slot
}

// NewMenuModel creates a model with n hidden slots.
func NewMenuModel(n int) *MenuModel {
	if n <= 0 {
		n = DefaultMax
	}
	return &MenuModel{slots: make([]Slot, n)}
}

// Sync updates the slots from the tracker's current list.
//
// Trailing slots are hidden with a strict > comparison against the list
// end, so the slot at the end index itself is left untouched; after a
// shrink that one slot can keep showing a stale entry. Long-standing
// behavior, kept as is.
func (m *MenuModel) Sync(t *Tracker) {
	entries := t.Entries()

	end := len(entries)
	if end > len(m.slots) {
		end = len(m.slots)
	}

	for i, e := range entries {
		if i >= len(m.slots) {
			break
		}
		m.slots[i] = Slot{Label: e.Label, Path: e.Path, Visible: true}
	}

	for i := range m.slots {
		if i > end {
			m.slots[i].Visible = false
		}
	}
}

// Slots returns a copy of the current slot states.
func (m *MenuModel) Slots() []Slot {
	out := make([]Slot, len(m.slots))
	copy(out, m.slots)
	return out
}

// Visible returns only the currently visible slots, in order.
func (m *MenuModel) Visible() []Slot {
	var out []Slot
	for _, s := range m.slots {
		if s.Visible {
			out = append(out, s)
		}
	}
	return out
}
