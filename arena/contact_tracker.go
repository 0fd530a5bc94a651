// File: arena/contact_tracker.go
package arena

import "github.com/lguibr/updown/game"

// ContactKey is an unordered pair of bodies. NewContactKey normalizes the
// order so (a, b) and (b, a) share a key.
type ContactKey struct {
	A game.Body
	B game.Body
}

func NewContactKey(a, b game.Body) ContactKey {
	if b.Category < a.Category || (b.Category == a.Category && b.ID < a.ID) {
		a, b = b, a
	}
	return ContactKey{A: a, B: b}
}

// Involves reports whether body is one side of the key.
func (k ContactKey) Involves(body game.Body) bool { return k.A == body || k.B == body }

// ContactTracker remembers which pairs are touching so a contact is reported
// once when it begins, not on every frame the shapes overlap.
type ContactTracker struct {
	active map[ContactKey]bool
}

func NewContactTracker() *ContactTracker {
	return &ContactTracker{active: make(map[ContactKey]bool)}
}

// Begin registers a contact. It returns true only if the pair was not already
// touching.
func (ct *ContactTracker) Begin(key ContactKey) bool {
	if ct.active[key] {
		return false
	}
	ct.active[key] = true
	return true
}

// End forgets a contact so the pair can begin again.
func (ct *ContactTracker) End(key ContactKey) { delete(ct.active, key) }

// Retain ends every active contact missing from touching.
func (ct *ContactTracker) Retain(touching map[ContactKey]bool) {
	for key := range ct.active {
		if !touching[key] {
			delete(ct.active, key)
		}
	}
}

// ActiveFor lists the active contacts involving body.
func (ct *ContactTracker) ActiveFor(body game.Body) []ContactKey {
	keys := make([]ContactKey, 0)
	for key := range ct.active {
		if key.Involves(body) {
			keys = append(keys, key)
		}
	}
	return keys
}

func (ct *ContactTracker) Len() int { return len(ct.active) }

// ClearAll forgets every contact, e.g. when a new wave reuses enemy ids.
func (ct *ContactTracker) ClearAll() {
	ct.active = make(map[ContactKey]bool)
}
