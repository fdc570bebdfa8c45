package components

import (
	"sort"

	"github.com/yohamta/donburi"
)

// CameraZone is a static axis-aligned trigger rectangle that requests a
// target zoom while the tracked point is inside it. One-shot zones latch
// after their first positive containment check until Reset.
type CameraZone struct {
	Name     string
	X, Y     float64
	W, H     float64
	Zoom     float64
	Priority int // higher wins; ties keep insertion order
	OneShot  bool

	fired bool
	order int
}

// Contains reports whether the point lies inside the zone. For one-shot
// zones the first true evaluation permanently disables subsequent ones
// until Reset is called.
func (z *CameraZone) Contains(x, y float64) bool {
	if z.OneShot && z.fired {
		return false
	}
	inside := x >= z.X && x < z.X+z.W && y >= z.Y && y < z.Y+z.H
	if inside && z.OneShot {
		z.fired = true
	}
	return inside
}

// Fired reports whether a one-shot zone has already triggered.
func (z *CameraZone) Fired() bool {
	return z.OneShot && z.fired
}

// Reset re-arms a one-shot zone.
func (z *CameraZone) Reset() {
	z.fired = false
}

// ZoneManagerData holds the level's camera zones sorted by priority,
// descending. Overlap resolution is priority order, not insertion order;
// equal priorities keep insertion order stable.
type ZoneManagerData struct {
	zones []*CameraZone
}

// Add registers a zone and keeps the collection priority-sorted.
func (m *ZoneManagerData) Add(z *CameraZone) {
	z.order = len(m.zones)
	m.zones = append(m.zones, z)
	sort.SliceStable(m.zones, func(i, j int) bool {
		if m.zones[i].Priority != m.zones[j].Priority {
			return m.zones[i].Priority > m.zones[j].Priority
		}
		return m.zones[i].order < m.zones[j].order
	})
}

// ActiveZoneFor returns the highest-priority zone containing the point, or
// nil. Already-fired one-shot zones never match.
func (m *ZoneManagerData) ActiveZoneFor(x, y float64) *CameraZone {
	for _, z := range m.zones {
		if z.Fired() {
			continue
		}
		if z.Contains(x, y) {
			return z
		}
	}
	return nil
}

// ResetAll re-arms every one-shot zone, for level restarts.
func (m *ZoneManagerData) ResetAll() {
	for _, z := range m.zones {
		z.Reset()
	}
}

// Zones returns the managed zones in priority order.
func (m *ZoneManagerData) Zones() []*CameraZone {
	return m.zones
}

var Zones = donburi.NewComponentType[ZoneManagerData]()
