package systems

import (
	"math"

	"github.com/hollowmoor/duskfang/components"
	cfg "github.com/hollowmoor/duskfang/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects winds down sprite tint flashes and squash/stretch scale.
// Everything here is cosmetic; the simulation never reads it back.
func UpdateEffects(e *ecs.ECS) {
	components.Flash.Each(e.World, func(entry *donburi.Entry) {
		components.Flash.Get(entry).Timer.Tick(cfg.TickDelta)
	})

	var toRemove []*donburi.Entry
	components.SquashStretch.Each(e.World, func(entry *donburi.Entry) {
		ss := components.SquashStretch.Get(entry)
		ss.ScaleX += (ss.TargetX - ss.ScaleX) * ss.LerpSpeed
		ss.ScaleY += (ss.TargetY - ss.ScaleY) * ss.LerpSpeed

		const threshold = 0.01
		if math.Abs(ss.ScaleX-ss.TargetX) < threshold && math.Abs(ss.ScaleY-ss.TargetY) < threshold {
			toRemove = append(toRemove, entry)
		}
	})
	for _, entry := range toRemove {
		entry.RemoveComponent(components.SquashStretch)
	}
}

// TriggerHitFlash tints an entity white for a few frames after it deals
// or receives a clean hit.
func TriggerHitFlash(entry *donburi.Entry) {
	if !entry.HasComponent(components.Flash) {
		return
	}
	flash := components.Flash.Get(entry)
	flash.Timer.Set(cfg.Combat.HitFlashTime)
	flash.R, flash.G, flash.B = 1, 1, 1
}

// TriggerDamageFlash tints an entity red when it takes damage.
func TriggerDamageFlash(entry *donburi.Entry) {
	if !entry.HasComponent(components.Flash) {
		return
	}
	flash := components.Flash.Get(entry)
	flash.Timer.Set(cfg.Combat.DamageFlashTime)
	flash.R, flash.G, flash.B = 1, 0.25, 0.25
}

// TriggerSquash starts a landing squash that eases back to normal scale.
func TriggerSquash(entry *donburi.Entry) {
	if entry.HasComponent(components.SquashStretch) {
		ss := components.SquashStretch.Get(entry)
		ss.ScaleX, ss.ScaleY = 1.25, 0.75
		return
	}
	donburi.Add(entry, components.SquashStretch, &components.SquashStretchData{
		ScaleX:    1.25,
		ScaleY:    0.75,
		TargetX:   1,
		TargetY:   1,
		LerpSpeed: 0.2,
	})
}
