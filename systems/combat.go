package systems

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hollowmoor/duskfang/components"
	cfg "github.com/hollowmoor/duskfang/config"
	"github.com/hollowmoor/duskfang/economy"
	"github.com/hollowmoor/duskfang/events"
	"github.com/hollowmoor/duskfang/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat processes queued damage events, resolves the player's
// attack hitbox, enemy contact damage and coin pickups, then clamps
// health and kicks off death sequences.
func UpdateCombat(e *ecs.ECS) {
	processDamageEvents(e)
	resolveAttackHitbox(e)
	resolveEnemyContact(e)
	resolveCoinPickup(e)
	handleDebugKeys(e)
	clampHealthAndReap(e)
}

// QueueDamage attaches a one-shot damage event to an entity. Multiple
// hits in the same frame accumulate amount but keep the first knockback;
// combat resolves and removes the event on the next UpdateCombat pass.
func QueueDamage(entry *donburi.Entry, amount int, knockbackX, knockbackY float64) {
	if entry.HasComponent(components.DamageEvent) {
		dmg := components.DamageEvent.Get(entry)
		dmg.Amount += amount
		return
	}
	donburi.Add(entry, components.DamageEvent, &components.DamageEventData{
		Amount:     amount,
		KnockbackX: knockbackX,
		KnockbackY: knockbackY,
	})
}

func processDamageEvents(e *ecs.ECS) {
	components.DamageEvent.Each(e.World, func(entry *donburi.Entry) {
		dmg := components.DamageEvent.Get(entry)
		donburi.Remove[components.DamageEventData](entry, components.DamageEvent)

		if entry.HasComponent(components.Death) {
			return
		}

		if entry.HasComponent(components.Player) {
			applyPlayerDamage(e, entry, dmg)
			return
		}
		applyEnemyDamage(entry, dmg)
	})
}

// applyPlayerDamage runs the damage intake pipeline: invincibility gate,
// health deduction, knockback, invincibility window, damage event.
func applyPlayerDamage(e *ecs.ECS, entry *donburi.Entry, dmg *components.DamageEventData) {
	player := components.Player.Get(entry)
	if player.Invincible() || player.IsDead {
		return
	}

	hp := components.Health.Get(entry)
	hp.Current -= dmg.Amount

	physics := components.Physics.Get(entry)
	if dmg.KnockbackX != 0 || dmg.KnockbackY != 0 {
		physics.SpeedX = dmg.KnockbackX
		physics.SpeedY = dmg.KnockbackY
	} else {
		// No explicit direction: push opposite the current facing.
		physics.SpeedX = -player.Direction.X * cfg.Player.KnockbackX
		physics.SpeedY = cfg.Player.KnockbackY
	}

	player.InvulnTimer.Set(cfg.Player.InvincibilityTime)
	components.State.Get(entry).Enter(cfg.Stunned)
	TriggerDamageFlash(entry)
	TriggerScreenShake(e, cfg.ScreenShake.Medium.Intensity, cfg.ScreenShake.Medium.Duration)
	PlaySFX(e, SoundHit)

	events.PlayerDamagedEvent.Publish(e.World, events.PlayerDamaged{
		Health: hp.Current,
		Max:    hp.Max,
	})
}

func applyEnemyDamage(entry *donburi.Entry, dmg *components.DamageEventData) {
	hp := components.Health.Get(entry)
	hp.Current -= dmg.Amount

	physics := components.Physics.Get(entry)
	if dmg.KnockbackX != 0 || dmg.KnockbackY != 0 {
		physics.SpeedX = dmg.KnockbackX
		physics.SpeedY = dmg.KnockbackY
	}

	enemy := components.Enemy.Get(entry)
	enemy.HurtTimer.Set(enemyHurtTime(enemy.Kind))
	components.State.Get(entry).Enter(cfg.Hit)
	TriggerDamageFlash(entry)
}

// HealPlayer restores health up to the maximum and announces the change.
func HealPlayer(e *ecs.ECS, entry *donburi.Entry, amount int) {
	player := components.Player.Get(entry)
	if player.IsDead || amount <= 0 {
		return
	}

	hp := components.Health.Get(entry)
	if hp.Current >= hp.Max {
		return
	}
	hp.Current += amount
	if hp.Current > hp.Max {
		hp.Current = hp.Max
	}

	events.PlayerHealedEvent.Publish(e.World, events.PlayerHealed{
		Health: hp.Current,
		Max:    hp.Max,
	})
}

// AttackHitbox returns the melee strike rectangle for the player's
// current position and facing.
func AttackHitbox(playerObj *resolv.Object, facingRight bool) (x, y, w, h float64) {
	w = cfg.Player.HitboxWidth
	h = cfg.Player.HitboxHeight
	y = playerObj.Y + playerObj.H/2 - h/2
	if facingRight {
		x = playerObj.X + playerObj.W/2 + cfg.Player.HitboxOffsetX - w/2
	} else {
		x = playerObj.X + playerObj.W/2 - cfg.Player.HitboxOffsetX - w/2
	}
	return x, y, w, h
}

// resolveAttackHitbox sweeps the melee rectangle over enemies while the
// attack window is open. Each enemy is struck at most once per swing.
func resolveAttackHitbox(e *ecs.ECS) {
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	if !player.Attacking() || player.IsDead {
		return
	}

	playerObj := components.Object.Get(playerEntry).Object
	hx, hy, hw, hh := AttackHitbox(playerObj, player.FacingRight())

	direction := cfg.DirectionRight
	if !player.FacingRight() {
		direction = cfg.DirectionLeft
	}

	tags.Enemy.Each(e.World, func(enemyEntry *donburi.Entry) {
		if enemyEntry.HasComponent(components.Death) {
			return
		}
		if _, hit := player.AttackHit[enemyEntry]; hit {
			return
		}

		enemyObj := components.Object.Get(enemyEntry).Object
		if !rectsOverlap(hx, hy, hw, hh, enemyObj.X, enemyObj.Y, enemyObj.W, enemyObj.H) {
			return
		}

		player.AttackHit[enemyEntry] = struct{}{}
		QueueDamage(enemyEntry, cfg.Player.AttackDamage,
			direction*cfg.Enemy.KnockbackX, cfg.Enemy.KnockbackY)
		TriggerHitFlash(enemyEntry)
		TriggerScreenShake(e, cfg.ScreenShake.Small.Intensity, cfg.ScreenShake.Small.Duration)
		PlaySFX(e, SoundAttack)
	})
}

// resolveEnemyContact applies touch damage when an enemy body overlaps
// the player. The invincibility gate in applyPlayerDamage keeps repeated
// contact from draining health every tick.
func resolveEnemyContact(e *ecs.ECS) {
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	if player.Invincible() || player.IsDead {
		return
	}
	playerObj := components.Object.Get(playerEntry).Object

	check := playerObj.Check(0, 0, tags.ResolvEnemy)
	if check == nil {
		return
	}

	for _, enemyObj := range check.ObjectsByTags(tags.ResolvEnemy) {
		enemyEntry, ok := enemyObj.Data.(*donburi.Entry)
		if !ok || enemyEntry == nil || !enemyEntry.Valid() {
			continue
		}
		if enemyEntry.HasComponent(components.Death) {
			continue
		}

		enemy := components.Enemy.Get(enemyEntry)
		direction := 1.0
		if playerObj.X+playerObj.W/2 < enemyObj.X+enemyObj.W/2 {
			direction = -1.0
		}
		QueueDamage(playerEntry, enemy.Damage,
			direction*cfg.Player.KnockbackX, cfg.Player.KnockbackY)
		return
	}
}

func resolveCoinPickup(e *ecs.ECS) {
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	if components.Player.Get(playerEntry).IsDead {
		return
	}
	playerObj := components.Object.Get(playerEntry).Object

	check := playerObj.Check(0, 0, tags.ResolvCoin)
	if check == nil {
		return
	}

	for _, coinObj := range check.ObjectsByTags(tags.ResolvCoin) {
		coinEntry, ok := coinObj.Data.(*donburi.Entry)
		if !ok || coinEntry == nil || !coinEntry.Valid() {
			continue
		}

		value := components.Coin.Get(coinEntry).Value
		ledger := currentLedger(e)
		if ledger != nil {
			ledger.AddCoins(value)
			events.CoinCollectedEvent.Publish(e.World, events.CoinCollected{
				Total: ledger.Coins,
			})
		}
		PlaySFX(e, SoundCoin)

		if spaceEntry, ok := components.Space.First(e.World); ok {
			components.Space.Get(spaceEntry).Remove(coinObj)
		}
		e.World.Remove(coinEntry.Entity())
	}
}

// Debug keys: H hurts the player, G heals. Handy when tuning combat.
func handleDebugKeys(e *ecs.ECS) {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		tags.Player.Each(e.World, func(entry *donburi.Entry) {
			QueueDamage(entry, 10, 0, 0)
		})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		tags.Player.Each(e.World, func(entry *donburi.Entry) {
			HealPlayer(e, entry, 10)
		})
	}
}

func clampHealthAndReap(e *ecs.ECS) {
	components.Health.Each(e.World, func(entry *donburi.Entry) {
		hp := components.Health.Get(entry)
		if hp.Current < 0 {
			hp.Current = 0
		}
		if hp.Current > hp.Max {
			hp.Current = hp.Max
		}

		if hp.Current == 0 && !entry.HasComponent(components.Death) {
			startDeathSequence(e, entry)
		}
	})
}

func startDeathSequence(e *ecs.ECS, entry *donburi.Entry) {
	if entry.HasComponent(components.Player) {
		startPlayerDeath(e, entry)
		return
	}
	startEnemyDeath(e, entry)
}

func startPlayerDeath(e *ecs.ECS, entry *donburi.Entry) {
	player := components.Player.Get(entry)
	player.IsDead = true

	physics := components.Physics.Get(entry)
	physics.SpeedX = 0
	physics.SpeedY = 0

	components.State.Get(entry).Enter(cfg.Die)
	donburi.Add(entry, components.Death, &components.DeathData{})
	components.Death.Get(entry).Timer.Set(cfg.Player.DeathTime)

	if ledger := currentLedger(e); ledger != nil {
		ledger.RecordDeath()
	}
	TriggerScreenShake(e, cfg.ScreenShake.Heavy.Intensity, cfg.ScreenShake.Heavy.Duration)
	PlaySFX(e, SoundPlayerDeath)
}

func startEnemyDeath(e *ecs.ECS, entry *donburi.Entry) {
	enemy := components.Enemy.Get(entry)
	physics := components.Physics.Get(entry)
	obj := components.Object.Get(entry).Object

	// Grounded corpses tumble away from their last hit; airborne ones
	// drop once gravity kicks in.
	physics.SpeedX = -enemy.Direction.X * cfg.Enemy.KnockbackX / 2
	physics.SpeedY = cfg.Combat.KnockbackUpwardForce
	if enemy.Kind == components.EnemyBat {
		physics.Gravity = cfg.Bat.DeathGravity
		physics.MaxFallSpeed = cfg.Bat.MaxFallSpeed
	}

	components.State.Get(entry).Enter(cfg.Die)
	donburi.Add(entry, components.Death, &components.DeathData{})
	components.Death.Get(entry).Timer.Set(enemyDeathTime(enemy.Kind))

	coins := enemyCoinDrop(enemy.Kind)
	if ledger := currentLedger(e); ledger != nil {
		ledger.RecordKill()
		ledger.AddCoins(coins)
		events.CoinCollectedEvent.Publish(e.World, events.CoinCollected{
			Total: ledger.Coins,
		})
	}
	events.EnemyKilledEvent.Publish(e.World, events.EnemyKilled{
		X:     obj.X + obj.W/2,
		Y:     obj.Y + obj.H/2,
		Coins: coins,
	})
	PlaySFX(e, SoundEnemyDeath)
}

func enemyHurtTime(kind components.EnemyKind) float64 {
	if kind == components.EnemyBat {
		return cfg.Bat.HurtTime
	}
	return cfg.Wolf.HurtTime
}

func enemyDeathTime(kind components.EnemyKind) float64 {
	if kind == components.EnemyBat {
		return cfg.Bat.DeathTime
	}
	return cfg.Wolf.DeathTime
}

func enemyCoinDrop(kind components.EnemyKind) int {
	min, max := cfg.Wolf.CoinDropMin, cfg.Wolf.CoinDropMax
	if kind == components.EnemyBat {
		min, max = cfg.Bat.CoinDropMin, cfg.Bat.CoinDropMax
	}
	if max <= min {
		return min
	}
	return min + rand.Intn(max-min+1)
}

func currentLedger(e *ecs.ECS) *economy.Ledger {
	entry, ok := components.Economy.First(e.World)
	if !ok {
		return nil
	}
	return components.Economy.Get(entry).Ledger
}

func rectsOverlap(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw && ax+aw > bx && ay < by+bh && ay+ah > by
}
