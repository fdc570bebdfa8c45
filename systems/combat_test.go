package systems

import (
	"testing"

	"github.com/hollowmoor/duskfang/components"
	cfg "github.com/hollowmoor/duskfang/config"
	"github.com/hollowmoor/duskfang/economy"
	"github.com/hollowmoor/duskfang/events"
	"github.com/hollowmoor/duskfang/systems/factory"
	"github.com/yohamta/donburi"
)

func TestEnemyDeathCreditsLedger(t *testing.T) {
	e := newTestECS(640, 600)
	groundAt(e, 0, 400, 640, 20)
	ledger := economy.NewLedger()
	factory.CreateEconomy(e, ledger)

	wolfEntry := factory.CreateWolf(e, 300, 382)

	QueueDamage(wolfEntry, 999, 0, 0)
	UpdateCombat(e)
	UpdateCombat(e)

	if !wolfEntry.HasComponent(components.Death) {
		t.Fatal("lethal damage should start the death sequence")
	}
	if ledger.Kills != 1 {
		t.Fatalf("kill count = %d, want 1", ledger.Kills)
	}
	if ledger.Coins < cfg.Wolf.CoinDropMin || ledger.Coins > cfg.Wolf.CoinDropMax {
		t.Fatalf("coin drop %d outside [%d,%d]", ledger.Coins, cfg.Wolf.CoinDropMin, cfg.Wolf.CoinDropMax)
	}
}

func TestDeadEnemyTakesNoFurtherDamage(t *testing.T) {
	e := newTestECS(640, 600)
	wolfEntry := factory.CreateWolf(e, 300, 382)
	health := components.Health.Get(wolfEntry)

	QueueDamage(wolfEntry, 999, 0, 0)
	UpdateCombat(e)

	QueueDamage(wolfEntry, 10, 0, 0)
	UpdateCombat(e)
	if health.Current != 0 {
		t.Fatalf("corpse health changed to %d", health.Current)
	}
}

func TestCoinPickup(t *testing.T) {
	e := newTestECS(640, 600)
	groundAt(e, 0, 400, 640, 20)
	ledger := economy.NewLedger()
	factory.CreateEconomy(e, ledger)

	playerEntry := factory.CreatePlayer(e, 100, 378)
	playerObj := components.Object.Get(playerEntry).Object
	coinEntry := factory.CreateCoin(e, playerObj.X, playerObj.Y)

	var announced int
	events.CoinCollectedEvent.Subscribe(e.World, func(w donburi.World, ev events.CoinCollected) {
		announced = ev.Total
	})

	UpdateCombat(e)
	UpdateEvents(e)

	if ledger.Coins != cfg.Combat.CoinValue {
		t.Fatalf("ledger has %d coins, want %d", ledger.Coins, cfg.Combat.CoinValue)
	}
	if coinEntry.Valid() {
		t.Fatal("collected coin should despawn")
	}
	if announced != ledger.Coins {
		t.Fatalf("pickup event total = %d, want %d", announced, ledger.Coins)
	}
}

func TestContactDamagePushesAwayFromEnemy(t *testing.T) {
	e := newTestECS(640, 600)
	groundAt(e, 0, 400, 640, 20)

	playerEntry := factory.CreatePlayer(e, 300, 378)
	playerObj := components.Object.Get(playerEntry).Object
	factory.CreateWolf(e, playerObj.X+8, 382) // overlapping, enemy to the right

	physics := components.Physics.Get(playerEntry)
	health := components.Health.Get(playerEntry)
	start := health.Current

	UpdateCombat(e) // contact queues the hit
	UpdateCombat(e) // next pass applies it

	if health.Current != start-cfg.Wolf.Damage {
		t.Fatalf("contact damage not applied, health %d -> %d", start, health.Current)
	}
	if physics.SpeedX >= 0 {
		t.Fatalf("knockback should push left, away from the enemy, vx=%f", physics.SpeedX)
	}
	if physics.SpeedY >= 0 {
		t.Fatalf("knockback should lift the player, vy=%f", physics.SpeedY)
	}
}

func TestHealClampsAtMax(t *testing.T) {
	e := newTestECS(640, 600)
	playerEntry := factory.CreatePlayer(e, 100, 378)
	health := components.Health.Get(playerEntry)

	health.Current = health.Max - 3
	HealPlayer(e, playerEntry, 50)
	if health.Current != health.Max {
		t.Fatalf("heal should clamp at max, got %d/%d", health.Current, health.Max)
	}

	components.Player.Get(playerEntry).IsDead = true
	health.Current = 1
	HealPlayer(e, playerEntry, 50)
	if health.Current != 1 {
		t.Fatal("dead player must not heal")
	}
}
