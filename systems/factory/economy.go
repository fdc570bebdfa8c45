package factory

import (
	"github.com/hollowmoor/duskfang/archetypes"
	"github.com/hollowmoor/duskfang/components"
	"github.com/hollowmoor/duskfang/economy"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEconomy installs the ledger as a world resource.
func CreateEconomy(ecs *ecs.ECS, ledger *economy.Ledger) *donburi.Entry {
	entry := archetypes.Economy.Spawn(ecs)
	if ledger == nil {
		ledger = economy.NewLedger()
	}
	components.Economy.SetValue(entry, components.EconomyData{Ledger: ledger})
	return entry
}
