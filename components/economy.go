package components

import (
	"github.com/hollowmoor/duskfang/economy"
	"github.com/yohamta/donburi"
)

// EconomyData wraps the ledger as a singleton world resource so combat and
// death systems can reach it without ambient globals.
type EconomyData struct {
	Ledger *economy.Ledger
}

var Economy = donburi.NewComponentType[EconomyData]()
