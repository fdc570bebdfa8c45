package components

import "github.com/yohamta/donburi"

// CoinData is a static pickup granting currency on player contact.
type CoinData struct {
	Value int
}

var Coin = donburi.NewComponentType[CoinData]()
