// Package economy holds the player's persistent ledger: coins, kills and
// deaths. It is an explicit context object injected into the systems that
// need it rather than ambient global state, with a defined reset lifecycle.
package economy

// Ledger tracks currency and lifetime stats for one save slot.
type Ledger struct {
	Coins  int `json:"coins"`
	Kills  int `json:"kills"`
	Deaths int `json:"deaths"`
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// AddCoins credits n coins. Negative amounts are ignored.
func (l *Ledger) AddCoins(n int) {
	if n <= 0 {
		return
	}
	l.Coins += n
}

// SpendCoins debits n coins and reports whether the balance covered it.
// The balance is left untouched on failure.
func (l *Ledger) SpendCoins(n int) bool {
	if n < 0 || n > l.Coins {
		return false
	}
	l.Coins -= n
	return true
}

// RecordKill increments the lifetime kill counter.
func (l *Ledger) RecordKill() {
	l.Kills++
}

// RecordDeath increments the lifetime death counter.
func (l *Ledger) RecordDeath() {
	l.Deaths++
}

// Reset zeroes the ledger.
func (l *Ledger) Reset() {
	*l = Ledger{}
}
