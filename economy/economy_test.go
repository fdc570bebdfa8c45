package economy

import "testing"

func TestAddCoins(t *testing.T) {
	l := NewLedger()
	l.AddCoins(5)
	l.AddCoins(3)
	if l.Coins != 8 {
		t.Fatalf("expected 8 coins, got %d", l.Coins)
	}

	l.AddCoins(-10)
	if l.Coins != 8 {
		t.Fatalf("negative credit should be ignored, got %d", l.Coins)
	}
}

func TestSpendCoins(t *testing.T) {
	l := NewLedger()
	l.AddCoins(10)

	if !l.SpendCoins(7) {
		t.Fatal("spend within balance should succeed")
	}
	if l.Coins != 3 {
		t.Fatalf("expected 3 coins after spend, got %d", l.Coins)
	}

	if l.SpendCoins(4) {
		t.Fatal("overspend should fail")
	}
	if l.Coins != 3 {
		t.Fatalf("failed spend must not change balance, got %d", l.Coins)
	}

	if l.SpendCoins(-1) {
		t.Fatal("negative spend should fail")
	}
}

func TestRecordAndReset(t *testing.T) {
	l := NewLedger()
	l.RecordKill()
	l.RecordKill()
	l.RecordDeath()
	l.AddCoins(2)

	if l.Kills != 2 || l.Deaths != 1 || l.Coins != 2 {
		t.Fatalf("unexpected ledger state: %+v", l)
	}

	l.Reset()
	if l.Kills != 0 || l.Deaths != 0 || l.Coins != 0 {
		t.Fatalf("reset should zero everything: %+v", l)
	}
}
