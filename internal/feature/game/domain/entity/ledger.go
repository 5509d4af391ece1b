package entity

import "sort"

// Well-known transaction sources.
const (
	SourceTreasurer = "Treasurer"
	SourceGameStart = "Game Start"
)

// Transaction is one signed cash movement on a player's ledger.
// Positive amounts are credits, negative amounts are debits.
type Transaction struct {
	Amount int
	Source string
}

// PlayerTransaction is a Transaction attributed to its player, used for flattened listings.
type PlayerTransaction struct {
	Player string
	Amount int
	Source string
}

// Ledger maps player → chronological transactions. It is append-only;
// balances are always derived from it and never stored.
type Ledger map[string][]Transaction

// Append adds tx at the end of the player's list, creating the list if needed.
func (l Ledger) Append(player string, tx Transaction) {
	l[player] = append(l[player], tx)
}

// Balance is the sum of the player's transactions.
func (l Ledger) Balance(player string) int {
	total := 0
	for _, tx := range l[player] {
		total += tx.Amount
	}
	return total
}

// Balances returns the balance of every player with a ledger.
func (l Ledger) Balances() map[string]int {
	out := make(map[string]int, len(l))
	for player := range l {
		out[player] = l.Balance(player)
	}
	return out
}

// Flatten lists every transaction, players sorted by name and each player's
// entries in the order they were recorded.
func (l Ledger) Flatten() []PlayerTransaction {
	players := make([]string, 0, len(l))
	for p := range l {
		players = append(players, p)
	}
	sort.Strings(players)

	out := make([]PlayerTransaction, 0)
	for _, p := range players {
		for _, tx := range l[p] {
			out = append(out, PlayerTransaction{Player: p, Amount: tx.Amount, Source: tx.Source})
		}
	}
	return out
}

// Clone returns a deep copy.
func (l Ledger) Clone() Ledger {
	out := make(Ledger, len(l))
	for p, txs := range l {
		out[p] = append([]Transaction(nil), txs...)
	}
	return out
}
