package adapters

import "monopoly_backend/internal/feature/game/domain/entity"

// Ownership kinds stored in the ownership_records table.
const (
	kindProperty = "property"
	kindHolding  = "holding"
)

// OwnershipModel is the GORM model for the ownership_records table.
// Street properties and commercial holdings share the table, told apart by Kind.
type OwnershipModel struct {
	ID         uint   `gorm:"primaryKey"`
	Kind       string `gorm:"size:16;not null;uniqueIndex:idx_ownership_asset"`
	Player     string `gorm:"size:255;not null;index"`
	AssetGroup string `gorm:"size:255;not null;uniqueIndex:idx_ownership_asset"`
	Asset      string `gorm:"size:255;not null;uniqueIndex:idx_ownership_asset"`
	Houses     int    `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM.
func (OwnershipModel) TableName() string {
	return "ownership_records"
}

// TransactionModel is the GORM model for the transactions table.
// ID preserves the order in which entries were appended.
type TransactionModel struct {
	ID     uint   `gorm:"primaryKey"`
	Player string `gorm:"size:255;not null;index"`
	Amount int    `gorm:"not null"`
	Source string `gorm:"size:255;not null"`
}

// TableName returns the table name for GORM.
func (TransactionModel) TableName() string {
	return "transactions"
}

// modelsFromState flattens s into rows. Transactions keep their per-player order.
func modelsFromState(s *entity.State) ([]OwnershipModel, []TransactionModel) {
	var owns []OwnershipModel
	for _, r := range s.Properties.Records() {
		owns = append(owns, OwnershipModel{Kind: kindProperty, Player: r.Player, AssetGroup: r.Group, Asset: r.Asset, Houses: r.Houses})
	}
	for _, r := range s.Holdings.Records() {
		owns = append(owns, OwnershipModel{Kind: kindHolding, Player: r.Player, AssetGroup: r.Group, Asset: r.Asset})
	}

	var txs []TransactionModel
	for _, tx := range s.Ledger.Flatten() {
		txs = append(txs, TransactionModel{Player: tx.Player, Amount: tx.Amount, Source: tx.Source})
	}
	return owns, txs
}

// stateFromModels rebuilds a State from rows ordered by ID.
func stateFromModels(owns []OwnershipModel, txs []TransactionModel) *entity.State {
	s := entity.NewState()
	for _, m := range owns {
		switch m.Kind {
		case kindHolding:
			s.Holdings.Set(m.Player, m.AssetGroup, m.Asset, 0)
		default:
			s.Properties.Set(m.Player, m.AssetGroup, m.Asset, m.Houses)
		}
	}
	for _, m := range txs {
		s.Ledger.Append(m.Player, entity.Transaction{Amount: m.Amount, Source: m.Source})
	}
	return s
}
