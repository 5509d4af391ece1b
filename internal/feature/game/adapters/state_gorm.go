// Package adapters provides the relational mirror of the game state.
package adapters

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"monopoly_backend/internal/feature/game/domain/entity"
	"monopoly_backend/internal/feature/game/usecase"
)

const insertBatchSize = 200

// stateGorm mirrors the game state into SQL tables through GORM.
// It works with any dialect GORM supports; sqlite and postgres are wired.
type stateGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure stateGorm implements StateRepository.
var _ usecase.StateRepository = (*stateGorm)(nil)

// NewStateGorm creates a new instance of stateGorm.
func NewStateGorm(db *gorm.DB) *stateGorm {
	return &stateGorm{db: db}
}

// Migrate creates or updates the mirror tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&OwnershipModel{}, &TransactionModel{}); err != nil {
		return fmt.Errorf("migrate game state tables: %w", err)
	}
	return nil
}

// Load reads both tables and rebuilds the state. Empty tables yield an empty state.
func (r *stateGorm) Load(ctx context.Context) (*entity.State, error) {
	var owns []OwnershipModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&owns).Error; err != nil {
		return nil, fmt.Errorf("load ownership records: %w", err)
	}
	var txs []TransactionModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&txs).Error; err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}
	return stateFromModels(owns, txs), nil
}

// Save replaces the stored state with s in a single database transaction.
func (r *stateGorm) Save(ctx context.Context, s *entity.State) error {
	owns, txs := modelsFromState(s)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&OwnershipModel{}).Error; err != nil {
			return fmt.Errorf("clear ownership records: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&TransactionModel{}).Error; err != nil {
			return fmt.Errorf("clear transactions: %w", err)
		}
		if len(owns) > 0 {
			if err := tx.CreateInBatches(owns, insertBatchSize).Error; err != nil {
				return fmt.Errorf("insert ownership records: %w", err)
			}
		}
		if len(txs) > 0 {
			if err := tx.CreateInBatches(txs, insertBatchSize).Error; err != nil {
				return fmt.Errorf("insert transactions: %w", err)
			}
		}
		return nil
	})
}
