// Package statemirror keeps a Redis copy of the game state.
package statemirror

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"monopoly_backend/internal/feature/game/domain/entity"
	"monopoly_backend/internal/feature/game/usecase"
)

// stateDoc is the JSON document stored under the state key.
type stateDoc struct {
	Properties   entity.OwnershipMap      `json:"properties"`
	Holdings     entity.OwnershipMap      `json:"holdings"`
	Transactions map[string][]transaction `json:"transactions"`
}

type transaction struct {
	Amount int    `json:"amount"`
	Source string `json:"source"`
}

// StateRedis implements usecase.StateRepository with a single Redis string key.
type StateRedis struct {
	client *redis.Client
	prefix string
}

// Compile-time check to ensure StateRedis implements StateRepository.
var _ usecase.StateRepository = (*StateRedis)(nil)

// NewStateRedis creates a new StateRedis instance.
func NewStateRedis(client *redis.Client, prefix string) *StateRedis {
	return &StateRedis{
		client: client,
		prefix: prefix,
	}
}

// stateKey returns the Redis key holding the state document.
func (r *StateRedis) stateKey() string {
	return fmt.Sprintf("%s:state", r.prefix)
}

// Save overwrites the stored document with s. The key never expires.
// An empty state, as left by a game reset, removes the key instead.
func (r *StateRedis) Save(ctx context.Context, s *entity.State) error {
	if s.IsEmpty() {
		return r.clear(ctx)
	}
	data, err := EncodeState(s)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.stateKey(), data, 0).Err()
}

// Load reads the stored document. A missing key yields an empty state.
func (r *StateRedis) Load(ctx context.Context) (*entity.State, error) {
	data, err := r.client.Get(ctx, r.stateKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return entity.NewState(), nil
		}
		return nil, err
	}
	return DecodeState(data)
}

// clear deletes the stored document.
func (r *StateRedis) clear(ctx context.Context) error {
	return r.client.Del(ctx, r.stateKey()).Err()
}

// EncodeState renders s as the JSON document stored in Redis.
func EncodeState(s *entity.State) ([]byte, error) {
	doc := stateDoc{
		Properties:   s.Properties,
		Holdings:     s.Holdings,
		Transactions: make(map[string][]transaction, len(s.Ledger)),
	}
	for player, txs := range s.Ledger {
		out := make([]transaction, len(txs))
		for i, tx := range txs {
			out[i] = transaction{Amount: tx.Amount, Source: tx.Source}
		}
		doc.Transactions[player] = out
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal state: %w", err)
	}
	return data, nil
}

// DecodeState parses a document written by EncodeState.
func DecodeState(data []byte) (*entity.State, error) {
	var doc stateDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal state: %w", err)
	}

	s := entity.NewState()
	for _, rec := range doc.Properties.Records() {
		s.Properties.Set(rec.Player, rec.Group, rec.Asset, rec.Houses)
	}
	for _, rec := range doc.Holdings.Records() {
		s.Holdings.Set(rec.Player, rec.Group, rec.Asset, 0)
	}
	for player, txs := range doc.Transactions {
		for _, tx := range txs {
			s.Ledger.Append(player, entity.Transaction{Amount: tx.Amount, Source: tx.Source})
		}
	}
	return s, nil
}
