// Package usecase はゲームエンジン（資産割り当て・台帳・ライフサイクル操作）を実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	catalogdomain "monopoly_backend/internal/feature/catalog/domain"
	catalog "monopoly_backend/internal/feature/catalog/domain/entity"
	"monopoly_backend/internal/feature/game/domain"
	"monopoly_backend/internal/feature/game/domain/entity"
)

const (
	minDiceRoll = 2
	maxDiceRoll = 12
)

// StateRepository はゲーム状態を永続ストレージへミラーします。
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type StateRepository interface {
	// Load は最後に保存された状態を返します。未保存なら空の状態を返します。
	Load(ctx context.Context) (*entity.State, error)
	// Save は保存済みの状態を s で置き換えます。
	Save(ctx context.Context, s *entity.State) error
}

// GameUsecase は唯一のゲーム状態を保持します。
// ストア全体を1つのmutexで守るため、所有者チェックとその後の書き込みはアトミックです。
type GameUsecase struct {
	catalog *catalog.Catalog
	repo    StateRepository

	mu      sync.Mutex
	state   *entity.State
	version uint64

	saveMu       sync.Mutex
	savedVersion uint64
}

// NewGameUsecase は空の状態で GameUsecase を生成します。
// repo が nil の場合、状態はメモリ上にのみ保持されます。
func NewGameUsecase(c *catalog.Catalog, repo StateRepository) *GameUsecase {
	return &GameUsecase{catalog: c, repo: repo, state: entity.NewState()}
}

// Restore はメモリ上の状態をリポジトリに保存された状態で置き換えます。
func (u *GameUsecase) Restore(ctx context.Context) error {
	if u.repo == nil {
		return nil
	}
	s, err := u.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("restore game state: %w", err)
	}
	if s == nil {
		s = entity.NewState()
	}
	u.mu.Lock()
	u.state = s
	u.mu.Unlock()
	return nil
}

// update はストアのロック下で fn を実行します。
// fn が変更を報告した場合、アンロック前にスナップショットを取り、その後リポジトリへ渡します。
func (u *GameUsecase) update(ctx context.Context, fn func(s *entity.State) bool) {
	u.mu.Lock()
	changed := fn(u.state)
	var (
		snap *entity.State
		ver  uint64
	)
	if changed && u.repo != nil {
		u.version++
		ver = u.version
		snap = u.state.Clone()
	}
	u.mu.Unlock()

	if snap != nil {
		u.persist(ctx, snap, ver)
	}
}

// persist は、より新しいスナップショットが書き込み済みでなければ snap を保存します。
// 失敗はログに残すだけで、メモリ上の状態が正となります。
func (u *GameUsecase) persist(ctx context.Context, snap *entity.State, ver uint64) {
	u.saveMu.Lock()
	defer u.saveMu.Unlock()
	if ver <= u.savedVersion {
		return
	}
	if err := u.repo.Save(ctx, snap); err != nil {
		slog.Error("failed to mirror game state", "version", ver, "error", err)
		return
	}
	u.savedVersion = ver
}

// normalizeName は前後の空白を取り除きます。
// プレイヤーは名前で識別されるため、すべての入口で状態に触れる前に正規化します。
func normalizeName(name string) string {
	return strings.TrimSpace(name)
}

// AssignProperty は土地をプレイヤーに割り当て、housesToAdd 軒の家を建てます。
// チェック順: プレイヤー名 → 家の数 → カタログ → 所有者。
// 土地と家の代金（Treasurer への支払い）は同じクリティカルセクションで記録します。
func (u *GameUsecase) AssignProperty(ctx context.Context, player, area, asset string, housesToAdd int) entity.AssignmentResult {
	player = normalizeName(player)
	var res entity.AssignmentResult
	u.update(ctx, func(s *entity.State) bool {
		res = u.assignProperty(s, player, area, asset, housesToAdd)
		return res.OK()
	})
	if res.OK() {
		slog.Info("property assigned", "player", player, "area", area, "asset", asset,
			"houses", res.Houses, "charged", res.Charged, "status", res.Status)
	}
	return res
}

func (u *GameUsecase) assignProperty(s *entity.State, player, area, asset string, housesToAdd int) entity.AssignmentResult {
	if player == "" {
		return entity.Rejected(domain.ErrEmptyPlayerName, "Player name must not be empty")
	}
	if housesToAdd < 0 {
		return entity.Rejected(domain.ErrNegativeHouses, "Houses must be non-negative")
	}
	prop, err := u.catalog.LookupProperty(area, asset)
	if err != nil {
		return entity.Rejected(fmt.Errorf("%w: %w", domain.ErrUnknownAsset, err),
			fmt.Sprintf("Asset does not exist under area: %q in %q", asset, area))
	}
	if owner, ok := s.Properties.OwnerOf(area, asset); ok && owner != player {
		return entity.Rejected(domain.ErrOwnedByOther,
			fmt.Sprintf("Asset already assigned to %s; assignment denied", owner))
	}

	res := entity.AssignmentResult{Status: entity.StatusSuccess}
	existing, owned := s.Properties.Houses(player, area, asset)
	if !owned {
		res.Houses = housesToAdd
		res.Message = fmt.Sprintf("Asset '%s' (%s) assigned to player '%s' with %d houses", asset, area, player, housesToAdd)
		if housesToAdd > catalog.MaxHouses {
			res.Status = entity.StatusWarning
			res.Houses = catalog.MaxHouses
			res.Message = fmt.Sprintf("Assigning %d houses to asset '%s' (%s) exceeds maximum of %d, capping at %d",
				housesToAdd, asset, area, catalog.MaxHouses, catalog.MaxHouses)
		}
		res.HousesAdded = res.Houses
	} else {
		total := existing + housesToAdd
		res.Houses = total
		res.Message = fmt.Sprintf("Adding %d houses to asset '%s' for player '%s': %d + %d = %d houses",
			housesToAdd, asset, player, existing, housesToAdd, total)
		if total > catalog.MaxHouses {
			res.Status = entity.StatusWarning
			res.Houses = catalog.MaxHouses
			res.Message = fmt.Sprintf("Adding %d houses to asset '%s' for player '%s' would result in %d houses, exceeds maximum of %d, capping at %d",
				housesToAdd, asset, player, total, catalog.MaxHouses, catalog.MaxHouses)
		}
		res.HousesAdded = res.Houses - existing
	}

	s.Properties.Set(player, area, asset, res.Houses)
	res.Charged = prop.PurchaseCost(!owned, res.HousesAdded)
	if res.Charged > 0 {
		s.Ledger.Append(player, entity.Transaction{Amount: -res.Charged, Source: entity.SourceTreasurer})
		res.Message += fmt.Sprintf("; paid $%d to %s", res.Charged, entity.SourceTreasurer)
	}
	return res
}

// BuyCommercialAsset は交通・公共事業などの商業資産の保有を記録し、価格を引き落とします。
// 価格のない資産は無料で取得されます。
func (u *GameUsecase) BuyCommercialAsset(ctx context.Context, player, assetType, assetName string) entity.AssignmentResult {
	player = normalizeName(player)
	var res entity.AssignmentResult
	u.update(ctx, func(s *entity.State) bool {
		res = u.buyCommercialAsset(s, player, assetType, assetName)
		return res.OK()
	})
	if res.OK() {
		slog.Info("commercial asset bought", "player", player, "type", assetType, "asset", assetName, "charged", res.Charged)
	}
	return res
}

func (u *GameUsecase) buyCommercialAsset(s *entity.State, player, assetType, assetName string) entity.AssignmentResult {
	if player == "" {
		return entity.Rejected(domain.ErrEmptyPlayerName, "Player name must not be empty")
	}
	ca, err := u.catalog.LookupCommercialAsset(assetType, assetName)
	if err != nil {
		return entity.Rejected(fmt.Errorf("%w: %w", domain.ErrUnknownAsset, err),
			fmt.Sprintf("Asset does not exist under type: %q in %q", assetName, assetType))
	}
	if owner, ok := s.Holdings.OwnerOf(assetType, assetName); ok {
		if owner == player {
			return entity.Rejected(domain.ErrAlreadyHeld, fmt.Sprintf("Asset already owned by %s", player))
		}
		return entity.Rejected(domain.ErrOwnedByOther,
			fmt.Sprintf("Asset already assigned to %s; assignment denied", owner))
	}

	s.Holdings.Set(player, assetType, assetName, 0)
	res := entity.AssignmentResult{Status: entity.StatusSuccess, Charged: ca.PurchasePrice()}
	if res.Charged > 0 {
		s.Ledger.Append(player, entity.Transaction{Amount: -res.Charged, Source: entity.SourceTreasurer})
		res.Message = fmt.Sprintf("Player '%s' bought '%s' (%s); paid $%d to %s",
			player, assetName, assetType, res.Charged, entity.SourceTreasurer)
	} else {
		res.Message = fmt.Sprintf("Player '%s' acquired '%s' (%s) at no cost", player, assetName, assetType)
	}
	return res
}

// PayRent は payer から receiver へ amount を2件の取引として移動します。
// 各取引の source は相手方の名前です。金額の符号はチェックしません。
func (u *GameUsecase) PayRent(ctx context.Context, payer, receiver string, amount int) (string, error) {
	payer, receiver = normalizeName(payer), normalizeName(receiver)
	if payer == "" || receiver == "" {
		return "", domain.ErrEmptyPlayerName
	}
	u.update(ctx, func(s *entity.State) bool {
		s.Ledger.Append(receiver, entity.Transaction{Amount: amount, Source: payer})
		s.Ledger.Append(payer, entity.Transaction{Amount: -amount, Source: receiver})
		return true
	})
	slog.Info("rent paid", "payer", payer, "receiver", receiver, "amount", amount)
	return fmt.Sprintf("%s paid $%d rent to %s", payer, amount, receiver), nil
}

// TreasuryAction はプレイヤーと Treasurer の間の符号付き支払いを記録します。
// 正の値は受け取り、負の値は支払いです。0 もそのまま記録します。
func (u *GameUsecase) TreasuryAction(ctx context.Context, player string, amount int) (string, error) {
	player = normalizeName(player)
	if player == "" {
		return "", domain.ErrEmptyPlayerName
	}
	u.update(ctx, func(s *entity.State) bool {
		s.Ledger.Append(player, entity.Transaction{Amount: amount, Source: entity.SourceTreasurer})
		return true
	})
	slog.Info("treasury action", "player", player, "amount", amount)
	if amount >= 0 {
		return fmt.Sprintf("%s collected $%d from %s", player, amount, entity.SourceTreasurer), nil
	}
	return fmt.Sprintf("%s paid $%d to %s", player, -amount, entity.SourceTreasurer), nil
}

// StartGame は状態を消去し、各プレイヤーに startingBalance を入金します。
// プレイヤー一覧は何かを消去する前に検証します。
func (u *GameUsecase) StartGame(ctx context.Context, players []string, startingBalance int) (string, error) {
	if len(players) == 0 {
		return "", fmt.Errorf("%w: no players given", domain.ErrEmptyPlayerName)
	}
	if startingBalance < 0 {
		return "", domain.ErrNegativeStartingBalance
	}
	names := make([]string, len(players))
	seen := make(map[string]struct{}, len(players))
	for i, p := range players {
		p = normalizeName(p)
		if p == "" {
			return "", domain.ErrEmptyPlayerName
		}
		if _, dup := seen[p]; dup {
			return "", fmt.Errorf("%w: %q", domain.ErrDuplicatePlayer, p)
		}
		seen[p] = struct{}{}
		names[i] = p
	}

	u.update(ctx, func(s *entity.State) bool {
		s.Reset()
		for _, p := range names {
			s.Ledger.Append(p, entity.Transaction{Amount: startingBalance, Source: entity.SourceGameStart})
		}
		return true
	})
	slog.Info("game started", "players", len(players), "starting_balance", startingBalance)
	return fmt.Sprintf("Game started with %d players, $%d each", len(players), startingBalance), nil
}

// ResetGame は所有記録・保有資産・取引をすべて消去します。
func (u *GameUsecase) ResetGame(ctx context.Context) string {
	u.update(ctx, func(s *entity.State) bool {
		s.Reset()
		return true
	})
	slog.Info("game reset")
	return "Game reset"
}

// CalculateRent は家が houses 軒建った土地のカタログ上の家賃を返します。
func (u *GameUsecase) CalculateRent(area, asset string, houses int) (int, error) {
	prop, err := u.catalog.LookupProperty(area, asset)
	if err != nil {
		return 0, err
	}
	return prop.RentFor(houses)
}

// RentQuote は所有済みの土地に現在かかる家賃です。
type RentQuote struct {
	Owner  string
	Houses int
	Rent   int
}

// RentDue は土地の所有者と家の数を解決し、家賃を算出します。
func (u *GameUsecase) RentDue(area, asset string) (RentQuote, error) {
	prop, err := u.catalog.LookupProperty(area, asset)
	if err != nil {
		return RentQuote{}, err
	}
	u.mu.Lock()
	owner, ok := u.state.Properties.OwnerOf(area, asset)
	houses, _ := u.state.Properties.Houses(owner, area, asset)
	u.mu.Unlock()
	if !ok {
		return RentQuote{}, fmt.Errorf("%w: %q in %q", domain.ErrNotOwned, asset, area)
	}
	rent, err := prop.RentFor(houses)
	if err != nil {
		return RentQuote{}, err
	}
	return RentQuote{Owner: owner, Houses: houses, Rent: rent}, nil
}

// CountQuote は保有数をキーとする表から引いた金額です。
type CountQuote struct {
	// Count は丸め込み後に実際に使った表のキーです。
	Count  int
	Amount int
}

// ownedCount は countOwned を返します。countOwned <= 0 の場合は owner が保有する assetType の数を返します。
func (u *GameUsecase) ownedCount(owner, assetType string, countOwned int) int {
	if countOwned > 0 {
		return countOwned
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state.Holdings.CountInGroup(normalizeName(owner), assetType)
}

// CalculateTransportTicket は交通資産の運賃を算出します。
// countOwned が正でなければ、owner が保有する同種資産の数から求めます。
func (u *GameUsecase) CalculateTransportTicket(owner, assetType, assetName string, countOwned int) (CountQuote, error) {
	ca, err := u.catalog.LookupCommercialAsset(assetType, assetName)
	if err != nil {
		return CountQuote{}, err
	}
	amount, used, err := ca.TicketFor(u.ownedCount(owner, assetType, countOwned))
	if err != nil {
		return CountQuote{}, err
	}
	return CountQuote{Count: used, Amount: amount}, nil
}

// CalculateUtilityRent は公共事業の使用料を「倍率(count) × サイコロの目の合計」で算出します。
func (u *GameUsecase) CalculateUtilityRent(owner, assetType, assetName string, countOwned, diceRoll int) (CountQuote, error) {
	if diceRoll < minDiceRoll || diceRoll > maxDiceRoll {
		return CountQuote{}, fmt.Errorf("%w: got %d", domain.ErrInvalidDiceRoll, diceRoll)
	}
	ca, err := u.catalog.LookupCommercialAsset(assetType, assetName)
	if err != nil {
		return CountQuote{}, err
	}
	mult, used, err := ca.MultiplierFor(u.ownedCount(owner, assetType, countOwned))
	if err != nil {
		return CountQuote{}, err
	}
	return CountQuote{Count: used, Amount: mult * diceRoll}, nil
}

// Players は状態に登場する全プレイヤーをソートして返します。
func (u *GameUsecase) Players(ctx context.Context) []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state.Players()
}

// Snapshot は状態全体の一貫したコピーと、参照するカタログです。
type Snapshot struct {
	State   *entity.State
	Catalog *catalog.Catalog
}

// Snapshot は状態のディープコピーを返します。
func (u *GameUsecase) Snapshot(ctx context.Context) Snapshot {
	u.mu.Lock()
	defer u.mu.Unlock()
	return Snapshot{State: u.state.Clone(), Catalog: u.catalog}
}

// Transactions は全取引を返します。プレイヤー名順、各プレイヤー内は記録順です。
func (u *GameUsecase) Transactions(ctx context.Context) []entity.PlayerTransaction {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state.Ledger.Flatten()
}

// Balances は台帳を持つ各プレイヤーの残高（取引の合計）を返します。
func (u *GameUsecase) Balances(ctx context.Context) map[string]int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state.Ledger.Balances()
}

// PlayerAssets は1人のプレイヤーの土地と商業資産です。
type PlayerAssets struct {
	Properties map[string]map[string]int
	Holdings   map[string]map[string]int
	Balance    int
}

// PlayerAssets は1人のプレイヤーの記録のコピーを返します。
func (u *GameUsecase) PlayerAssets(ctx context.Context, player string) PlayerAssets {
	player = normalizeName(player)
	u.mu.Lock()
	defer u.mu.Unlock()
	return PlayerAssets{
		Properties: u.state.Properties.Player(player),
		Holdings:   u.state.Holdings.Player(player),
		Balance:    u.state.Ledger.Balance(player),
	}
}

// IsCatalogMiss は err がカタログ検索の失敗に由来するかを返します。
func IsCatalogMiss(err error) bool {
	return errors.Is(err, catalogdomain.ErrAreaNotFound) ||
		errors.Is(err, catalogdomain.ErrAssetNotFound) ||
		errors.Is(err, catalogdomain.ErrCommercialTypeNotFound) ||
		errors.Is(err, catalogdomain.ErrCommercialAssetNotFound)
}
