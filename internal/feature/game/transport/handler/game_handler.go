// Package handler はゲーム機能のHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	catalogdomain "monopoly_backend/internal/feature/catalog/domain"
	"monopoly_backend/internal/feature/game/domain"
	"monopoly_backend/internal/feature/game/domain/entity"
	"monopoly_backend/internal/feature/game/transport/http/dto"
	"monopoly_backend/internal/feature/game/usecase"
)

// GameUsecase はハンドラーが必要とするゲーム操作のインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type GameUsecase interface {
	AssignProperty(ctx context.Context, player, area, asset string, housesToAdd int) entity.AssignmentResult
	BuyCommercialAsset(ctx context.Context, player, assetType, assetName string) entity.AssignmentResult
	PayRent(ctx context.Context, payer, receiver string, amount int) (string, error)
	TreasuryAction(ctx context.Context, player string, amount int) (string, error)
	StartGame(ctx context.Context, players []string, startingBalance int) (string, error)
	ResetGame(ctx context.Context) string

	CalculateRent(area, asset string, houses int) (int, error)
	RentDue(area, asset string) (usecase.RentQuote, error)
	CalculateTransportTicket(owner, assetType, assetName string, countOwned int) (usecase.CountQuote, error)
	CalculateUtilityRent(owner, assetType, assetName string, countOwned, diceRoll int) (usecase.CountQuote, error)

	Players(ctx context.Context) []string
	Snapshot(ctx context.Context) usecase.Snapshot
	Transactions(ctx context.Context) []entity.PlayerTransaction
	Balances(ctx context.Context) map[string]int
	PlayerAssets(ctx context.Context, player string) usecase.PlayerAssets
}

// GameHandler はゲームエンジンに関するHTTPリクエストを処理します。
type GameHandler struct {
	uc                     GameUsecase
	defaultStartingBalance int
}

// NewGameHandler は新しい GameHandler を作成します。
// defaultStartingBalance はリクエストに初期残高がない場合に start-game で使われます。
func NewGameHandler(uc GameUsecase, defaultStartingBalance int) *GameHandler {
	return &GameHandler{uc: uc, defaultStartingBalance: defaultStartingBalance}
}

// statusFor はドメインエラーをHTTPステータスに変換します。
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrOwnedByOther),
		errors.Is(err, domain.ErrAlreadyHeld),
		errors.Is(err, domain.ErrDuplicatePlayer):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnknownAsset),
		errors.Is(err, domain.ErrNotOwned),
		usecase.IsCatalogMiss(err):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrEmptyPlayerName),
		errors.Is(err, domain.ErrNegativeHouses),
		errors.Is(err, domain.ErrNegativeStartingBalance),
		errors.Is(err, domain.ErrInvalidDiceRoll),
		errors.Is(err, catalogdomain.ErrHouseCountOutOfRange),
		errors.Is(err, catalogdomain.ErrNoTicketTable),
		errors.Is(err, catalogdomain.ErrNoMultiplierTable):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeResult(c *gin.Context, op string, res entity.AssignmentResult) {
	code := http.StatusOK
	if !res.OK() {
		code = statusFor(res.Cause)
		slog.Warn(op+" rejected", "error", res.Cause, "remote_addr", c.ClientIP())
	}
	c.JSON(code, dto.ResultRes{Status: string(res.Status), Message: res.Message})
}

func writeError(c *gin.Context, op string, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		slog.Error(op+" failed", "error", err, "remote_addr", c.ClientIP())
	} else {
		slog.Warn(op+" rejected", "error", err, "remote_addr", c.ClientIP())
	}
	c.JSON(code, dto.ErrorRes{Error: err.Error()})
}

func badRequest(c *gin.Context, op string, err error) {
	slog.Warn(op+" validation failed", "error", err, "remote_addr", c.ClientIP())
	c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid request: " + err.Error()})
}

// Assign は土地をプレイヤーに割り当てるAPIです（POST /api/assign）。
// - 不正なボディ（数値でない houses など）や houses の欠落 → 400, status "error"
// - エンジンによる拒否 → 400/404/409, エンジンのメッセージをそのまま返す
// - 成功、または上限で丸めた警告 → 200
func (h *GameHandler) Assign(c *gin.Context) {
	var req dto.AssignReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("assign validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ResultRes{Status: string(entity.StatusError), Message: "invalid request: " + err.Error()})
		return
	}
	if req.Houses == nil {
		slog.Warn("assign validation failed", "error", "houses missing", "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ResultRes{Status: string(entity.StatusError), Message: "Missing required fields: houses"})
		return
	}
	player, area, asset := req.Resolved()
	res := h.uc.AssignProperty(c.Request.Context(), player, area, asset, int(*req.Houses))
	writeResult(c, "assign", res)
}

// BuyUtility は商業資産を購入するAPIです（POST /api/buy-utility）。
func (h *GameHandler) BuyUtility(c *gin.Context) {
	var req dto.BuyUtilityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("buy-utility validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ResultRes{Status: string(entity.StatusError), Message: "invalid request: " + err.Error()})
		return
	}
	res := h.uc.BuyCommercialAsset(c.Request.Context(), req.Player, req.AssetType, req.AssetName)
	writeResult(c, "buy-utility", res)
}

// PayRent はプレイヤー間の家賃支払いを記録するAPIです（POST /api/pay-rent）。
func (h *GameHandler) PayRent(c *gin.Context) {
	var req dto.PayRentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "pay-rent", err)
		return
	}
	msg, err := h.uc.PayRent(c.Request.Context(), req.PayingPlayer, req.ReceivingPlayer, req.RentAmount.Int(0))
	if err != nil {
		writeError(c, "pay-rent", err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageRes{Message: msg})
}

// TreasuryAction は Treasurer との入出金を記録するAPIです（POST /api/treasury-action）。
func (h *GameHandler) TreasuryAction(c *gin.Context) {
	var req dto.TreasuryActionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "treasury-action", err)
		return
	}
	msg, err := h.uc.TreasuryAction(c.Request.Context(), req.Player, req.Amount.Int(0))
	if err != nil {
		writeError(c, "treasury-action", err)
		return
	}
	c.JSON(http.StatusOK, dto.TreasuryActionRes{Success: true, Message: msg})
}

// StartGame は状態をリセットしてゲームを開始するAPIです（POST /api/start-game）。
func (h *GameHandler) StartGame(c *gin.Context) {
	var req dto.StartGameReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "start-game", err)
		return
	}
	msg, err := h.uc.StartGame(c.Request.Context(), req.Players, req.StartingBalance.Int(h.defaultStartingBalance))
	if err != nil {
		writeError(c, "start-game", err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageRes{Message: msg})
}

// ResetGame は全状態を消去するAPIです（POST /api/reset-game）。
func (h *GameHandler) ResetGame(c *gin.Context) {
	msg := h.uc.ResetGame(c.Request.Context())
	c.JSON(http.StatusOK, dto.MessageRes{Message: msg})
}
