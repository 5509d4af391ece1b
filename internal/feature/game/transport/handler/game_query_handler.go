package handler

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"

	catalog "monopoly_backend/internal/feature/catalog/domain/entity"
	"monopoly_backend/internal/feature/game/domain/entity"
	"monopoly_backend/internal/feature/game/transport/http/dto"
	"monopoly_backend/internal/feature/game/usecase"
)

// Players は全プレイヤー名を返すAPIです（GET /api/players）。
func (h *GameHandler) Players(c *gin.Context) {
	c.JSON(http.StatusOK, dto.PlayersRes{Players: h.uc.Players(c.Request.Context())})
}

// PlayerAssets は1人のプレイヤーの資産と残高を返すAPIです（GET /api/player-assets/:player）。
// 未知のプレイヤーには空のマップと残高0を返します。
func (h *GameHandler) PlayerAssets(c *gin.Context) {
	player := c.Param("player")
	pa := h.uc.PlayerAssets(c.Request.Context(), player)
	c.JSON(http.StatusOK, dto.PlayerAssetsRes{
		Player:   player,
		Assets:   housesByGroup(pa.Properties),
		Holdings: namesByGroup(pa.Holdings),
		Balance:  pa.Balance,
	})
}

// Database は状態全体をカタログと合わせて返すAPIです（GET /api/database）。
func (h *GameHandler) Database(c *gin.Context) {
	c.JSON(http.StatusOK, toDatabaseRes(h.uc.Snapshot(c.Request.Context())))
}

// Transactions は全取引を返すAPIです（GET /api/transactions）。
func (h *GameHandler) Transactions(c *gin.Context) {
	txs := h.uc.Transactions(c.Request.Context())
	out := make([]dto.PlayerTransactionRes, len(txs))
	for i, tx := range txs {
		out[i] = dto.PlayerTransactionRes{Player: tx.Player, Amount: tx.Amount, Source: tx.Source}
	}
	c.JSON(http.StatusOK, dto.TransactionsRes{Transactions: out})
}

// Balances は各プレイヤーの残高を返すAPIです（GET /api/balances）。
func (h *GameHandler) Balances(c *gin.Context) {
	c.JSON(http.StatusOK, dto.BalancesRes{Balances: h.uc.Balances(c.Request.Context())})
}

// Rent は家賃を返すAPIです（GET /api/rent）。
// houses 指定時はカタログから直接算出し、未指定時は現在の所有者の家の数を使います。
func (h *GameHandler) Rent(c *gin.Context) {
	var q dto.RentQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "rent", err)
		return
	}
	if q.Houses != nil {
		rent, err := h.uc.CalculateRent(q.Area, q.Asset, *q.Houses)
		if err != nil {
			writeError(c, "rent", err)
			return
		}
		c.JSON(http.StatusOK, dto.RentRes{Area: q.Area, Asset: q.Asset, Houses: *q.Houses, Rent: rent})
		return
	}
	quote, err := h.uc.RentDue(q.Area, q.Asset)
	if err != nil {
		writeError(c, "rent", err)
		return
	}
	c.JSON(http.StatusOK, dto.RentRes{Area: q.Area, Asset: q.Asset, Owner: quote.Owner, Houses: quote.Houses, Rent: quote.Rent})
}

// Ticket は交通資産の運賃を返すAPIです（GET /api/ticket）。
func (h *GameHandler) Ticket(c *gin.Context) {
	var q dto.TicketQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "ticket", err)
		return
	}
	quote, err := h.uc.CalculateTransportTicket(q.Owner, q.AssetType, q.AssetName, q.Count)
	if err != nil {
		writeError(c, "ticket", err)
		return
	}
	c.JSON(http.StatusOK, dto.TicketRes{Ticket: quote.Amount, Count: quote.Count})
}

// UtilityRent は公共事業の使用料を返すAPIです（GET /api/utility-rent）。
func (h *GameHandler) UtilityRent(c *gin.Context) {
	var q dto.UtilityRentQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "utility-rent", err)
		return
	}
	quote, err := h.uc.CalculateUtilityRent(q.Owner, q.AssetType, q.AssetName, q.Count, q.Dice)
	if err != nil {
		writeError(c, "utility-rent", err)
		return
	}
	c.JSON(http.StatusOK, dto.UtilityRentRes{Rent: quote.Amount, Count: quote.Count, Dice: q.Dice})
}

func housesByGroup(groups map[string]map[string]int) map[string]map[string]dto.HousesRes {
	out := make(map[string]map[string]dto.HousesRes, len(groups))
	for group, assets := range groups {
		inner := make(map[string]dto.HousesRes, len(assets))
		for asset, houses := range assets {
			inner[asset] = dto.HousesRes{Houses: houses}
		}
		out[group] = inner
	}
	return out
}

func namesByGroup(groups map[string]map[string]int) map[string][]string {
	out := make(map[string][]string, len(groups))
	for group, assets := range groups {
		names := make([]string, 0, len(assets))
		for name := range assets {
			names = append(names, name)
		}
		sort.Strings(names)
		out[group] = names
	}
	return out
}

func toDatabaseRes(snap usecase.Snapshot) dto.DatabaseRes {
	res := dto.DatabaseRes{
		Ownership:      make(map[string]map[string]map[string]dto.HousesRes),
		Holdings:       make(map[string]map[string][]string),
		Transactions:   make(map[string][]dto.TransactionRes),
		AssetData:      make(map[string]map[string]dto.PropertyRes),
		CommercialData: make(map[string]map[string]dto.CommercialRes),
	}
	s := snap.State
	for player := range s.Properties {
		res.Ownership[player] = housesByGroup(s.Properties.Player(player))
	}
	for player := range s.Holdings {
		res.Holdings[player] = namesByGroup(s.Holdings.Player(player))
	}
	for player, txs := range s.Ledger {
		res.Transactions[player] = toTransactionsRes(txs)
	}
	if snap.Catalog == nil {
		return res
	}
	for area, assets := range snap.Catalog.Properties() {
		inner := make(map[string]dto.PropertyRes, len(assets))
		for name, p := range assets {
			inner[name] = dto.PropertyRes{
				LandPrice:  p.LandPrice,
				HousePrice: p.HousePrice,
				Rent: dto.RentTableRes{
					NoHouses:    p.Rent[0],
					OneHouse:    p.Rent[1],
					TwoHouses:   p.Rent[2],
					ThreeHouses: p.Rent[3],
					FourHouses:  p.Rent[4],
				},
			}
		}
		res.AssetData[area] = inner
	}
	for typ, assets := range snap.Catalog.Commercial() {
		inner := make(map[string]dto.CommercialRes, len(assets))
		for name, a := range assets {
			inner[name] = dto.CommercialRes{
				Price:      a.Price,
				Multiplier: countTableRes(a.Multiplier),
				Ticket:     countTableRes(a.Ticket),
			}
		}
		res.CommercialData[typ] = inner
	}
	return res
}

func toTransactionsRes(txs []entity.Transaction) []dto.TransactionRes {
	out := make([]dto.TransactionRes, len(txs))
	for i, tx := range txs {
		out[i] = dto.TransactionRes{Amount: tx.Amount, Source: tx.Source}
	}
	return out
}

func countTableRes(t catalog.CountTable) map[string]int {
	if len(t) == 0 {
		return nil
	}
	out := make(map[string]int, len(t))
	for k, v := range t {
		out[strconv.Itoa(k)] = v
	}
	return out
}
