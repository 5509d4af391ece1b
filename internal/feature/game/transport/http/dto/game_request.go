package dto

import "strings"

// AssignReq は POST /api/assign のリクエストボディです。
// *_name フィールドはブラウザUIが使う別名です。
type AssignReq struct {
	Player     string   `json:"player"`
	PlayerName string   `json:"player_name"`
	Area       string   `json:"area"`
	AreaName   string   `json:"area_name"`
	Asset      string   `json:"asset"`
	AssetName  string   `json:"asset_name"`
	Houses     *FlexInt `json:"houses"`
}

// Resolved は正式なフィールド名を優先し、空白を除いたプレイヤー・エリア・資産名を返します。
func (r AssignReq) Resolved() (player, area, asset string) {
	return firstNonBlank(r.Player, r.PlayerName), firstNonBlank(r.Area, r.AreaName), firstNonBlank(r.Asset, r.AssetName)
}

func firstNonBlank(vals ...string) string {
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

// BuyUtilityReq は POST /api/buy-utility のリクエストボディです。
type BuyUtilityReq struct {
	Player    string `json:"player"`
	AssetType string `json:"asset_type"`
	AssetName string `json:"asset_name"`
}

// PayRentReq は POST /api/pay-rent のリクエストボディです。
type PayRentReq struct {
	PayingPlayer    string   `json:"paying_player" binding:"required"`
	ReceivingPlayer string   `json:"receiving_player" binding:"required"`
	RentAmount      *FlexInt `json:"rent_amount" binding:"required"`
}

// TreasuryActionReq は POST /api/treasury-action のリクエストボディです。
// 正の金額は Treasurer から受け取り、負の金額は支払いです。
type TreasuryActionReq struct {
	Player string   `json:"player" binding:"required"`
	Amount *FlexInt `json:"amount" binding:"required"`
}

// StartGameReq は POST /api/start-game のリクエストボディです。
// StartingBalance 省略時は設定のデフォルト値を使います。
type StartGameReq struct {
	Players         []string `json:"players" binding:"required,min=1"`
	StartingBalance *FlexInt `json:"starting_balance"`
}

// RentQuery は GET /api/rent のクエリパラメータです。
// houses 省略時は現在の所有者の家の数で算出します。
type RentQuery struct {
	Area   string `form:"area" binding:"required"`
	Asset  string `form:"asset" binding:"required"`
	Houses *int   `form:"houses"`
}

// TicketQuery は GET /api/ticket のクエリパラメータです。
type TicketQuery struct {
	Owner     string `form:"owner"`
	AssetType string `form:"asset_type" binding:"required"`
	AssetName string `form:"asset_name" binding:"required"`
	Count     int    `form:"count"`
}

// UtilityRentQuery は GET /api/utility-rent のクエリパラメータです。
type UtilityRentQuery struct {
	Owner     string `form:"owner"`
	AssetType string `form:"asset_type" binding:"required"`
	AssetName string `form:"asset_name" binding:"required"`
	Count     int    `form:"count"`
	Dice      int    `form:"dice" binding:"required"`
}
