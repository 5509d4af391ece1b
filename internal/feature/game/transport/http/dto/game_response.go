package dto

// ResultRes は割り当て・購入APIのレスポンスDTOです。
type ResultRes struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// MessageRes は確認メッセージのみのレスポンスDTOです。
type MessageRes struct {
	Message string `json:"message"`
}

// TreasuryActionRes は POST /api/treasury-action のレスポンスDTOです。
type TreasuryActionRes struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorRes は割り当て以外のAPIで拒否された場合のレスポンスDTOです。
type ErrorRes struct {
	Error string `json:"error"`
}

// PlayersRes は全プレイヤー名のレスポンスDTOです。
type PlayersRes struct {
	Players []string `json:"players"`
}

// HousesRes は所有マップ内の資産ごとの値です。
type HousesRes struct {
	Houses int `json:"houses"`
}

// PlayerAssetsRes は GET /api/player-assets/:player のレスポンスDTOです。
type PlayerAssetsRes struct {
	Player   string                          `json:"player"`
	Assets   map[string]map[string]HousesRes `json:"assets"`
	Holdings map[string][]string             `json:"holdings"`
	Balance  int                             `json:"balance"`
}

// TransactionRes はプレイヤーごとの一覧に含まれる取引1件です。
type TransactionRes struct {
	Amount int    `json:"amount"`
	Source string `json:"source"`
}

// PlayerTransactionRes は平坦化した取引一覧の1件です。
type PlayerTransactionRes struct {
	Player string `json:"player"`
	Amount int    `json:"amount"`
	Source string `json:"source"`
}

// TransactionsRes は GET /api/transactions のレスポンスDTOです。
type TransactionsRes struct {
	Transactions []PlayerTransactionRes `json:"transactions"`
}

// BalancesRes は GET /api/balances のレスポンスDTOです。
type BalancesRes struct {
	Balances map[string]int `json:"balances"`
}

// RentTableRes は土地カタログファイルの rent オブジェクトと同じ形です。
type RentTableRes struct {
	NoHouses    int `json:"no_houses"`
	OneHouse    int `json:"one_house"`
	TwoHouses   int `json:"two_houses"`
	ThreeHouses int `json:"three_houses"`
	FourHouses  int `json:"four_houses"`
}

// PropertyRes はスナップショットのカタログ部分の土地1件です。
type PropertyRes struct {
	LandPrice  int          `json:"land_price"`
	HousePrice int          `json:"house_price"`
	Rent       RentTableRes `json:"rent"`
}

// CommercialRes はスナップショットのカタログ部分の商業資産1件です。
type CommercialRes struct {
	Price      *int           `json:"price,omitempty"`
	Multiplier map[string]int `json:"multiplier,omitempty"`
	Ticket     map[string]int `json:"ticket,omitempty"`
}

// DatabaseRes は GET /api/database が返すスナップショット全体です。
type DatabaseRes struct {
	Ownership      map[string]map[string]map[string]HousesRes `json:"ownership"`
	Holdings       map[string]map[string][]string             `json:"holdings"`
	Transactions   map[string][]TransactionRes                `json:"transactions"`
	AssetData      map[string]map[string]PropertyRes          `json:"asset_data"`
	CommercialData map[string]map[string]CommercialRes        `json:"commercial_data"`
}

// RentRes は GET /api/rent のレスポンスDTOです。
type RentRes struct {
	Area   string `json:"area"`
	Asset  string `json:"asset"`
	Owner  string `json:"owner,omitempty"`
	Houses int    `json:"houses"`
	Rent   int    `json:"rent"`
}

// TicketRes は GET /api/ticket のレスポンスDTOです。
type TicketRes struct {
	Ticket int `json:"ticket"`
	Count  int `json:"count"`
}

// UtilityRentRes は GET /api/utility-rent のレスポンスDTOです。
type UtilityRentRes struct {
	Rent  int `json:"rent"`
	Count int `json:"count"`
	Dice  int `json:"dice"`
}
