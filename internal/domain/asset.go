package domain

// QuoteCurrency is the vs_currency every price is requested in.
const QuoteCurrency = "idr"

type Asset struct {
	// ID is the identifier used by the price API.
	ID string
	// Key is the name the asset is persisted under.
	Key    string
	Name   string
	Ticker string
	Badge  string
}

var Assets = []Asset{
	{ID: "bitcoin", Key: "bitcoin", Name: "Bitcoin", Ticker: "BTC", Badge: "🟠"},
	{ID: "ethereum", Key: "ethereum", Name: "Ethereum", Ticker: "ETH", Badge: "🔵"},
	{ID: "solana", Key: "solana", Name: "Solana", Ticker: "SOL", Badge: "🟣"},
	{ID: "tether", Key: "usdt", Name: "Tether", Ticker: "USDT", Badge: "🟢"},
}

// ChartAssets are the assets that get a price chart in the document.
var ChartAssets = []Asset{Assets[0], Assets[1]}

func AssetIDs(assets []Asset) []string {
	ids := make([]string, 0, len(assets))
	for _, a := range assets {
		ids = append(ids, a.ID)
	}
	return ids
}
