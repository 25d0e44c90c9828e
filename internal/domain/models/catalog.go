package models

// AssetConfig describes one configured dashboard symbol. QuoteSymbol is the
// bulk quote provider's ticker; derived symbols (dominance, premiums, ratios)
// have no QuoteSymbol and are produced by the aggregator itself.
type AssetConfig struct {
	Symbol      string
	QuoteSymbol string
	Name        string
	NameKo      string
	Category    AssetCategory
}

// Assets is the fixed symbol catalog. Its declared order is the output order
// of every markets aggregation; treat it as immutable.
var Assets = []AssetConfig{
	// US stock indices
	{Symbol: "SPX", QuoteSymbol: "^GSPC", Name: "S&P 500", NameKo: "S&P 500", Category: CategoryStockIndex},
	{Symbol: "NDX", QuoteSymbol: "^IXIC", Name: "NASDAQ", NameKo: "나스닥", Category: CategoryStockIndex},
	{Symbol: "DJI", QuoteSymbol: "^DJI", Name: "DOW 30", NameKo: "다우 30", Category: CategoryStockIndex},
	{Symbol: "VIX", QuoteSymbol: "^VIX", Name: "VIX", NameKo: "공포지수", Category: CategoryStockIndex},

	// Crypto
	{Symbol: "BTC", QuoteSymbol: "BTC-USD", Name: "Bitcoin", NameKo: "비트코인", Category: CategoryCrypto},
	{Symbol: "ETH", QuoteSymbol: "ETH-USD", Name: "Ethereum", NameKo: "이더리움", Category: CategoryCrypto},
	{Symbol: "ETHBTC", Name: "ETH/BTC", NameKo: "ETH/BTC", Category: CategoryCrypto},
	{Symbol: "BTC.D", Name: "BTC Dominance", NameKo: "BTC 도미넌스", Category: CategoryCrypto},
	{Symbol: "USDT.D", Name: "USDT Dominance", NameKo: "USDT 도미넌스", Category: CategoryCrypto},
	{Symbol: "KIMP", Name: "Tether Kimchi Premium", NameKo: "테더 김프", Category: CategoryCrypto},
	{Symbol: "CBP", Name: "Coinbase Premium", NameKo: "코베 프리미엄", Category: CategoryCrypto},

	// Commodities
	{Symbol: "GOLD", QuoteSymbol: "GC=F", Name: "Gold", NameKo: "금", Category: CategoryCommodity},
	{Symbol: "SILVER", QuoteSymbol: "SI=F", Name: "Silver", NameKo: "은", Category: CategoryCommodity},
	{Symbol: "OIL", QuoteSymbol: "CL=F", Name: "Crude Oil WTI", NameKo: "원유(WTI)", Category: CategoryCommodity},

	// Forex
	{Symbol: "USDKRW", QuoteSymbol: "KRW=X", Name: "USD/KRW", NameKo: "달러/원", Category: CategoryForex},
	{Symbol: "EURUSD", QuoteSymbol: "EURUSD=X", Name: "EUR/USD", NameKo: "유로/달러", Category: CategoryForex},
	{Symbol: "USDJPY", QuoteSymbol: "JPY=X", Name: "USD/JPY", NameKo: "달러/엔", Category: CategoryForex},
	{Symbol: "DXY", QuoteSymbol: "DX-Y.NYB", Name: "DXY", NameKo: "달러 인덱스", Category: CategoryForex},

	// Bonds
	{Symbol: "US10Y", QuoteSymbol: "^TNX", Name: "US 10Y Yield", NameKo: "미국 10년 국채", Category: CategoryBond},
	{Symbol: "US2Y", QuoteSymbol: "^IRX", Name: "US 2Y Yield", NameKo: "미국 2년 국채", Category: CategoryBond},
}

// CoinGeckoIDs maps catalog symbols to CoinGecko coin ids for the crypto
// market-data overlay.
var CoinGeckoIDs = map[string]string{
	"BTC": "bitcoin",
	"ETH": "ethereum",
}

// AssetBySymbol looks up a catalog entry.
func AssetBySymbol(symbol string) (AssetConfig, bool) {
	for _, a := range Assets {
		if a.Symbol == symbol {
			return a, true
		}
	}
	return AssetConfig{}, false
}
