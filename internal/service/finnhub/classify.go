package finnhub

import (
	"strings"

	"github.com/MatthewLee0811/InvestPulse/internal/domain/models"
)

// eventNameKo maps well-known US economic indicator names to Korean labels.
// Matching is case-insensitive substring matching against the provider name.
var eventNameKo = []struct {
	match  string
	nameKo string
}{
	{"CPI", "소비자물가지수"},
	{"Consumer Price Index", "소비자물가지수"},
	{"PPI", "생산자물가지수"},
	{"Producer Price Index", "생산자물가지수"},
	{"Core PCE", "핵심 개인소비지출"},
	{"PCE Price Index", "개인소비지출 물가지수"},
	{"Non-Farm Payrolls", "비농업 고용지수"},
	{"Nonfarm Payrolls", "비농업 고용지수"},
	{"Unemployment Rate", "실업률"},
	{"Initial Jobless Claims", "신규 실업수당 청구건수"},
	{"FOMC Minutes", "FOMC 의사록"},
	{"FOMC", "FOMC 금리 결정"},
	{"Federal Funds Rate", "FOMC 금리 결정"},
	{"GDP", "GDP 성장률"},
	{"Gross Domestic Product", "GDP 성장률"},
	{"ISM Manufacturing PMI", "ISM 제조업 PMI"},
	{"ISM Services PMI", "ISM 서비스업 PMI"},
	{"ISM Non-Manufacturing PMI", "ISM 서비스업 PMI"},
	{"CB Consumer Confidence", "소비자 신뢰지수"},
	{"Consumer Confidence", "소비자 신뢰지수"},
	{"Michigan Consumer Sentiment", "미시간 소비자심리지수"},
	{"Retail Sales", "소매판매"},
	{"Fed Chair", "연준 의장 연설"},
	{"Fed Speech", "연준 이사 연설"},
	{"Durable Goods Orders", "내구재 주문"},
	{"Housing Starts", "주택착공건수"},
	{"Existing Home Sales", "기존 주택 판매"},
	{"Industrial Production", "산업생산"},
	{"Empire State Manufacturing", "엠파이어스테이트 제조업지수"},
	{"Philadelphia Fed Manufacturing", "필라델피아 연은 제조업지수"},
}

var (
	highImpactKeywords   = []string{"cpi", "ppi", "nonfarm", "non-farm", "fomc", "gdp", "unemployment rate", "pce"}
	mediumImpactKeywords = []string{"ism", "retail sales", "consumer confidence", "jobless claims", "durable goods"}
)

// KoreanEventName returns the Korean label for an indicator name, or the
// original name when no mapping matches.
func KoreanEventName(name string) string {
	lower := strings.ToLower(name)
	for _, entry := range eventNameKo {
		if strings.Contains(lower, strings.ToLower(entry.match)) {
			return entry.nameKo
		}
	}
	return name
}

// ClassifyImpact resolves an event's impact tier. Explicit provider codes win;
// otherwise the event name is matched against known keyword tiers.
func ClassifyImpact(providerImpact, name string) models.Impact {
	switch providerImpact {
	case "high", "3":
		return models.ImpactHigh
	case "medium", "2":
		return models.ImpactMedium
	case "low", "1":
		return models.ImpactLow
	}

	lower := strings.ToLower(name)
	for _, k := range highImpactKeywords {
		if strings.Contains(lower, k) {
			return models.ImpactHigh
		}
	}
	for _, k := range mediumImpactKeywords {
		if strings.Contains(lower, k) {
			return models.ImpactMedium
		}
	}
	return models.ImpactLow
}

// mapNewsCategory folds free-form provider categories into the fixed set.
func mapNewsCategory(category string) models.NewsCategory {
	lower := strings.ToLower(category)
	switch {
	case strings.Contains(lower, "crypto") || strings.Contains(lower, "bitcoin"):
		return models.NewsCrypto
	case strings.Contains(lower, "forex") || strings.Contains(lower, "commodity") ||
		strings.Contains(lower, "oil") || strings.Contains(lower, "gold"):
		return models.NewsCommodity
	case strings.Contains(lower, "economy") || strings.Contains(lower, "economic"):
		return models.NewsEconomy
	case strings.Contains(lower, "fed") || strings.Contains(lower, "fomc") ||
		strings.Contains(lower, "policy") || strings.Contains(lower, "central bank"):
		return models.NewsFedPolicy
	default:
		return models.NewsMarket
	}
}
