package services

import (
	"context"
	"math"
	"slices"

	"gudang/internal/models"
)

// TopItemsLimit is the number of most profitable items reported.
const TopItemsLimit = 5

// TopItem is an item annotated with the profit it would realise.
type TopItem struct {
	models.Item
	Profit float64 `json:"profit"`
}

// Analytics aggregates a user's inventory.
type Analytics struct {
	TotalInvestment float64   `json:"totalInvestment"`
	TotalRevenue    float64   `json:"totalRevenue"`
	TotalProfit     float64   `json:"totalProfit"`
	ProfitMargin    float64   `json:"profitMargin"`
	TotalItems      int       `json:"totalItems"`
	TopItems        []TopItem `json:"topItems"`
}

// ItemLister is the read side of ItemService that analytics depends on.
type ItemLister interface {
	ListItems(ctx context.Context, userID string) ([]models.Item, error)
}

// AnalyticsService derives figures from the user's items.
type AnalyticsService struct {
	items ItemLister
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(items ItemLister) *AnalyticsService {
	return &AnalyticsService{
		items: items,
	}
}

// ComputeAnalytics fetches the user's items and aggregates them.
func (s *AnalyticsService) ComputeAnalytics(ctx context.Context, userID string) (*Analytics, error) {
	items, err := s.items.ListItems(ctx, userID)
	if err != nil {
		return nil, err
	}
	analytics := Compute(items)
	return &analytics, nil
}

// Compute aggregates items. Top items keep the input order among equal profits.
func Compute(items []models.Item) Analytics {
	a := Analytics{
		TotalItems: len(items),
		TopItems:   []TopItem{},
	}

	ranked := make([]TopItem, 0, len(items))
	for _, item := range items {
		a.TotalInvestment += item.BuyingPrice * item.Quantity
		a.TotalRevenue += item.SellingPrice * item.Quantity
		ranked = append(ranked, TopItem{Item: item, Profit: item.Profit()})
	}
	a.TotalProfit = a.TotalRevenue - a.TotalInvestment
	if a.TotalInvestment > 0 {
		a.ProfitMargin = round2(100 * a.TotalProfit / a.TotalInvestment)
	}

	slices.SortStableFunc(ranked, func(x, y TopItem) int {
		switch {
		case x.Profit > y.Profit:
			return -1
		case x.Profit < y.Profit:
			return 1
		default:
			return 0
		}
	})
	if len(ranked) > TopItemsLimit {
		ranked = ranked[:TopItemsLimit]
	}
	a.TopItems = append(a.TopItems, ranked...)
	return a
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
