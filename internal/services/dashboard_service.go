package services

import (
	"fmt"
	"sort"

	"mandi/internal/repositories"
)

// DashboardItem is one aggregated line in a hotel's demand group.
type DashboardItem struct {
	ItemName      string  `json:"itemName"`
	TotalQuantity float64 `json:"totalQuantity"`
	Unit          string  `json:"unit"`
	HotelID       string  `json:"hotelId"`
}

// HotelDemand groups a hotel's aggregated items. TotalHotels is the
// number of distinct hotel ids contributing to the group; normally 1,
// since the grouping key already includes the hotel id, but it is kept
// because hotel names are not guaranteed unique.
type HotelDemand struct {
	TotalHotels int             `json:"totalHotels"`
	Items       []DashboardItem `json:"items"`
}

// DashboardSummary is the global cross-hotel rollup. Units are not
// reconciled at this level; quantities for the same item name are summed
// raw regardless of unit.
type DashboardSummary struct {
	TotalHotels       int                `json:"totalHotels"`
	TotalPendingItems float64            `json:"totalPendingItems"`
	ByItem            map[string]float64 `json:"byItem"`
}

// DashboardReport is the dealer-facing demand report for one day.
type DashboardReport struct {
	Date    string                 `json:"date"`
	Summary DashboardSummary       `json:"summary"`
	ByHotel map[string]HotelDemand `json:"byHotel"`
}

// DashboardService is the aggregation engine: it rolls all pending
// orders for a day up into per-hotel and global demand totals. Purely a
// read; the report is recomputed on every call, never cached, since the
// underlying orders change between calls.
type DashboardService struct {
	orderRepo repositories.OrderRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(orderRepo repositories.OrderRepository) *DashboardService {
	return &DashboardService{
		orderRepo: orderRepo,
	}
}

// lineKey groups expanded order lines; one aggregate per (hotel, item).
type lineKey struct {
	hotelID   string
	hotelName string
	itemName  string
}

type lineAgg struct {
	quantity float64
	unit     string
}

// Dashboard builds the demand report for the given date (YYYY-MM-DD); an
// empty date means the current server day.
//
// Pipeline: select pending orders for the date, expand their item lists
// into (hotelId, hotelName, itemName, quantity, unit) tuples, sum
// quantities per (hotelId, hotelName, itemName) with the first unit seen
// winning, then regroup per hotel name and derive the global summary.
func (s *DashboardService) Dashboard(date string) (*DashboardReport, error) {
	if date == "" {
		date = currentDate()
	}

	orders, err := s.orderRepo.ListPendingByDate(date)
	if err != nil {
		return nil, fmt.Errorf("failed to load pending orders for %s: %w", date, err)
	}

	aggregates := make(map[lineKey]*lineAgg)
	var keys []lineKey
	for _, order := range orders {
		for _, item := range order.Items {
			key := lineKey{
				hotelID:   order.HotelID,
				hotelName: order.HotelName,
				itemName:  item.ItemName,
			}
			agg, ok := aggregates[key]
			if !ok {
				// First tuple seen fixes the unit; mixed units for the
				// same item under one hotel are not reconciled.
				agg = &lineAgg{unit: item.Unit}
				aggregates[key] = agg
				keys = append(keys, key)
			}
			agg.quantity += item.Quantity
		}
	}

	// Deterministic output: hotel groups ascending by name, items
	// ascending by name within each group.
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].hotelName != keys[j].hotelName {
			return keys[i].hotelName < keys[j].hotelName
		}
		return keys[i].itemName < keys[j].itemName
	})

	byHotel := make(map[string]HotelDemand)
	hotelIDs := make(map[string]map[string]struct{})
	for _, key := range keys {
		agg := aggregates[key]
		demand := byHotel[key.hotelName]
		demand.Items = append(demand.Items, DashboardItem{
			ItemName:      key.itemName,
			TotalQuantity: agg.quantity,
			Unit:          agg.unit,
			HotelID:       key.hotelID,
		})
		if hotelIDs[key.hotelName] == nil {
			hotelIDs[key.hotelName] = make(map[string]struct{})
		}
		hotelIDs[key.hotelName][key.hotelID] = struct{}{}
		demand.TotalHotels = len(hotelIDs[key.hotelName])
		byHotel[key.hotelName] = demand
	}

	byItem := make(map[string]float64)
	var totalPending float64
	for _, demand := range byHotel {
		for _, item := range demand.Items {
			byItem[item.ItemName] += item.TotalQuantity
			totalPending += item.TotalQuantity
		}
	}

	return &DashboardReport{
		Date: date,
		Summary: DashboardSummary{
			TotalHotels:       len(byHotel),
			TotalPendingItems: totalPending,
			ByItem:            byItem,
		},
		ByHotel: byHotel,
	}, nil
}
