package services

import (
	"github.com/neggmmm/brandbite-sub000/models"
)

// SuggestionResult is the planner's answer. An empty or insufficient set is
// a result, not an error; callers must check TotalCapacity against the party
// size before confirming.
type SuggestionResult struct {
	Tables        []models.Table `json:"tables"`
	TotalCapacity int            `json:"total_capacity"`
	Message       string         `json:"message"`
}

type TablePlanner struct {
	Availability *AvailabilityService
}

func NewTablePlanner(availability *AvailabilityService) *TablePlanner {
	return &TablePlanner{Availability: availability}
}

// SuggestTables picks a set of available tables covering partySize, packing
// smallest tables first to minimize wasted seats. If even every available
// table combined cannot seat the party, the best partial set is returned and
// the message says so.
func (p *TablePlanner) SuggestTables(restaurantID uint, date, startTime string, partySize, durationMinutes int) (SuggestionResult, error) {
	available, err := p.Availability.CheckAvailability(restaurantID, date, startTime, 1, durationMinutes, DefaultBufferMinutes)
	if err != nil {
		return SuggestionResult{}, err
	}
	if len(available) == 0 {
		return SuggestionResult{
			Tables:  []models.Table{},
			Message: "no tables are available for the requested time",
		}, nil
	}

	// CheckAvailability returns tables ordered capacity ASC already.
	picked := make([]models.Table, 0, len(available))
	total := 0
	for _, t := range available {
		picked = append(picked, t)
		total += t.Capacity
		if total >= partySize {
			break
		}
	}

	res := SuggestionResult{Tables: picked, TotalCapacity: total}
	if total < partySize {
		res.Message = "available tables cannot seat the full party"
	}
	return res, nil
}
