package suggest_slots

import (
	suggestSlots "github.com/restopoint/TableReservationService/internal/usecase/suggest_slots"
)

// SuggestionItem один альтернативный слот
type SuggestionItem struct {
	StartTime       string `json:"startTime"`
	DistanceMinutes int    `json:"distanceMinutes"`
}

// SuggestionsResponse HTTP response model
type SuggestionsResponse struct {
	Suggestions []*SuggestionItem `json:"suggestions"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *suggestSlots.Response) *SuggestionsResponse {
	items := make([]*SuggestionItem, 0, len(resp.Suggestions))
	for _, s := range resp.Suggestions {
		items = append(items, &SuggestionItem{
			StartTime:       s.StartTime.String(),
			DistanceMinutes: s.DistanceMinutes,
		})
	}
	return &SuggestionsResponse{Suggestions: items}
}
