package add_table

import (
	"time"

	"github.com/restopoint/TableReservationService/internal/domain"
)

// AddTableRequest HTTP request model
type AddTableRequest struct {
	TableNumber int `json:"tableNumber"`
	Capacity    int `json:"capacity"`
}

// TableResponse HTTP response model
type TableResponse struct {
	ID          int64  `json:"id"`
	LocationID  int64  `json:"locationId"`
	TableNumber int    `json:"tableNumber"`
	Capacity    int    `json:"capacity"`
	IsAvailable bool   `json:"isAvailable"`
	CreatedAt   string `json:"createdAt"`
}

// FromDomainTable конвертирует domain модель в HTTP response
func FromDomainTable(t *domain.Table) *TableResponse {
	return &TableResponse{
		ID:          t.ID,
		LocationID:  t.LocationID,
		TableNumber: t.TableNumber,
		Capacity:    t.Capacity,
		IsAvailable: t.IsAvailable,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
}
