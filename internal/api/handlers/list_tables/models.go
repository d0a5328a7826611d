package list_tables

import (
	"time"

	"github.com/restopoint/TableReservationService/internal/domain"
)

// TableItem элемент списка столов
type TableItem struct {
	ID          int64  `json:"id"`
	TableNumber int    `json:"tableNumber"`
	Capacity    int    `json:"capacity"`
	IsAvailable bool   `json:"isAvailable"`
	CreatedAt   string `json:"createdAt"`
}

// TableListResponse HTTP response model
type TableListResponse struct {
	Tables []*TableItem `json:"tables"`
	Total  int          `json:"total"`
}

// FromDomainTables конвертирует список domain моделей в HTTP response
func FromDomainTables(tables []*domain.Table) *TableListResponse {
	items := make([]*TableItem, 0, len(tables))
	for _, t := range tables {
		items = append(items, &TableItem{
			ID:          t.ID,
			TableNumber: t.TableNumber,
			Capacity:    t.Capacity,
			IsAvailable: t.IsAvailable,
			CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		})
	}
	return &TableListResponse{
		Tables: items,
		Total:  len(items),
	}
}
