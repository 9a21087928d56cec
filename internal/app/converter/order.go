package converter

import (
	"fmt"

	"github.com/golang-module/carbon/v2"

	"github.com/teamwear/jersey-orders/internal/app/entity"
	"github.com/teamwear/jersey-orders/internal/app/model"
)

const publicOrderIDPrefix = "JSY"

// FormatPublicOrderID renders the identifier shown to customers: the fixed
// prefix plus the zero-padded numeric id, e.g. JSY-000042.
func FormatPublicOrderID(id entity.OrderID) string {
	return fmt.Sprintf("%s-%06d", publicOrderIDPrefix, int64(id))
}

func ConvertOrderToResponse(order entity.Order) model.OrderResponse {
	return model.OrderResponse{
		ID:            FormatPublicOrderID(order.ID),
		Name:          order.Name,
		StudentID:     order.StudentID,
		JerseyNumber:  order.JerseyNumber,
		Size:          order.Size,
		CollarType:    order.CollarType,
		SleeveType:    order.SleeveType,
		Email:         order.Email,
		Batch:         order.Batch,
		TransactionID: order.TransactionID,
		Notes:         order.Notes,
		FinalPrice:    order.FinalPrice,
		Status:        string(order.Status),
		CreatedAt:     carbon.CreateFromStdTime(order.CreatedAt).ToRfc3339String(),
		UpdatedAt:     carbon.CreateFromStdTime(order.UpdatedAt).ToRfc3339String(),
	}
}

func ConvertOrdersToListResponse(orders entity.Orders, total int64, filter entity.OrderFilter) model.OrderListResponse {
	outOrders := make([]model.OrderResponse, 0, len(orders))
	for _, order := range orders {
		outOrders = append(outOrders, ConvertOrderToResponse(order))
	}

	return model.OrderListResponse{
		Orders: outOrders,
		Total:  total,
		Page:   filter.Page,
		Limit:  filter.PageSize,
	}
}

func ConvertStatsToResponse(stats entity.OrderStats) model.StatsResponse {
	return model.StatsResponse{
		TotalOrders: stats.TotalOrders,
		CountByStatus: map[string]int64{
			string(entity.StatusPending): stats.PendingCount,
			string(entity.StatusDone):    stats.DoneCount,
		},
		TotalRevenue: stats.DoneRevenue,
	}
}
