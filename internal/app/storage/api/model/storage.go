package model

import (
	"context"

	"github.com/teamwear/jersey-orders/internal/app/entity"
)

type Storage interface {
	Close() error
	Ping(ctx context.Context) error

	CreateOrder(ctx context.Context, draft entity.OrderDraft) (entity.Order, error)
	GetOrder(ctx context.Context, id entity.OrderID) (entity.Order, error)
	ListOrders(ctx context.Context, filter entity.OrderFilter) (entity.Orders, int64, error)
	UpdateOrderStatus(ctx context.Context, id entity.OrderID, status entity.OrderStatus) (entity.StatusChange, error)
	DeleteOrder(ctx context.Context, id entity.OrderID) (entity.Order, error)
	OrderStats(ctx context.Context) (entity.OrderStats, error)

	FindOrderByJerseyNumber(ctx context.Context, number int) (entity.Order, error)
	OrderNameExists(ctx context.Context, name string) (bool, error)

	GetAdmin(ctx context.Context, username entity.AdminName) (entity.AdminUser, error)
	CreateAdmin(ctx context.Context, admin entity.AdminUser) error
}
