package entity

import "time"

type OrderStatus string

const (
	StatusPending OrderStatus = `pending`
	StatusDone    OrderStatus = `done`
)

func (s OrderStatus) Valid() bool {
	return s == StatusPending || s == StatusDone
}

type OrderID int64

type Orders []Order

type Order struct {
	ID            OrderID
	Name          string
	StudentID     string
	JerseyNumber  int
	Size          string
	CollarType    string
	SleeveType    string
	Email         string
	Batch         *string
	TransactionID *string
	Notes         *string
	FinalPrice    float64
	Status        OrderStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OrderDraft is a validated submission that has not been persisted yet.
type OrderDraft struct {
	Name          string
	StudentID     string
	JerseyNumber  int
	Size          string
	CollarType    string
	SleeveType    string
	Email         string
	Batch         *string
	TransactionID *string
	Notes         *string
	FinalPrice    float64
}

type OrderFilter struct {
	Status   OrderStatus
	Search   string
	Page     int
	PageSize int
}

func (f OrderFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}

// StatusChange carries the order after a status update together with the
// status it held before, so callers can tell a real transition from a no-op.
type StatusChange struct {
	Order          Order
	PreviousStatus OrderStatus
}

func (c StatusChange) Transitioned() bool {
	return c.PreviousStatus != c.Order.Status
}

type OrderStats struct {
	TotalOrders  int64
	PendingCount int64
	DoneCount    int64
	DoneRevenue  float64
}
