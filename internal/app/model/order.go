package model

// SubmitOrderRequest mirrors the public order form. Numeric fields are
// pointers so that an absent field can be told apart from a zero value.
type SubmitOrderRequest struct {
	Name          string   `json:"name"`
	StudentID     string   `json:"studentId"`
	JerseyNumber  *int     `json:"jerseyNumber"`
	Size          string   `json:"size"`
	CollarType    string   `json:"collarType"`
	SleeveType    string   `json:"sleeveType"`
	Email         string   `json:"email"`
	FinalPrice    *float64 `json:"finalPrice"`
	Batch         string   `json:"batch"`
	TransactionID string   `json:"transactionId"`
	Notes         string   `json:"notes"`
}

type SubmitOrderResponse struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

type ValidationErrorResponse struct {
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

type ConflictResponse struct {
	Message      string `json:"message"`
	JerseyNumber int    `json:"jerseyNumber"`
	HolderName   string `json:"holderName,omitempty"`
}

type JerseyCheckResponse struct {
	Available bool   `json:"available"`
	Message   string `json:"message"`
}

type NameCheckResponse struct {
	Exists  bool   `json:"exists"`
	Message string `json:"message"`
}

type OrderResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	StudentID     string  `json:"studentId"`
	JerseyNumber  int     `json:"jerseyNumber"`
	Size          string  `json:"size"`
	CollarType    string  `json:"collarType"`
	SleeveType    string  `json:"sleeveType"`
	Email         string  `json:"email"`
	Batch         *string `json:"batch,omitempty"`
	TransactionID *string `json:"transactionId,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	FinalPrice    float64 `json:"finalPrice"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int64           `json:"total"`
	Page   int             `json:"page"`
	Limit  int             `json:"limit"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type UpdateStatusResponse struct {
	Order          OrderResponse `json:"order"`
	PreviousStatus string        `json:"previousStatus"`
	NewStatus      string        `json:"newStatus"`
}

type StatsResponse struct {
	TotalOrders   int64            `json:"totalOrders"`
	CountByStatus map[string]int64 `json:"countByStatus"`
	TotalRevenue  float64          `json:"totalRevenue"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
