package dto

// AdjustStockRequest is the body of PUT /warehouse/stock/:product_id
type AdjustStockRequest struct {
	Quantity *int64 `json:"quantity" binding:"required,gte=0"`
	MinStock *int64 `json:"min_stock" binding:"required,gte=0"`
}

// DistributeRequest is the body of POST /distributions
type DistributeRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	RiderID   string `json:"rider_id" binding:"required,uuid"`
	Quantity  int64  `json:"quantity" binding:"required,gt=0"`
	Notes     string `json:"notes" binding:"max=500"`
}

// CreateReturnRequest is the body of POST /returns. The rider is the caller.
type CreateReturnRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Quantity  int64  `json:"quantity" binding:"required,gt=0"`
	Reason    string `json:"reason" binding:"required,return_reason"`
}

// ListQuery holds paging and filter query parameters
type ListQuery struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	RiderID  string `form:"rider_id" binding:"omitempty,uuid"`
}
