package request

// CustomerFilterRequest represents customer list query parameters
type CustomerFilterRequest struct {
	Search         string `form:"search"`
	MonthlyBilling string `form:"monthly_billing"`
	Page           int    `form:"page"`
	PerPage        int    `form:"per_page"`
}

// UpdateCustomerRequest represents a customer contact update. Omitted fields
// are left unchanged.
type UpdateCustomerRequest struct {
	Name    *string `json:"name"`
	Mobile  *string `json:"mobile"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Address *string `json:"address"`
}

// SetMonthlyBillingRequest sets the monthly billing flag explicitly
type SetMonthlyBillingRequest struct {
	MonthlyBilling string `json:"monthlyBilling" binding:"required"`
}

// OrderFilterRequest represents order list query parameters
type OrderFilterRequest struct {
	Search     string `form:"search"`
	Status     string `form:"status"`
	Source     string `form:"source"`
	CustomerID string `form:"customer_id"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}

// UpdateStatusRequest carries a new order or bill status
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// BillFilterRequest represents bill list query parameters
type BillFilterRequest struct {
	CustomerID string `form:"customer_id"`
	Status     string `form:"status"`
	Month      string `form:"month"`
	Search     string `form:"search"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}

// BillItemRequest is one line of a manual bill
type BillItemRequest struct {
	ItemName    string  `json:"itemName"`
	Category    string  `json:"category"`
	SubCategory string  `json:"subCategory"`
	Price       float64 `json:"price"`
	Quantity    *int    `json:"quantity"`
}

// CreateBillRequest represents the manual bill form. Field rules are checked
// by the bill service so that every problem is reported at once.
type CreateBillRequest struct {
	CustomerName string            `json:"customerName"`
	Mobile       string            `json:"mobile"`
	CompanyName  string            `json:"companyName"`
	Email        string            `json:"email"`
	Address      string            `json:"address"`
	Month        string            `json:"month"`
	Items        []BillItemRequest `json:"items"`
}

// GenerateBillRequest asks for a bill built from delivered orders
type GenerateBillRequest struct {
	CustomerID string `json:"customerId" binding:"required"`
	Month      string `json:"month" binding:"required"`
}

// SubCategoryRequest represents the add and edit sub-category forms
type SubCategoryRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
