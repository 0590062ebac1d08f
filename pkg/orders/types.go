package orders

// Address is the structured shipping address on the wire.
type Address struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
}

// Item is one line of the order payload. Prices are deliberately absent:
// the upstream service is the source of truth for pricing at order time.
type Item struct {
	Product  uint   `json:"product"`
	Quantity int    `json:"quantity"`
	Size     string `json:"size"`
}

// CreateOrderRequest is the wire shape of the order-creation endpoint.
type CreateOrderRequest struct {
	CompanyID      uint    `json:"companyId"`
	EmployeeID     uint    `json:"employeeId"`
	Name           string  `json:"name"`
	AdditionalInfo string  `json:"additionalInfo"`
	Address        Address `json:"address"`
	Items          []Item  `json:"items"`
}

// CreateOrderData carries the upstream identifiers of an accepted order.
type CreateOrderData struct {
	Reference string `json:"reference,omitempty"`
}

// CreateOrderResponse is the upstream response envelope. Any non-success
// response is treated as a failed submission by callers.
type CreateOrderResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Data    *CreateOrderData `json:"data,omitempty"`
}
