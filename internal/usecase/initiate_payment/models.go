package initiate_payment

// Request запрос на создание платежного ордера для аванса
type Request struct {
	SessionID string
}

// Response данные ордера для передачи на клиент
type Response struct {
	OrderID      string  `json:"orderId"`
	Amount       int64   `json:"amount"`
	Currency     string  `json:"currency"`
	CustomerName string  `json:"customerName"`
	Phone        string  `json:"phone"`
	CarName      string  `json:"carName"`
	TotalPrice   float64 `json:"totalPrice"`
}
