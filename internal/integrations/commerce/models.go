package commerce

// Product модель товара из каталога
type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	InStock     bool   `json:"in_stock"`
	StockStatus string `json:"stock_status,omitempty"` // instock | outofstock | onbackorder
	LaunchAt    string `json:"launch_at,omitempty"`    // дата запуска в свободном формате
}

// ErrorResponse модель ошибки каталога
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
