package request

type LiquidatePropertyRequest struct {
	SaleValue        float64 `json:"saleValue"`
	SaleDate         string  `json:"saleDate"`
	IncludeOperating bool    `json:"includeOperating"`
}
