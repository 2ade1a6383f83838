package model

type OrderLine struct {
	Product   Product `json:"product"`
	Quantity  int64   `json:"quantity"`
	LineTotal float64 `json:"item_total"`
}
