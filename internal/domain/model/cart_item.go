package model

// カートの明細。Quantityは常に1以上。
type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}
