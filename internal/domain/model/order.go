package model

// OrderSummary はチェックアウト時にカートから作る注文サマリ。保存はしない。
type OrderSummary struct {
	Items        []OrderLine `json:"items"`
	GrandTotal   float64     `json:"total_price"`
	CurrencyCode string      `json:"currency_code"`
}

func NewOrderSummary() OrderSummary {
	return OrderSummary{Items: []OrderLine{}}
}

// AddLine は明細を追加して合計を更新する。
// 通貨は最後に追加した商品のものになる（換算はしない）。
func (s *OrderSummary) AddLine(p Product, qty int64) {
	line := OrderLine{
		Product:   p,
		Quantity:  qty,
		LineTotal: p.Price * float64(qty),
	}
	s.Items = append(s.Items, line)
	s.GrandTotal += line.LineTotal
	if p.CurrencyCode != "" {
		s.CurrencyCode = p.CurrencyCode
	}
}

func (s OrderSummary) IsEmpty() bool {
	return len(s.Items) == 0
}
