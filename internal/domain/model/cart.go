package model

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

var (
	ErrInvalidProductID = errors.New("invalid product_id")
	ErrInvalidQuantity  = errors.New("invalid quantity")
)

// Cart は1セッション分のカート。
// 数量0以下の明細は保持しない（削除扱い）。明細は追加順を保つ。
type Cart struct {
	items []CartItem
}

func NewCart() Cart {
	return Cart{}
}

// Add は数量を加算する（上書きしない）。
func (c *Cart) Add(productID string, qty int64) error {
	if strings.TrimSpace(productID) == "" {
		return ErrInvalidProductID
	}
	if qty < 1 {
		return ErrInvalidQuantity
	}

	if cur, ok := c.Quantity(productID); ok {
		// 加算でint64を超えるなら明細はそのまま
		if qty > math.MaxInt64-cur {
			return ErrInvalidQuantity
		}
		items := c.Items()
		items[c.index(productID)].Quantity = cur + qty
		c.items = items
		return nil
	}
	c.items = append(c.Items(), CartItem{ProductID: productID, Quantity: qty})
	return nil
}

// SetQuantity は数量を上書きする。0以下なら削除。カートに無い商品は何もしない。
func (c *Cart) SetQuantity(productID string, qty int64) {
	i := c.index(productID)
	if i < 0 {
		return
	}
	if qty <= 0 {
		c.removeAt(i)
		return
	}
	items := c.Items()
	items[i].Quantity = qty
	c.items = items
}

// SetQuantityText はフォーム入力の数量で上書きする。
// 数値でなければ明細はそのまま残し ErrInvalidQuantity を返す。
func (c *Cart) SetQuantityText(productID string, raw string) error {
	qty, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return ErrInvalidQuantity
	}
	c.SetQuantity(productID, qty)
	return nil
}

func (c *Cart) Remove(productID string) {
	if i := c.index(productID); i >= 0 {
		c.removeAt(i)
	}
}

// Clear はチェックアウト完了時のみ使う。
func (c *Cart) Clear() {
	c.items = nil
}

func (c Cart) Quantity(productID string) (int64, bool) {
	if i := c.index(productID); i >= 0 {
		return c.items[i].Quantity, true
	}
	return 0, false
}

// Items は明細のコピーを追加順で返す。
func (c Cart) Items() []CartItem {
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c Cart) ProductIDs() []string {
	ids := make([]string, 0, len(c.items))
	for _, it := range c.items {
		ids = append(ids, it.ProductID)
	}
	return ids
}

func (c Cart) Len() int {
	return len(c.items)
}

func (c Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c Cart) index(productID string) int {
	for i, it := range c.items {
		if it.ProductID == productID {
			return i
		}
	}
	return -1
}

// 値コピーしたCartと配列を共有しないよう、変更時は作り直す。
func (c *Cart) removeAt(i int) {
	items := make([]CartItem, 0, len(c.items)-1)
	items = append(items, c.items[:i]...)
	c.items = append(items, c.items[i+1:]...)
}

type cartJSON struct {
	Items []CartItem `json:"items"`
}

func (c Cart) MarshalJSON() ([]byte, error) {
	items := c.items
	if items == nil {
		items = []CartItem{}
	}
	return json.Marshal(cartJSON{Items: items})
}

// 保存済みのデータも Add を通して読み込む（数量0以下・重複を残さない）。
func (c *Cart) UnmarshalJSON(data []byte) error {
	var raw cartJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	c.items = nil
	for _, it := range raw.Items {
		_ = c.Add(it.ProductID, it.Quantity)
	}
	return nil
}
