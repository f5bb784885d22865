package cart

import (
	"bytes"
	"encoding/json"

	"github.com/DRSN-tech/storefront-bff/internal/domain"
	"github.com/shopspring/decimal"
)

// lineModel — формат строки корзины в хранилище (совместим с cart_v1 витрины).
type lineModel struct {
	ID       json.RawMessage `json:"id"`
	Name     string          `json:"name"`
	Price    price           `json:"price"`
	Image    *string         `json:"image"`
	Quantity int             `json:"quantity"`
}

// price пишется в JSON числом, а читается и из числа, и из строки.
type price struct {
	decimal.Decimal
}

func (p price) MarshalJSON() ([]byte, error) {
	return []byte(p.Decimal.String()), nil
}

func (p *price) UnmarshalJSON(data []byte) error {
	return p.Decimal.UnmarshalJSON(data)
}

// encodeLines сериализует строки корзины в JSON-массив.
func encodeLines(lines []domain.CartLine) ([]byte, error) {
	models := make([]lineModel, 0, len(lines))
	for _, l := range lines {
		id, err := json.Marshal(l.ProductID)
		if err != nil {
			return nil, err
		}

		m := lineModel{
			ID:       id,
			Name:     l.Name,
			Price:    price{l.UnitPrice},
			Quantity: l.Quantity,
		}
		if l.ImageURL != "" {
			img := l.ImageURL
			m.Image = &img
		}

		models = append(models, m)
	}

	return json.Marshal(models)
}

// decodeLines разбирает сохранённую корзину. Строки без id или с quantity <= 0 отбрасываются,
// повторяющиеся id склеиваются, количество в строке ограничено MaxLineQuantity.
func decodeLines(data []byte) ([]domain.CartLine, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, nil
	}

	var models []lineModel
	if err := json.Unmarshal(data, &models); err != nil {
		return nil, err
	}

	lines := make([]domain.CartLine, 0, len(models))
	index := make(map[string]int, len(models))
	for _, m := range models {
		id := decodeID(m.ID)
		if id == "" || m.Quantity <= 0 {
			continue
		}

		if i, ok := index[id]; ok {
			lines[i].Quantity = capQuantity(lines[i].Quantity, m.Quantity)
			continue
		}

		line := domain.CartLine{
			ProductID: id,
			Name:      m.Name,
			UnitPrice: m.Price.Decimal,
			Quantity:  min(m.Quantity, MaxLineQuantity),
		}
		if m.Image != nil {
			line.ImageURL = *m.Image
		}

		index[id] = len(lines)
		lines = append(lines, line)
	}

	return lines, nil
}

// decodeID принимает id как строку или число.
func decodeID(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}

	return ""
}
