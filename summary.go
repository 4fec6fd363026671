package assetbook

import "github.com/shopspring/decimal"

// CategoryTotal aggregates the assets of one category.
type CategoryTotal struct {
	Category Category        `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
}

// Summary is the value of the whole collection, amount × quantity summed.
type Summary struct {
	TotalAmount decimal.Decimal `json:"total_amount"`
	Categories  []CategoryTotal `json:"category_summary"`
}

// Summarize computes the summary of a snapshot locally. Categories are listed
// in order of first appearance.
func Summarize(assets []Asset) Summary {
	var s Summary
	index := make(map[Category]int)
	for _, a := range assets {
		total := a.Amount.Mul(decimal.NewFromInt(int64(a.Quantity)))
		s.TotalAmount = s.TotalAmount.Add(total)

		i, ok := index[a.Category]
		if !ok {
			i = len(s.Categories)
			index[a.Category] = i
			s.Categories = append(s.Categories, CategoryTotal{Category: a.Category})
		}
		s.Categories[i].Total = s.Categories[i].Total.Add(total)
		s.Categories[i].Count++
	}
	return s
}
