package assetbook

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Form field names.
const (
	FieldName        = "name"
	FieldAmount      = "amount"
	FieldQuantity    = "quantity"
	FieldCategory    = "category"
	FieldDescription = "description"
)

// Fields lists the form fields in display order.
var Fields = []string{FieldName, FieldAmount, FieldQuantity, FieldCategory, FieldDescription}

// Form holds the raw text of an asset form, as typed by the user.
type Form struct {
	Name        string
	Amount      string
	Quantity    string
	Category    string
	Description string
}

// DefaultForm returns an empty form: quantity 1, category cash.
func DefaultForm() Form {
	return Form{Quantity: "1", Category: string(Cash)}
}

// FormOf returns the form populated from a.
func FormOf(a Asset) Form {
	return Form{
		Name:        a.Name,
		Amount:      a.Amount.String(),
		Quantity:    strconv.Itoa(a.Quantity),
		Category:    string(a.Category),
		Description: a.Description,
	}
}

// Get returns the value of a field by name.
func (f Form) Get(field string) (string, error) {
	switch field {
	case FieldName:
		return f.Name, nil
	case FieldAmount:
		return f.Amount, nil
	case FieldQuantity:
		return f.Quantity, nil
	case FieldCategory:
		return f.Category, nil
	case FieldDescription:
		return f.Description, nil
	}
	return "", fmt.Errorf("unknown field %q, want one of %s", field, strings.Join(Fields, ", "))
}

// Set changes a field by name.
func (f *Form) Set(field, value string) error {
	switch field {
	case FieldName:
		f.Name = value
	case FieldAmount:
		f.Amount = value
	case FieldQuantity:
		f.Quantity = value
	case FieldCategory:
		f.Category = value
	case FieldDescription:
		f.Description = value
	default:
		return fmt.Errorf("unknown field %q, want one of %s", field, strings.Join(Fields, ", "))
	}
	return nil
}

// Input coerces the numeric fields and returns the request payload.
// No other validation is done: that is the server's job.
// An empty quantity is left to the server default.
func (f Form) Input() (Input, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(f.Amount))
	if err != nil {
		return Input{}, fmt.Errorf("%s: %q is not a number", FieldAmount, f.Amount)
	}

	var quantity int
	if q := strings.TrimSpace(f.Quantity); q != "" {
		quantity, err = strconv.Atoi(q)
		if err != nil {
			return Input{}, fmt.Errorf("%s: %q is not an integer", FieldQuantity, f.Quantity)
		}
	}

	return Input{
		Name:        f.Name,
		Amount:      amount,
		Quantity:    quantity,
		Category:    Category(f.Category),
		Description: f.Description,
	}, nil
}
