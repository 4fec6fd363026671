package assetbook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ID identifies an asset on the server. It is opaque to the client: the JSON
// value sent by the server is kept verbatim, whether a number or a string.
type ID string

func (id ID) String() string { return string(id) }

// segment returns id escaped as a single url path segment: slashes and dot
// segments can not reach another route.
func (id ID) segment() string {
	switch id {
	case ".", "..":
		return strings.Repeat("%2E", len(id))
	}
	return url.PathEscape(string(id))
}

// MarshalJSON writes integer ids as JSON numbers, anything else as a string.
func (id ID) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*id = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("invalid asset id %s: %w", data, err)
		}
		*id = ID(n)
	}
	return nil
}

// Category tags an asset. The server stores free text, the client maps it to
// one of a fixed set of presentation classes.
type Category string

// Presentation classes.
const (
	Cash       Category = "cash"
	Deposit    Category = "deposit"
	Stock      Category = "stock"
	RealEstate Category = "real-estate"
	Fund       Category = "fund"
	Other      Category = "other"
)

// Categories lists the presentation classes in display order.
var Categories = []Category{Cash, Deposit, Stock, RealEstate, Fund, Other}

// classes maps known category values, including the labels found in
// existing server data, to their presentation class.
var classes = map[Category]Category{
	Cash:       Cash,
	Deposit:    Deposit,
	Stock:      Stock,
	RealEstate: RealEstate,
	Fund:       Fund,
	Other:      Other,
	"現金":       Cash,
	"預金":       Deposit,
	"株式":       Stock,
	"不動産":      RealEstate,
	"投資信託":     Fund,
	"その他":      Other,
}

// Class returns the presentation class of c, Other for unknown values.
func (c Category) Class() Category {
	if class, ok := classes[c]; ok {
		return class
	}
	return Other
}

// Asset is the client's copy of a server record.
type Asset struct {
	ID          ID
	Name        string
	Amount      decimal.Decimal
	Quantity    int
	Category    Category
	Description string
	CreatedAt   string
}

// Value returns the amount as Money in currency.
func (a Asset) Value(currency string) Money { return M(a.Amount, currency) }

// Total returns amount × quantity.
func (a Asset) Total(currency string) Money { return a.Value(currency).Times(a.Quantity) }

// assetJSON is the wire format of an Asset.
type assetJSON struct {
	ID          ID              `json:"id"`
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	Quantity    *int            `json:"quantity"`
	Category    Category        `json:"category"`
	Description *string         `json:"description"`
	CreatedAt   *string         `json:"created_at"`
}

func (a *Asset) UnmarshalJSON(data []byte) error {
	var raw assetJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*a = Asset{
		ID:       raw.ID,
		Name:     raw.Name,
		Amount:   raw.Amount,
		Quantity: 1,
		Category: raw.Category,
	}
	if raw.Quantity != nil {
		a.Quantity = *raw.Quantity
	}
	if raw.Description != nil {
		a.Description = *raw.Description
	}
	if raw.CreatedAt != nil {
		a.CreatedAt = *raw.CreatedAt
	}
	return nil
}

func (a Asset) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("id", a.ID)
	w.Append("name", a.Name)
	w.Number("amount", json.Number(a.Amount.String()))
	w.Append("quantity", a.Quantity)
	w.Append("category", a.Category)
	w.Optional("description", a.Description)
	w.Optional("created_at", a.CreatedAt)
	return w.MarshalJSON()
}

// Input is the body of a create or update request: an Asset minus its id.
type Input struct {
	Name        string
	Amount      decimal.Decimal
	Quantity    int // 0 lets the server apply its default
	Category    Category
	Description string
}

// MarshalJSON encodes a creation payload. Zero optional fields are omitted,
// so that a bare name and amount yields {"name":…,"amount":…}.
func (in Input) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", in.Name)
	w.Number("amount", json.Number(in.Amount.String()))
	w.Optional("quantity", in.Quantity)
	w.Optional("category", in.Category)
	w.Optional("description", in.Description)
	return w.MarshalJSON()
}

// replacement is the full payload sent on update: every field is written
// so that cleared values are cleared on the server too.
type replacement Input

func (r replacement) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", r.Name)
	w.Number("amount", json.Number(r.Amount.String()))
	w.Optional("quantity", r.Quantity)
	w.Append("category", r.Category)
	w.Append("description", r.Description)
	return w.MarshalJSON()
}
