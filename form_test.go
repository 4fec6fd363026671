package assetbook

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDefaultForm(t *testing.T) {
	f := DefaultForm()
	if f.Quantity != "1" || f.Category != "cash" || f.Name != "" || f.Amount != "" || f.Description != "" {
		t.Errorf("DefaultForm() = %+v, want quantity 1, category cash and empty fields", f)
	}
}

func TestFormInput(t *testing.T) {
	testCases := []struct {
		name    string
		form    Form
		want    Input
		wantErr bool
	}{
		{
			name: "minimal",
			form: Form{Name: "Savings", Amount: "1000"},
			want: Input{Name: "Savings", Amount: decimal.NewFromInt(1000)},
		},
		{
			name: "every field",
			form: Form{Name: "ACME", Amount: " 1234.56 ", Quantity: "100", Category: "stock", Description: "shares"},
			want: Input{Name: "ACME", Amount: decimal.RequireFromString("1234.56"), Quantity: 100, Category: Stock, Description: "shares"},
		},
		{
			name: "negative amount",
			form: Form{Name: "Loan", Amount: "-500"},
			want: Input{Name: "Loan", Amount: decimal.NewFromInt(-500)},
		},
		{name: "empty amount", form: Form{Name: "x"}, wantErr: true},
		{name: "amount not a number", form: Form{Name: "x", Amount: "abc"}, wantErr: true},
		{name: "quantity not an integer", form: Form{Name: "x", Amount: "1", Quantity: "1.5"}, wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.form.Input()
			if tc.wantErr {
				if err == nil {
					t.Errorf("Input() = %+v, want an error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Name != tc.want.Name || !got.Amount.Equal(tc.want.Amount) || got.Quantity != tc.want.Quantity ||
				got.Category != tc.want.Category || got.Description != tc.want.Description {
				t.Errorf("Input() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestFormSetGet(t *testing.T) {
	f := DefaultForm()
	for _, field := range Fields {
		if err := f.Set(field, "v-"+field); err != nil {
			t.Fatalf("Set(%q) unexpected error: %v", field, err)
		}
	}
	for _, field := range Fields {
		got, err := f.Get(field)
		if err != nil {
			t.Fatalf("Get(%q) unexpected error: %v", field, err)
		}
		if want := "v-" + field; got != want {
			t.Errorf("Get(%q) = %q, want %q", field, got, want)
		}
	}
	if err := f.Set("id", "3"); err == nil {
		t.Error("Set(id) expected an error, got nil")
	}
}

func TestFormOf(t *testing.T) {
	a := Asset{ID: "3", Name: "ACME", Amount: decimal.RequireFromString("12.5"), Quantity: 4, Category: Stock, Description: "d"}
	want := Form{Name: "ACME", Amount: "12.5", Quantity: "4", Category: "stock", Description: "d"}
	if got := FormOf(a); got != want {
		t.Errorf("FormOf() = %+v, want %+v", got, want)
	}
}
