package inquiries

import (
	"testing"

	"savoria/models"
)

func validSelection() ConfirmSelectionInput {
	return ConfirmSelectionInput{
		Token:           "BK-001",
		SelectedPackage: &models.SelectedPackage{Name: "Classic Buffet", PricePerHead: 650},
		SelectedAddOns: []models.AddOnSelection{
			{ID: "a1", Name: "Mobile Bar", Price: 8000, Category: "Drinks"},
		},
		Payment: models.PaymentDetails{
			Amount:        5000,
			AccountName:   "Juana Dela Cruz",
			AccountNumber: "09171234567",
			RefNumber:     "REF-20250101",
		},
	}
}

func TestValidateSelectionAccepts11Digits(t *testing.T) {
	if err := ValidateSelection(validSelection()); err != nil {
		t.Fatalf("valid selection rejected: %v", err)
	}
}

func TestValidateSelectionAccountNumberLength(t *testing.T) {
	for _, number := range []string{"0917123456", "091712345678", ""} {
		input := validSelection()
		input.Payment.AccountNumber = number
		if err := ValidateSelection(input); err == nil {
			t.Errorf("account number %q (len %d) should be rejected", number, len(number))
		}
	}
}

func TestValidateSelectionAccountNumberDigitsOnly(t *testing.T) {
	input := validSelection()
	input.Payment.AccountNumber = "0917123456a"
	if err := ValidateSelection(input); err == nil {
		t.Error("non-numeric account number should be rejected")
	}
}

func TestValidateSelectionRequiredFields(t *testing.T) {
	mutations := map[string]func(*ConfirmSelectionInput){
		"missing token":        func(in *ConfirmSelectionInput) { in.Token = "" },
		"missing package":      func(in *ConfirmSelectionInput) { in.SelectedPackage = nil },
		"missing account name": func(in *ConfirmSelectionInput) { in.Payment.AccountName = "" },
		"missing ref number":   func(in *ConfirmSelectionInput) { in.Payment.RefNumber = "" },
		"zero amount":          func(in *ConfirmSelectionInput) { in.Payment.Amount = 0 },
	}
	for name, mutate := range mutations {
		input := validSelection()
		mutate(&input)
		if err := ValidateSelection(input); err == nil {
			t.Errorf("%s should be rejected", name)
		}
	}
}

func TestValidateSelectionAllowsEmptyAddOns(t *testing.T) {
	input := validSelection()
	input.SelectedAddOns = nil
	if err := ValidateSelection(input); err != nil {
		t.Errorf("empty add-on list should be accepted: %v", err)
	}
}
