package inquiries

import "savoria/models"

// ReservationFee is the fixed downpayment required to take a booking out
// of the editable state.
const ReservationFee = 5000

type Totals struct {
	PackageTotal int `json:"packageTotal"`
	AddOnsTotal  int `json:"addOnsTotal"`
	GrandTotal   int `json:"grandTotal"`
	Downpayment  int `json:"downpayment"`
	Remaining    int `json:"remaining"`
}

// ComputeTotals derives the displayed cost breakdown from the selected
// package and add-ons. Remaining may go negative when the grand total is
// below the reservation fee; no clamping happens here.
func ComputeTotals(pricePerHead, pax int, addOns []models.AddOnSelection) Totals {
	packageTotal := pricePerHead * pax

	addOnsTotal := 0
	for _, a := range addOns {
		addOnsTotal += a.Price.Int()
	}

	grand := packageTotal + addOnsTotal
	return Totals{
		PackageTotal: packageTotal,
		AddOnsTotal:  addOnsTotal,
		GrandTotal:   grand,
		Downpayment:  ReservationFee,
		Remaining:    grand - ReservationFee,
	}
}
