package services

import (
	"fmt"
	"strings"

	"campsite-backend/models"
)

// LineItem is one charged row of a quote.
type LineItem struct {
	Label    string `json:"label"`
	Quantity int    `json:"quantity"`
	Amount   int    `json:"amount"`
}

// Portable toilet hire is free for large parties.
const (
	portableToiletPrice    = 70
	portableToiletFreeFrom = 10
)

var countedExtras = []struct {
	label string
	unit  int
	count func(models.ExtrasSelection) int
}{
	{"Fire Wood", 15, func(e models.ExtrasSelection) int { return e.FireWood }},
	{"Bag of Ice", 5, func(e models.ExtrasSelection) int { return e.BagOfIce }},
	{"1 Dozen Eggs", 8, func(e models.ExtrasSelection) int { return e.DozenEggs }},
	{"Honey", 13, func(e models.ExtrasSelection) int { return e.Honey }},
	{"Breakfast Special", 20, func(e models.ExtrasSelection) int { return e.BreakfastSpecial }},
	{"Meat Tray", 60, func(e models.ExtrasSelection) int { return e.MeatTray }},
}

// PricingService maps an extras selection and party size to a dollar total.
// It is stateless; the price table is configuration, not business logic the
// rest of the core depends on.
type PricingService struct{}

func NewPricingService() *PricingService {
	return &PricingService{}
}

// Quote returns the extras total in whole dollars plus the charged line
// items in table order. Kayak usage is tracked on the reservation but
// contributes nothing here; whether that is intended is an open product
// question, so the behavior is preserved as observed.
func (p *PricingService) Quote(extras models.ExtrasSelection, people int) (int, []LineItem) {
	total := 0
	items := []LineItem{}

	if extras.PortableToilet && people < portableToiletFreeFrom {
		total += portableToiletPrice
		items = append(items, LineItem{Label: "Portable Toilet", Quantity: 1, Amount: portableToiletPrice})
	}
	for _, item := range countedExtras {
		n := item.count(extras)
		if n <= 0 {
			continue
		}
		amount := n * item.unit
		total += amount
		items = append(items, LineItem{Label: item.label, Quantity: n, Amount: amount})
	}
	return total, items
}

// Summary renders the selection as display text: "Label (value)" per
// nonzero item, "Label (Yes)" for toggles, comma-joined in table order with
// the unpriced kayak fields last. The string is cached on the reservation
// at write time and persisted verbatim; it is not parseable.
func (p *PricingService) Summary(extras models.ExtrasSelection) string {
	parts := []string{}
	if extras.PortableToilet {
		parts = append(parts, "Portable Toilet (Yes)")
	}
	for _, item := range countedExtras {
		if n := item.count(extras); n > 0 {
			parts = append(parts, fmt.Sprintf("%s (%d)", item.label, n))
		}
	}
	if extras.Kayaks {
		parts = append(parts, "Kayaks (Yes)")
	}
	if extras.KayaksCount > 0 {
		parts = append(parts, fmt.Sprintf("Kayaks Count (%d)", extras.KayaksCount))
	}
	return strings.Join(parts, ", ")
}
