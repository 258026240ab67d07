package model

// MofProgress is the read-only projection combining a MOF with the pick and
// verify state of its associated items.
type MofProgress struct {
	Mof               Mof    `json:"mof"`
	QuantityRequested int    `json:"quantity_requested"`
	QuantityPicked    int    `json:"quantity_picked"`
	QuantityVerified  int    `json:"quantity_verified"`
	ItemsPicked       []Item `json:"items_picked"`
	ItemsVerified     []Item `json:"items_verified"`
}
