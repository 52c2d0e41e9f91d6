package ledger

// Product is a good the business trades. It is attached to the supplier it
// was first bought from; the linkage is provenance metadata only and does
// not restrict which customer a sale may name.
type Product struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	SupplierID string `json:"supplierId"`
	// DefaultPrice pre-fills the unit price field of new purchase forms.
	// Advisory only: it never enters a ledger computation.
	DefaultPrice Money `json:"defaultPrice"`
}

// ProductKey identifies an inventory line. It is either a structural
// product id, or, for legacy transactions recorded before products existed,
// the free-text item name. The two namespaces are kept in separate fields
// so a display name can never collide with a real product id.
type ProductKey struct {
	id    string
	label string
}

// KeyForProduct returns the inventory key of a product id.
func KeyForProduct(id string) ProductKey { return ProductKey{id: id} }

// KeyForLabel returns the inventory key of a legacy free-text item name.
func KeyForLabel(label string) ProductKey { return ProductKey{label: label} }

// IsLegacy reports whether the key is a free-text label rather than a
// product id.
func (k ProductKey) IsLegacy() bool { return k.id == "" }

func (k ProductKey) String() string {
	if k.id != "" {
		return k.id
	}
	return k.label
}
