package ledger

import (
	"encoding/json"
	"fmt"
)

// MerchantKind distinguishes the two counterparty roles of the business.
type MerchantKind int

const (
	// Supplier is an inbound counterparty: the business buys goods from it.
	Supplier MerchantKind = iota
	// Customer is an outbound counterparty: the business sells goods to it.
	Customer
)

func (k MerchantKind) String() string {
	switch k {
	case Supplier:
		return "supplier"
	case Customer:
		return "customer"
	default:
		return "unknown"
	}
}

// ParseMerchantKind parses a string into a MerchantKind.
func ParseMerchantKind(s string) (MerchantKind, error) {
	switch s {
	case "supplier":
		return Supplier, nil
	case "customer":
		return Customer, nil
	default:
		return 0, fmt.Errorf("unknown merchant kind: %q", s)
	}
}

func (k MerchantKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *MerchantKind) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	kind, err := ParseMerchantKind(str)
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// Merchant is a counterparty of the business, either a supplier or a
// customer. Merchants are immutable once created; their outstanding debt is
// always derived, never stored (see Store.MerchantBalance).
type Merchant struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Kind  MerchantKind `json:"kind"`
	Phone string       `json:"phone,omitempty"`
}
