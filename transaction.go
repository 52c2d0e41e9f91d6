package ledger

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Direction tells whether goods flow into the business (a purchase from a
// supplier) or out of it (a sale to a customer).
type Direction string

const (
	Inbound  Direction = "inbound"
	Outbound Direction = "outbound"
)

// Settlement tells whether a transaction was paid on the spot or deferred.
type Settlement string

const (
	Cash   Settlement = "cash"
	Credit Settlement = "credit"
)

// Transaction is one purchase or sale. TotalAmount is always
// weight × unit price, fixed at creation. PaidAmount is a creation-time
// flag: the full total for cash, zero for credit. Later settlement of
// credit lives exclusively in the DebtPayment log, aggregated per
// merchant; PaidAmount is never updated to reflect it.
type Transaction struct {
	ID          string
	Direction   Direction
	MerchantID  string
	ProductID   string
	ItemName    string // display name, also the inventory key for records without a ProductID
	Weight      Weight
	UnitPrice   Money
	TotalAmount Money
	PaidAmount  Money
	Settlement  Settlement
	Date        Date
}

// NewTransaction builds a transaction record without an id; the Store
// assigns one on AddTransaction. The caller is trusted to have validated
// the numeric fields already (weight and unit price non-negative).
func NewTransaction(day Date, dir Direction, merchantID, productID, itemName string, weight Weight, unitPrice Money, settlement Settlement) Transaction {
	total := unitPrice.Mul(weight)
	paid := M(decimal.Zero, unitPrice.Currency())
	if settlement == Cash {
		paid = total
	}
	return Transaction{
		Direction:   dir,
		MerchantID:  merchantID,
		ProductID:   productID,
		ItemName:    itemName,
		Weight:      weight,
		UnitPrice:   unitPrice,
		TotalAmount: total,
		PaidAmount:  paid,
		Settlement:  settlement,
		Date:        day,
	}
}

// Key returns the inventory key of the transaction: the product id when the
// record has one, the item name otherwise.
func (t Transaction) Key() ProductKey {
	if t.ProductID != "" {
		return KeyForProduct(t.ProductID)
	}
	return KeyForLabel(t.ItemName)
}

// Outstanding is the unpaid remainder the transaction contributed at
// creation time: zero for cash, the full total for credit.
func (t Transaction) Outstanding() Money {
	return t.TotalAmount.Sub(t.PaidAmount)
}

func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.Direction == o.Direction &&
		t.MerchantID == o.MerchantID &&
		t.ProductID == o.ProductID &&
		t.ItemName == o.ItemName &&
		t.Weight.Equal(o.Weight) &&
		t.UnitPrice.Equal(o.UnitPrice) &&
		t.TotalAmount.Equal(o.TotalAmount) &&
		t.PaidAmount.Equal(o.PaidAmount) &&
		t.Settlement == o.Settlement &&
		t.Date == o.Date
}

// MarshalJSON implements the json.Marshaler interface for Transaction,
// with canonical field order.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("direction", t.Direction)
	w.Append("merchantId", t.MerchantID)
	w.Optional("productId", t.ProductID)
	w.Optional("itemName", t.ItemName)
	w.Append("weight", t.Weight)
	w.Append("unitPrice", t.UnitPrice)
	w.Append("totalAmount", t.TotalAmount)
	w.Append("paidAmount", t.PaidAmount)
	w.Optional("currency", t.UnitPrice.Currency())
	w.Append("settlement", t.Settlement)
	w.Append("date", t.Date)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Transaction.
// Amounts are persisted as bare decimals next to a single currency field.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID          string          `json:"id"`
		Direction   Direction       `json:"direction"`
		MerchantID  string          `json:"merchantId"`
		ProductID   string          `json:"productId"`
		ItemName    string          `json:"itemName"`
		Weight      decimal.Decimal `json:"weight"`
		UnitPrice   decimal.Decimal `json:"unitPrice"`
		TotalAmount decimal.Decimal `json:"totalAmount"`
		PaidAmount  decimal.Decimal `json:"paidAmount"`
		Currency    string          `json:"currency"`
		Settlement  Settlement      `json:"settlement"`
		Date        Date            `json:"date"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}

	*t = Transaction{
		ID:          temp.ID,
		Direction:   temp.Direction,
		MerchantID:  temp.MerchantID,
		ProductID:   temp.ProductID,
		ItemName:    temp.ItemName,
		Weight:      W(temp.Weight),
		UnitPrice:   M(temp.UnitPrice, temp.Currency),
		TotalAmount: M(temp.TotalAmount, temp.Currency),
		PaidAmount:  M(temp.PaidAmount, temp.Currency),
		Settlement:  temp.Settlement,
		Date:        temp.Date,
	}
	return nil
}

// TransactionPatch carries the fields of a transaction edit. Nil fields are
// left untouched. A patch that changes Weight or UnitPrice recomputes
// TotalAmount (and PaidAmount for cash transactions) from the merged
// record, keeping total == weight × unit price.
type TransactionPatch struct {
	MerchantID *string
	ProductID  *string
	ItemName   *string
	Weight     *Weight
	UnitPrice  *Money
	Settlement *Settlement
	Date       *Date
}

// apply merges the patch into tx and returns the updated record.
func (p TransactionPatch) apply(tx Transaction) Transaction {
	if p.MerchantID != nil {
		tx.MerchantID = *p.MerchantID
	}
	if p.ProductID != nil {
		tx.ProductID = *p.ProductID
	}
	if p.ItemName != nil {
		tx.ItemName = *p.ItemName
	}
	if p.Settlement != nil {
		tx.Settlement = *p.Settlement
	}
	if p.Date != nil {
		tx.Date = *p.Date
	}
	if p.Weight != nil || p.UnitPrice != nil {
		if p.Weight != nil {
			tx.Weight = *p.Weight
		}
		if p.UnitPrice != nil {
			tx.UnitPrice = *p.UnitPrice
		}
		tx.TotalAmount = tx.UnitPrice.Mul(tx.Weight)
		if tx.Settlement == Cash {
			tx.PaidAmount = tx.TotalAmount
		}
	}
	return tx
}

// DebtPayment is money settled against a merchant's aggregate balance:
// received from a customer or paid to a supplier. It reduces the merchant's
// outstanding balance as a whole, never a specific transaction's
// PaidAmount.
type DebtPayment struct {
	ID         string
	MerchantID string
	Amount     Money
	Date       Date
	// TransactionID optionally points at the credit transaction the payment
	// was entered against. Advisory only: deleting the transaction leaves
	// the reference dangling, and the balance fold never follows it.
	TransactionID string
}

// MarshalJSON implements the json.Marshaler interface for DebtPayment,
// with canonical field order.
func (p DebtPayment) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", p.ID)
	w.Append("merchantId", p.MerchantID)
	w.Append("amount", p.Amount)
	w.Optional("currency", p.Amount.Currency())
	w.Append("date", p.Date)
	w.Optional("transactionId", p.TransactionID)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for DebtPayment.
func (p *DebtPayment) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID            string          `json:"id"`
		MerchantID    string          `json:"merchantId"`
		Amount        decimal.Decimal `json:"amount"`
		Currency      string          `json:"currency"`
		Date          Date            `json:"date"`
		TransactionID string          `json:"transactionId"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}

	*p = DebtPayment{
		ID:            temp.ID,
		MerchantID:    temp.MerchantID,
		Amount:        M(temp.Amount, temp.Currency),
		Date:          temp.Date,
		TransactionID: temp.TransactionID,
	}
	return nil
}
