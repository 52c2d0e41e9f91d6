package ledger

import (
	"iter"
	"slices"

	"github.com/google/uuid"
)

// Blob keys, one per collection.
const (
	keyMerchants    = "merchants"
	keyProducts     = "products"
	keyTransactions = "transactions"
	keyDebtPayments = "debt-payments"
	keyUsers        = "users"
)

// Store owns the entity collections and their persistence round-trip.
//
// Transactions and debt payments are kept most-recent-first: adding
// prepends, and every listing preserves that order. Each mutating
// operation persists the whole touched collection before returning; the
// in-memory state is the source of truth and is never reloaded.
//
// The Store has exactly one synchronous writer and holds no locks.
type Store struct {
	blobs BlobStore

	merchants    []Merchant
	products     []Product
	transactions []Transaction
	payments     []DebtPayment
	users        []User
}

// NewStore loads all collections from the blob store. Missing or corrupt
// blobs degrade to empty collections; NewStore never fails.
func NewStore(blobs BlobStore) *Store {
	return &Store{
		blobs:        blobs,
		merchants:    loadCollection[Merchant](blobs, keyMerchants),
		products:     loadCollection[Product](blobs, keyProducts),
		transactions: loadCollection[Transaction](blobs, keyTransactions),
		payments:     loadCollection[DebtPayment](blobs, keyDebtPayments),
		users:        loadCollection[User](blobs, keyUsers),
	}
}

// AddMerchant creates a merchant with a fresh id and persists the
// collection.
func (s *Store) AddMerchant(name string, kind MerchantKind, phone string) (Merchant, error) {
	m := Merchant{ID: uuid.NewString(), Name: name, Kind: kind, Phone: phone}
	s.merchants = append(s.merchants, m)
	return m, saveCollection(s.blobs, keyMerchants, s.merchants)
}

// AddProduct creates a product owned by the given supplier. The supplier id
// is provenance metadata; the store does not verify the supplier exists.
func (s *Store) AddProduct(name, supplierID string, defaultPrice Money) (Product, error) {
	p := Product{ID: uuid.NewString(), Name: name, SupplierID: supplierID, DefaultPrice: defaultPrice}
	s.products = append(s.products, p)
	return p, saveCollection(s.blobs, keyProducts, s.products)
}

// AddTransaction assigns a fresh id and prepends the transaction, so the
// in-memory sequence stays most-recent-first.
func (s *Store) AddTransaction(tx Transaction) (Transaction, error) {
	tx.ID = uuid.NewString()
	s.transactions = append([]Transaction{tx}, s.transactions...)
	return tx, saveCollection(s.blobs, keyTransactions, s.transactions)
}

// UpdateTransaction merges the patch into the transaction with the given
// id. An unknown id is a no-op, not an error.
func (s *Store) UpdateTransaction(id string, patch TransactionPatch) error {
	for i, tx := range s.transactions {
		if tx.ID != id {
			continue
		}
		s.transactions[i] = patch.apply(tx)
		return saveCollection(s.blobs, keyTransactions, s.transactions)
	}
	return nil
}

// DeleteTransaction removes the transaction with the given id. An unknown
// id is a no-op, not an error. Deletion does not cascade: a debt payment
// pointing at the deleted transaction keeps its dangling reference.
func (s *Store) DeleteTransaction(id string) error {
	for i, tx := range s.transactions {
		if tx.ID != id {
			continue
		}
		s.transactions = slices.Delete(s.transactions, i, i+1)
		return saveCollection(s.blobs, keyTransactions, s.transactions)
	}
	return nil
}

// AddDebtPayment records money settled against the merchant's aggregate
// balance and prepends it to the payment log. The amount is trusted to be
// pre-validated; zero or negative amounts are stored as given.
func (s *Store) AddDebtPayment(merchantID string, amount Money, day Date, transactionID string) (DebtPayment, error) {
	p := DebtPayment{
		ID:            uuid.NewString(),
		MerchantID:    merchantID,
		Amount:        amount,
		Date:          day,
		TransactionID: transactionID,
	}
	s.payments = append([]DebtPayment{p}, s.payments...)
	return p, saveCollection(s.blobs, keyDebtPayments, s.payments)
}

// Merchants returns the merchants in creation order.
func (s *Store) Merchants() []Merchant { return slices.Clone(s.merchants) }

// Products returns the products in creation order.
func (s *Store) Products() []Product { return slices.Clone(s.products) }

// DebtPayments returns the payment log, most-recent-first.
func (s *Store) DebtPayments() []DebtPayment { return slices.Clone(s.payments) }

// Product returns the product with the given id, or nil if unknown.
func (s *Store) Product(id string) *Product {
	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p
		}
	}
	return nil
}

// Merchant returns the merchant with the given id, or nil if unknown.
func (s *Store) Merchant(id string) *Merchant {
	for i := range s.merchants {
		if s.merchants[i].ID == id {
			m := s.merchants[i]
			return &m
		}
	}
	return nil
}

// Transactions returns an iterator over the transaction log in store order
// (most-recent-first). A transaction is yielded when any filter accepts
// it; with no filters every transaction is yielded.
func (s *Store) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range s.transactions {
			accept := len(filters) == 0
			for _, filter := range filters {
				if filter(tx) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// ByDirection returns a predicate that filters transactions by direction.
func ByDirection(d Direction) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Direction == d }
}

// ByMerchant returns a predicate that filters transactions by merchant id.
func ByMerchant(id string) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.MerchantID == id }
}

// Within returns a predicate that keeps transactions dated inside the
// range, boundaries included.
func Within(r Range) func(Transaction) bool {
	return func(tx Transaction) bool { return r.Contains(tx.Date) }
}
