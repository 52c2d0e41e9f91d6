package ledger

// MerchantBalance derives the merchant's outstanding balance: the unpaid
// remainder of its credit transactions minus the payments recorded against
// it. Cash transactions contribute zero by construction.
//
// The sign convention is direction-agnostic: a positive balance means the
// credit debt is still open (the business owes a supplier, a customer owes
// the business); the caller interprets the sign per merchant kind.
// Overpayment drives the balance negative and is never clamped.
//
// An unknown merchant id folds over nothing and yields zero.
func (s *Store) MerchantBalance(merchantID string) Money {
	var balance Money
	for _, tx := range s.transactions {
		if tx.MerchantID != merchantID || tx.Settlement != Credit {
			continue
		}
		balance = balance.Add(tx.Outstanding())
	}
	for _, p := range s.payments {
		if p.MerchantID != merchantID {
			continue
		}
		balance = balance.Sub(p.Amount)
	}
	return balance
}
