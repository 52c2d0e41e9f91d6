package ledger

// InventoryLine is the running stock figure of one product: net weight on
// hand and the average unit price paid across all purchases of it.
type InventoryLine struct {
	Name                 string
	NetWeight            Weight
	AveragePurchasePrice Money
	PurchaseCount        int
}

// Inventory folds the whole transaction history into per-product figures,
// keyed by ProductKey (product id, or item name for legacy records).
//
// Purchases add weight and enter the purchase-price average; sales only
// subtract weight. The average is the plain arithmetic mean of the unit
// prices of all inbound transactions for the key, so the fold order does
// not matter. Net weight may go negative when sales outrun recorded
// purchases; it is reported as-is.
func (s *Store) Inventory() map[ProductKey]InventoryLine {
	type acc struct {
		name      string
		weight    Weight
		priceSum  Money
		purchases int
	}

	accs := make(map[ProductKey]acc)
	for _, tx := range s.transactions {
		key := tx.Key()
		a, seen := accs[key]
		if !seen {
			a.name = tx.ItemName
			if p := s.Product(tx.ProductID); p != nil {
				a.name = p.Name
			}
		}
		switch tx.Direction {
		case Inbound:
			a.weight = a.weight.Add(tx.Weight)
			a.priceSum = a.priceSum.Add(tx.UnitPrice)
			a.purchases++
		case Outbound:
			a.weight = a.weight.Sub(tx.Weight)
		}
		accs[key] = a
	}

	inventory := make(map[ProductKey]InventoryLine, len(accs))
	for key, a := range accs {
		line := InventoryLine{
			Name:          a.name,
			NetWeight:     a.weight,
			PurchaseCount: a.purchases,
		}
		if a.purchases > 0 {
			line.AveragePurchasePrice = a.priceSum.Div(W(a.purchases))
		}
		inventory[key] = line
	}
	return inventory
}
