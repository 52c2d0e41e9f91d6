package ledger

// Summary aggregates the transactions of one date range into the figures
// the report view shows at a glance.
type Summary struct {
	Range          Range
	TotalSales     Money  // outbound totals
	TotalCost      Money  // inbound totals
	InboundWeight  Weight // goods bought
	OutboundWeight Weight // goods sold
	NetProfit      Money  // TotalSales - TotalCost
}

// NewSummary folds the transactions dated inside the range, boundaries
// included. NetProfit nets all sales of the period against all purchases
// of the period regardless of which goods were sold: a cash-basis
// approximation, not COGS-matched profit. That is the system's defined
// behavior.
func NewSummary(s *Store, r Range) *Summary {
	summary := &Summary{Range: r}
	for _, tx := range s.Transactions(Within(r)) {
		switch tx.Direction {
		case Inbound:
			summary.TotalCost = summary.TotalCost.Add(tx.TotalAmount)
			summary.InboundWeight = summary.InboundWeight.Add(tx.Weight)
		case Outbound:
			summary.TotalSales = summary.TotalSales.Add(tx.TotalAmount)
			summary.OutboundWeight = summary.OutboundWeight.Add(tx.Weight)
		}
	}
	summary.NetProfit = summary.TotalSales.Sub(summary.TotalCost)
	return summary
}

// Activity returns the transactions of the range in store order
// (most-recent-first), for the report's activity feed. At most limit
// entries are returned; limit <= 0 means no cap.
func Activity(s *Store, r Range, limit int) []Transaction {
	var feed []Transaction
	for _, tx := range s.Transactions(Within(r)) {
		feed = append(feed, tx)
		if limit > 0 && len(feed) == limit {
			break
		}
	}
	return feed
}
