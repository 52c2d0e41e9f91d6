// Package ledger provides the bookkeeping core for a small single-tenant
// trading business: purchases from suppliers, sales to customers,
// outstanding merchant debt, and period reports over an append-only
// transaction log.
//
// The core functionalities include:
//   - Entity Store: the four bookkeeping collections (merchants, products,
//     transactions, debt payments) plus local users, with id assignment and
//     whole-collection persistence to a keyed blob store.
//   - Ledger Engine: stateless derivations over the raw collections —
//     per-merchant outstanding balance and per-product running inventory
//     with average purchase cost. Nothing is cached; every figure is a
//     fresh fold over the transaction log.
//   - Report Aggregator: inclusive date-range filtering with sales, cost,
//     weight, and profit summaries on top of the engine's primitives.
//
// The package performs no I/O of its own beyond the blob-store load/save
// pair and exposes no network or CLI surface; it is driven entirely by an
// in-process caller that supplies validated input and the current date.
package ledger
