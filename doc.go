// Package stockpile implements a local, single-user stock-control ledger.
//
// Inventory is split into two disjoint partitions, internal-use and
// external-use stock. Every decrement goes through an issuance transaction
// that re-checks availability against the live quantity, writes the stock
// partition back, and only then appends an immutable audit record carrying
// the remaining balance. Reports (valuation, low-stock counts, turnover,
// category and movement breakdowns, recommendations) are pure functions over
// snapshots.
//
// State lives in a directory of JSONL files, one per collection. The tool is
// built for a single logical actor: operations are synchronous, a
// process-local mutex serializes goroutines, and there is no cross-process
// locking or multi-collection atomicity. Write ordering inside the issuance
// transaction is the mitigation for the latter.
package stockpile
