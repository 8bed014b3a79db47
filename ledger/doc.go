// Package ledger keeps a tamper-evident history of played rounds.
//
// # Core Components
//
// Blockchain: an append-only log of round records with hash chaining. It
// satisfies poker.History, so a Table can write to it directly.
//
// Block: one round record plus the hash of the block before it.
//
// # Usage
//
// Pass a Blockchain to poker.WithHistory. Verify can be called at any time
// to check that no stored record has been altered.
package ledger
