// Package models defines the core domain models for Bachex.
//
// # Models
//
//   - Transaction: an expense or income, split among participants
//   - Salary: singleton per-user salary record with a carried-forward balance
//   - User: registered account (email + password credential)
//
// # Design Principles
//
// 1. **Names, not IDs**: friends are identified by display name strings,
// scoped to the owning user. The owner is always the literal participant
// name "Me".
// 2. **Signed amounts**: a negative transaction amount is an expense, a
// positive one is income. The magnitude is the total transaction amount,
// not a per-person share.
// 3. **No cross-user sharing**: every record belongs to exactly one user;
// the only exception is the one-time legacy migration, which copies the
// fixed legacy namespace into a newly authenticated user's namespace.
package models
