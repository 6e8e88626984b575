// Package skinvault provides the functions and types to value Steam game-item
// inventories and record their worth over time. It is designed to be
// local-first and auditable: every figure appended to the history can be
// traced back to the per-item prices that produced it.
//
// The core functionalities include:
//   - Inventory Resolution: Joining the assets and descriptions returned by
//     the Steam community endpoint into marketable item counts.
//   - Price Resolution: A chain of providers (aggregate services first, the
//     per-item Steam market as fallback) that yields one value per account.
//   - Locale-tolerant Parsing: Turning currency-formatted price strings from
//     any provider locale into exact decimals.
//   - Valuation: Summing price by quantity with exact decimal arithmetic,
//     rounded once at the final sum.
//   - History Recording: Appending dated global and per-account values to
//     plain CSV files, human-readable and version-controllable.
//
// This package serves as the foundational logic for the `skv` command-line
// tool.
package skinvault
