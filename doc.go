// Package revue reconciles two accounting exports, a trial balance and a
// general ledger, for a special-purpose vehicle, and produces the structured
// findings behind a human-readable review document.
//
// The core functionalities include:
//   - Tolerant CSV ingestion: loosely named headers (synonyms, accents, case)
//     are resolved onto a canonical schema, and heterogeneous numeric and date
//     formats are normalized into exact decimal amounts and calendar dates.
//   - Reconciliation: per-account debit/credit totals are computed from each
//     source, every account present in either source is classified (balanced,
//     variance, missing on one side), and each source is checked for
//     debit=credit self-consistency.
//   - Monthly activity: ledger entries are grouped by calendar month and the
//     largest entries of the period are singled out.
//   - Agreement drafting: an unrelated convenience that renders a boilerplate
//     current-account advance agreement from structured party and terms data.
//
// Everything is recomputed fresh per run from the two input files; nothing is
// persisted. This package serves as the foundational logic for the `rvc`
// command-line tool.
package revue
