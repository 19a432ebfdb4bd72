// Package models defines the wire models of the Splitwiser calculation service.
//
// # Models
//
//   - Bill: items and participants making up one snapshot of a bill
//   - Item: a priced line item and how it is split
//   - Participant: a person with what they paid and, in responses, what they owe
//   - Transaction: a suggested payment that settles part of a debt
//   - Payment: a transfer already made, used for group balances
//
// Bills are never stored. Every request carries a full snapshot and every
// response is recomputed from it.
//
// # Numbers
//
// Numeric request fields use Number, which accepts JSON numbers and strings.
// Values that do not parse are kept as typed and count as zero downstream,
// so a half-filled bill still computes. Money in responses is a Money value,
// always rendered with two decimal places.
package models
