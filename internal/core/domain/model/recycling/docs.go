// Package recycling models recycling partners and the batches of
// non-reusable items shipped to them.
//
// A batch moves strictly forward, one stage at a time:
//
//	created -> collected -> shipped -> processed -> certified
//
// The actual weight can only be recorded when processing and the certificate
// only when certifying. Environmental impact is a pure function of weight.
package recycling
