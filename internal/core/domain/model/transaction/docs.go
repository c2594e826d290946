// Package transaction contains the payment Transaction aggregate: at most
// one per shipment, created pending and completed exactly once with a
// blockchain hash. No real payment processing happens here; the record is
// accepted as given.
package transaction
