// Package shipment contains the Shipment aggregate and its TrackingEvent
// audit entries. A shipment books cargo against exactly one logistics space
// and moves through the lifecycle pending -> confirmed -> in_transit ->
// delivered; the Status type enforces that the lifecycle never regresses.
// Tracking events are an append-only, creation-ordered record owned by the
// shipment for audit purposes.
package shipment
