// Package space contains the LogisticsSpace aggregate: a finite unit of
// transportable capacity on a fixed route, offered for booking by a
// logistics user. Its only mutable field is the availability status; the
// booking flow moves a space to booked the moment a shipment is created
// against it.
package space
