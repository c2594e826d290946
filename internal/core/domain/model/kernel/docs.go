// Package kernel contains the shared value objects of the domain model.
// Today that is the UUID identifier type used by every aggregate. Types in
// this package carry no business rules of their own; they exist to give the
// domain model strongly typed building blocks with validated construction.
package kernel
