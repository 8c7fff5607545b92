// Package kernel provides the domain primitives shared by every aggregate in
// the delivery model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - GeoLocation: A value object holding validated geographic coordinates
//
// Both primitives are immutable, validate themselves on construction, and
// reject their zero values, so aggregates built on top of them can assume
// they are always in a valid state.
package kernel
