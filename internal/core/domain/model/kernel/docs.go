// Package kernel holds the primitives shared by every ReCo aggregate.
//
// The package includes:
//   - UUID: entity identifier value object
//   - GeoPoint: a latitude/longitude pair recorded on pickups and deliveries
//   - Role and Actor: the caller capability passed explicitly into every
//     workflow operation instead of ambient staff/superuser checks
package kernel
