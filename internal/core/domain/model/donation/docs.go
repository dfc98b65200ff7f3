// Package donation models an offered item and its lifecycle from listing to
// delivery or diversion to recycling.
//
// Legal status edges:
//
//	pending       -> approved, canceled, for_recycling
//	approved      -> in_route, canceled, for_recycling
//	in_route      -> delivered
//	canceled      -> for_recycling
//	for_recycling -> in_route (claimed by a recycling batch)
//	delivered     -> (terminal)
//
// Approval and rejection are staff actions. The move to in_route happens when
// the donor selects a beneficiary, when a delivery is assigned, or when a
// recycling batch claims the item.
package donation
