// Package services is the status workflow engine of the donation network. It
// validates and applies state transitions for donations, donation requests,
// deliveries and recycling batches, and computes the cascades between them.
//
// The package includes:
//   - DonationWorkflow: approval, rejection, diversion to recycling and
//     beneficiary selection
//   - RequestWorkflow: submission and staff review of donation requests
//   - DeliveryWorkflow: delivery assignment, driver progress and proof
//   - RecyclingWorkflow: batch creation, stage progression and impact
//
// Workflows hold no state. They receive the records loaded by the caller
// together with an explicit kernel.Actor, mutate those records and return the
// notification intents the transition produced. Persisting the records and
// dispatching the intents after commit is the caller's job.
package services
