// Package ports defines the contracts between the application core and the
// infrastructure adapters: order persistence with the atomic claim, the
// transaction boundary, route estimation, and outbound lifecycle
// notifications. Adapters implement these interfaces; the core depends only
// on the abstractions.
package ports
