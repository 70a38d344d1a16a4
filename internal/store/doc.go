// Package store defines the persistence interfaces consumed by the API
// layer, along with the sentinel errors and transaction helpers shared by
// their implementations. Concrete storage backends live under
// internal/platform.
package store
