// internal/types/types.go
package types

// EntityID is a stable handle into one of the world arenas.
// Zero is never issued and means "no entity".
type EntityID uint32
