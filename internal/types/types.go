// README: Common value objects shared across modules.
package types

// ID identifies a user or driver across stores.
type ID string

// Point is a geographic coordinate in decimal degrees.
type Point struct {
	Lat float64
	Lng float64
}
