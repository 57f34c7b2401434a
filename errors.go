package chainhash

import "errors"

var (
	// ErrInvalidCapacity is returned when a capacity is below the table's floor.
	ErrInvalidCapacity = errors.New("invalid capacity")
	// ErrInvalidThreshold is returned for a load factor band that cannot hold.
	ErrInvalidThreshold = errors.New("invalid load factor threshold")
)
