// This file contains the base enum type shared by the small fixed-ID
// vocabularies in this package (mirrors repcore.Enum in the StarCraft
// parser this module is descended from).

package rlcore

import "fmt"

// Enum is the base / common part of enum types.
type Enum struct {
	// Name of the entity.
	Name string
}

// String returns the string representation of the enum (the name).
// Defined with a value receiver so this is used even through a non-pointer.
func (e Enum) String() string {
	return e.Name
}

// UnknownEnum constructs a new Enum for an unrecognized entity, preserving
// the unrecognized ID in its name rather than dropping it.
func UnknownEnum(id any) Enum {
	return Enum{fmt.Sprintf("Unknown 0x%x", id)}
}
