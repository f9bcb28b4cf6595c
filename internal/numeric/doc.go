// Package numeric maps Go scalar types onto MatrixMarket value kinds.
//
// # Type Mapping
//
//	Go type                         | MatrixMarket value kind
//	--------------------------------|------------------------
//	int, int8, int16, int32, int64  | integer
//	float32, float64                | real
//	complex64, complex128           | complex
//	(pattern container, no values)  | pattern
//
// The mapping is static: [Scalar] is the type set of supported element types,
// so a container over any other element type does not compile. [KindOf]
// resolves the kind of a type parameter, [Format] renders one value as
// MatrixMarket tokens and [Parse] decodes tokens into a value.
//
// # Value slots
//
// An entry read from a pattern file carries no value. [Slot] is the tagged
// variant used for that case: either a numeric value or the pattern marker.
package numeric
