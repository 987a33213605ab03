// Package tagged is the projection core: a scalar wrapper annotated, at the
// type level only, with the domain type it was produced from and the profile
// that produced it.
//
// Key pieces:
//   - Value: the tagged scalar. Only the scalar is serialized.
//   - Projector / Reconstructor / Binding: forward and inverse conversions for
//     one (scalar type, profile) pair.
//   - Option and Lift: optional values and the generic lifting of any
//     projection over them.
//   - Coded: a record field holding a domain value that is written through a
//     binding's projection and read back through its inverse.
//   - ConversionError: the typed failure of an inverse conversion.
//
// Dispatch is static. Every (scalar type, profile) pair of a domain type is a
// distinct binding type, so asking for an undefined pair does not compile,
// and values tagged with different profiles are different Go types:
//
//	var a tagged.Value[string, sample.Value, profile.Default]
//	var b tagged.Value[string, sample.Value, profile.Japanese]
//	a = b // compile error: mismatched types
package tagged
