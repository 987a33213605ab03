// Package sample holds the sample domain enumeration and its bindings.
//
// Each binding is a zero-sized type fixed to one (scalar type, profile) pair:
//
//	Label          string  profile.Default
//	JapaneseLabel  string  profile.Japanese
//	Code           int64   profile.Default
//
// Picking the binding picks the output type, so there is no runtime branch on
// the profile and no way to ask for a pair that is not listed above.
package sample
