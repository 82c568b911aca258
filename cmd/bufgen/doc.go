// Command bufgen generates the fixed-size buffer method bundle for named byte
// array types.
//
// It is meant to be run through go generate:
//
//	type PublicKey [33]byte
//	type Signature [64]byte
//
//	//go:generate go run keybuf/cmd/bufgen --type=PublicKey:33,Signature:64 --codec --json --yaml --output=public_buf.go
//
// Flags
//
//	--type     comma separated Name:Len pairs (required)
//	--debug    pretty (Name(hex)), raw (hex) or none
//	--codec    emit the length-prefixed binary codec
//	--json     emit strict JSON sequence (de)serialization
//	--yaml     emit strict YAML sequence (de)serialization
//	--package  package name (default $GOPACKAGE)
//	--output   output file (default <first type>_buf.go, lowercased)
//
// The lengths given on the command line must match the array declarations.
// The generated FromSlice constructors and decoders check input against
// them.
package main
