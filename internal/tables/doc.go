// Package tables holds the fixed-point analysis tables shared by every
// filterbank kernel, together with the builder that derives them from the
// A2DP prototype window.
//
// The compiled-in tables live in zconsts.go and are regenerated with
// go generate. Each table is read-only for the life of the process.
package tables

//go:generate go run ../../cmd/gentables -o zconsts.go
