// Package asset holds the asset entities of an ISRA project: the business
// assets being protected, the per-asset CIA security properties, and the
// supporting assets that realize them.
//
// Every entity keeps private backing state behind validated setters: a write
// either replaces the field atomically or returns a ValidationError and
// leaves the prior value untouched. Properties() returns a plain snapshot and
// is the only sanctioned read path.
package asset
