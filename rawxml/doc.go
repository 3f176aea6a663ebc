// Package rawxml parses exported assessment documents into a generic element
// tree and locates the rich-text blocks that the export format stores
// out-of-line, flat, by kind.
package rawxml
