// Package collection implements the dense-keyed ordered maps behind every
// entity family of the ISRA aggregate: business assets, supporting assets,
// risks, vulnerabilities, tracking rows, and the attack path and mitigation
// collections nested inside a risk.
package collection
