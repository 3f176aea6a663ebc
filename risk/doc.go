// Package risk holds the risk entity of an ISRA project and its five
// sub-records: the risk name (threat statement), likelihood and impact
// evaluations, attack paths with vulnerability references, and mitigations.
//
// A Risk owns its sub-records. Attaching a sub-record does not synchronize
// its riskIdRef with the owning risk; callers stamp it explicitly, the same
// way the aggregate's collection key is related by convention to riskId
// without being enforced. Attack paths and mitigations live in dense-keyed
// ordered collections with per-risk ids restarting at 1.
package risk
