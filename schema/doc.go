// Package schema defines the closed value domains of the ISRA document model:
// organization names, asset and threat taxonomies, OWASP threat-factor bands,
// decision states and risk levels.
//
// The domains ship as an embedded YAML document so the sets stay reviewable
// as data rather than scattered through validation code. They load once at
// package init and never change afterwards.
package schema
