// Package vuln holds the project-level vulnerability entries referenced by
// risk attack paths.
package vuln
