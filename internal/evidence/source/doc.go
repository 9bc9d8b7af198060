// Package source derives a candidate publisher domain from free text and maps
// it to a prior credibility score using a static reputation table.
//
// The table is loaded once at process start and never mutated, so a single
// *Table may be shared by every request without synchronization.
package source
