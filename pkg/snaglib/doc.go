// Package snaglib is the snag download engine. It fetches N URLs
// concurrently (one task per URL, deliberately unbounded), resolves
// output filenames from Content-Disposition headers and URL paths,
// streams response bodies to disk with incremental progress callbacks,
// and aggregates per-task results into a single run outcome where
// sibling failures never abort each other.
package snaglib
