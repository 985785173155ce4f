// Package report builds the standardized per-subject connectome report.
//
// A pipeline run leaves connectome_<Atlas>_<counts|scaled>.csv files in one
// output directory. Generator discovers them, computes the full metrics
// Record for each (in parallel, one derived seed per connectome), checks the
// key tractography artifacts, and summarizes the processing. The resulting
// Report is saved as JSON or YAML and printed as a human-readable summary.
//
// Per-connectome failures (unreadable or invalid matrices) become report
// warnings so that one bad file never hides the others; Generate only fails
// on missing inputs or cancellation.
package report
