// Package aggregate combines standardized reports from many subjects into
// per-atlas tables and summary statistics.
//
// Layout searched under the root directory, per session folder:
//
//	<session>/DTI/mrtrix3_outputs/standardized_connectome_report.json
//	<session>/standardized_connectome_report.json   (fallback)
//
// Outputs per atlas: <atlas>_basic_metrics.csv and <atlas>_graph_metrics.csv
// (one row per subject and connectome kind), and a plain-text summary of the
// scaled connectomes (mean, sample std, range for every metric).
package aggregate
