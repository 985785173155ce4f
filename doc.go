// Package connectome computes graph-theoretical metrics for structural brain
// connectomes: weighted, undirected N×N connectivity matrices produced by
// diffusion tractography.
//
// Layout:
//
//	matrix/    — dense storage, validation, transforms, Floyd–Warshall
//	metrics/   — Compute: node statistics, clustering, efficiency, small-worldness
//	builder/   — synthetic connectomes and randomized null models
//	loader/    — delimited text matrix files (CSV, TSV, MRtrix space-delimited)
//	report/    — the standardized per-subject report (JSON or YAML)
//	aggregate/ — per-atlas tables and summary statistics across subjects
//	cmd/connectome — the command-line tool
//
// Quick example:
//
//	m, _ := loader.Load("connectome_FreeSurfer_DK_scaled.csv")
//	rec, err := metrics.Compute(m, metrics.WithSeed(42))
//	if err != nil { ... }
//	if eff, ok := rec.Get(metrics.FieldGlobalEfficiency); ok {
//		fmt.Println(eff)
//	}
//
// Every metric is deterministic for a fixed seed; null values mark metrics
// that are undefined for the given graph (for example the characteristic
// path length of a graph with no edges).
package connectome
