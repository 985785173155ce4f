// SPDX-License-Identifier: MIT
// Package: metrics
//
// record.go — the canonical metrics schema and the Record type.
//
// Contract:
//   • Fields lists every emitted name exactly once, in report order.
//   • Values are rounded once, when written, by the field's Precision.
//   • A nil value means null (undefined for this graph), never "missing".

package metrics

import "math"

// Precision is the number of decimal digits a field is rounded to.
type Precision int

// Precision classes.
const (
	PrecisionCount  Precision = 0 // integer counts
	PrecisionWeight Precision = 3 // weight-scale values (strengths, totals)
	PrecisionRatio  Precision = 6 // ratios and coefficients
)

// Canonical field names.
const (
	FieldNodes                  = "n_nodes"
	FieldTotalStreamlines       = "total_streamlines"
	FieldTotalConnections       = "total_connections"
	FieldConnectionDensity      = "connection_density"
	FieldSparsity               = "sparsity"
	FieldMeanConnectionStrength = "mean_connection_strength"
	FieldStdConnectionStrength  = "std_connection_strength"
	FieldMaxConnectionStrength  = "max_connection_strength"

	FieldMeanStrength              = "mean_strength"
	FieldStdStrength               = "std_strength"
	FieldMaxStrength               = "max_strength"
	FieldMeanDegree                = "mean_degree"
	FieldStdDegree                 = "std_degree"
	FieldMaxDegree                 = "max_degree"
	FieldStrengthDegreeCorrelation = "strength_degree_correlation"
	FieldBinaryClustering          = "binary_clustering_coefficient"
	FieldWeightedClustering        = "weighted_clustering_coefficient"
	FieldCharacteristicPathLength  = "characteristic_path_length"
	FieldGlobalEfficiency          = "global_efficiency"
	FieldGlobalEfficiencyApprox    = "global_efficiency_approx"
	FieldLocalEfficiency           = "local_efficiency"
	FieldDiameter                  = "diameter"
	FieldComponents                = "n_components"
	FieldLargestComponent          = "largest_component_size"
	FieldNormalizedClustering      = "normalized_clustering"
	FieldNormalizedPathLength      = "normalized_path_length"
	FieldSmallWorldness            = "small_worldness"
	FieldAssortativity             = "assortativity"
)

// Field describes one entry of the schema.
type Field struct {
	Name      string
	Precision Precision
}

// BasicFields are the connectivity summary fields, in report order.
var BasicFields = []string{
	FieldNodes,
	FieldTotalStreamlines,
	FieldTotalConnections,
	FieldConnectionDensity,
	FieldSparsity,
	FieldMeanConnectionStrength,
	FieldStdConnectionStrength,
	FieldMaxConnectionStrength,
}

// GraphFields are the graph-theoretical fields, in report order.
var GraphFields = []string{
	FieldMeanStrength,
	FieldStdStrength,
	FieldMaxStrength,
	FieldMeanDegree,
	FieldStdDegree,
	FieldMaxDegree,
	FieldStrengthDegreeCorrelation,
	FieldBinaryClustering,
	FieldWeightedClustering,
	FieldCharacteristicPathLength,
	FieldGlobalEfficiency,
	FieldGlobalEfficiencyApprox,
	FieldLocalEfficiency,
	FieldDiameter,
	FieldComponents,
	FieldLargestComponent,
	FieldNormalizedClustering,
	FieldNormalizedPathLength,
	FieldSmallWorldness,
	FieldAssortativity,
}

// precisions maps every non-ratio field to its class; anything else is a ratio.
var precisions = map[string]Precision{
	FieldNodes:                  PrecisionCount,
	FieldTotalConnections:       PrecisionCount,
	FieldMaxDegree:              PrecisionCount,
	FieldDiameter:               PrecisionCount,
	FieldComponents:             PrecisionCount,
	FieldLargestComponent:       PrecisionCount,
	FieldTotalStreamlines:       PrecisionWeight,
	FieldMeanConnectionStrength: PrecisionWeight,
	FieldStdConnectionStrength:  PrecisionWeight,
	FieldMaxConnectionStrength:  PrecisionWeight,
	FieldMeanStrength:           PrecisionWeight,
	FieldStdStrength:            PrecisionWeight,
	FieldMaxStrength:            PrecisionWeight,
	FieldMeanDegree:             PrecisionWeight,
	FieldStdDegree:              PrecisionWeight,
}

// LegacyAliases maps historical field names to their canonical replacement.
// Aliases are accepted when reading old reports but never emitted.
var LegacyAliases = map[string]string{
	"mean_clustering_coefficient": FieldBinaryClustering,
}

// Fields returns the full schema (basic then graph fields) with precisions.
func Fields() []Field {
	out := make([]Field, 0, len(BasicFields)+len(GraphFields))
	for _, name := range BasicFields {
		out = append(out, Field{Name: name, Precision: PrecisionOf(name)})
	}
	for _, name := range GraphFields {
		out = append(out, Field{Name: name, Precision: PrecisionOf(name)})
	}

	return out
}

// PrecisionOf reports the rounding class of a canonical field name.
func PrecisionOf(name string) Precision {
	if p, ok := precisions[name]; ok {
		return p
	}

	return PrecisionRatio
}

// Canonical resolves a legacy alias to its canonical name; other names pass through.
func Canonical(name string) string {
	if c, ok := LegacyAliases[name]; ok {
		return c
	}

	return name
}

var pow10 = [...]float64{1, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9}

// Round rounds v half away from zero to p decimal digits.
func Round(v float64, p Precision) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	scale := math.Pow(10, float64(p))
	if int(p) >= 0 && int(p) < len(pow10) {
		scale = pow10[p]
	}

	return math.Round(v*scale) / scale
}

// Record is the flat name → value mapping produced by Compute.
// A nil pointer is a null value.
type Record map[string]*float64

// set stores v rounded to the field's precision.
func (r Record) set(name string, v float64) {
	rv := Round(v, PrecisionOf(name))
	r[name] = &rv
}

// setNull stores an explicit null.
func (r Record) setNull(name string) {
	r[name] = nil
}

// setOpt stores *v, or null when v is nil.
func (r Record) setOpt(name string, v *float64) {
	if v == nil {
		r.setNull(name)
		return
	}
	r.set(name, *v)
}

// Get returns the value of name; ok is false when the field is null or absent.
func (r Record) Get(name string) (float64, bool) {
	v, present := r[Canonical(name)]
	if !present || v == nil {
		return 0, false
	}

	return *v, true
}

// Has reports whether name is present (possibly as null).
func (r Record) Has(name string) bool {
	_, ok := r[Canonical(name)]

	return ok
}

// Subset returns a new Record restricted to names. Absent names are skipped;
// nulls are kept.
func (r Record) Subset(names ...string) Record {
	out := make(Record, len(names))
	for _, name := range names {
		if v, ok := r[name]; ok {
			out[name] = v
		}
	}

	return out
}

// Normalize returns a copy with legacy aliases renamed to canonical names.
// A canonical value already present wins over its alias.
func (r Record) Normalize() Record {
	out := make(Record, len(r))
	for name, v := range r {
		if _, legacy := LegacyAliases[name]; !legacy {
			out[name] = v
		}
	}
	for alias, canonical := range LegacyAliases {
		v, ok := r[alias]
		if !ok {
			continue
		}
		if _, exists := out[canonical]; !exists {
			out[canonical] = v
		}
	}

	return out
}
