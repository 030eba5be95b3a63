// Package geom provides the minimal 2-D point arithmetic consumed by the
// pathorder solvers: subtraction, scaling, Euclidean magnitude and
// distance. Coordinates are float64; no unit conversion, clamping or
// rounding is performed beyond the numeric type's natural precision.
package geom
