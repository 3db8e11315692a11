package atom

import "math"

// Conversions is the UCUM conversion table: each entry maps an atom (no
// prefix) to factor * rhs, where rhs is itself parsed as a unit term by
// term.AsBaseUnits. Base atoms map to themselves. Entries whose RHS begins
// with "@", "=" or "1" are opaque: the system keeps the original unit under
// reduction rather than expanding it (see IsOpaque).
//
// Values are ported from the UCUM derived-unit families this module's
// source material documents (SI derived units, CGS units, customary
// length/mass/volume/time units, angle, and a selection of logarithmic and
// clinical units). It is not the complete UCUM table (≈316 rows in the full
// standard) but covers every family exercised by this module's tests.
var Conversions = []Conversion{
	// -- SI base atoms: map to themselves.
	{"m", 1, "m"},
	{"s", 1, "s"},
	{"g", 1, "g"},
	{"rad", 1, "rad"},
	{"K", 1, "K"},
	{"C", 1, "C"},
	{"cd", 1, "cd"},
	{"mol", 1, "mol"},
	{"sr", 1, "sr"},
	{"[pi]", 1, "1"}, // dimensionless constant, kept opaque; its numeric value is not applied

	// -- SI derived units, expressed through base atoms.
	{"Hz", 1, "s-1"},
	{"N", 1, "kg.m/s2"},
	{"Pa", 1, "N/m2"},
	{"J", 1, "N.m"},
	{"W", 1, "J/s"},
	{"A", 1, "C/s"},
	{"V", 1, "J/C"},
	{"F", 1, "C/V"},
	{"Ohm", 1, "V/A"},
	{"S", 1, "Ohm-1"},
	{"Wb", 1, "V.s"},
	{"T", 1, "Wb/m2"},
	{"H", 1, "Wb/A"},
	{"lm", 1, "cd.sr"},
	{"lx", 1, "lm/m2"},
	{"Bq", 1, "s-1"},
	{"Gy", 1, "J/kg"},
	{"Sv", 1, "J/kg"},
	{"gf", 9.80665, "g.m/s2"},
	{"kat", 1, "mol/s"},

	// -- Celsius is an affine special unit: opaque under reduction.
	{"Cel", 1, "=cel(1 K)"},

	// -- CGS units.
	{"Gal", 0.01, "m/s2"},
	{"dyn", 1e-5, "N"},
	{"erg", 1e-7, "J"},
	{"P", 0.1, "Pa.s"},
	{"Bi", 10, "A"},
	{"St", 1e-4, "m2/s"},
	{"Mx", 1e-8, "Wb"},
	{"G", 1e-4, "T"},
	{"Oe", 250.0 / math.Pi, "A/m"},
	{"Gb", 2.5 / math.Pi, "A"},
	{"sb", 1e4, "cd/m2"},
	{"Lmb", 1e4 / math.Pi, "cd/m2"},
	{"ph", 1e4, "lx"},
	{"Ci", 3.7e10, "Bq"},
	{"R", 2.58e-4, "C/kg"},
	{"RAD", 0.01, "Gy"},
	{"REM", 0.01, "Sv"},

	// -- volume, area, mass, density.
	{"l", 1e-3, "m3"},
	{"L", 1e-3, "m3"},
	{"ar", 100, "m2"},
	{"t", 1e3, "kg"},
	{"u", 1.66053906660e-27, "kg"},
	{"eV", 1.602176634e-19, "J"},
	{"pc", 3.0856775814913673e16, "m"},

	// -- angle.
	{"deg", math.Pi / 180, "rad"},
	{"gon", math.Pi / 200, "rad"},
	{"'", math.Pi / 180 / 60, "rad"},
	{"\"", math.Pi / 180 / 3600, "rad"},
	{"circ", 2 * math.Pi, "rad"},
	{"sph", 4 * math.Pi, "sr"},

	// -- time.
	{"min", 60, "s"},
	{"h", 3600, "s"},
	{"d", 86400, "s"},
	{"wk", 7, "d"},
	{"a_t", 365.24219, "d"},
	{"a_j", 365.25, "d"},
	{"a_g", 365.2425, "d"},
	{"a", 1, "a_j"},
	{"mo_s", 29.53059, "d"},
	{"mo_j", 1.0 / 12, "a_j"},
	{"mo_g", 1.0 / 12, "a_g"},
	{"mo", 1, "mo_j"},
	{"atm", 101325, "Pa"},
	{"bar", 1e5, "Pa"},

	// -- dimensionless ratios.
	{"%", 1e-2, "1"},
	{"[ppth]", 1e-3, "1"},
	{"[ppm]", 1e-6, "1"},
	{"[ppb]", 1e-9, "1"},
	{"[pptr]", 1e-12, "1"},
	{"eq", 1, "mol"},
	{"osm", 1, "mol"},
	{"g%", 1, "@g%"}, // legacy mass-percent notation: malformed RHS, kept opaque (see SPEC_FULL.md §8)
	{"U", 1, "@U"},
	{"[iU]", 1, "@[iU]"},
	{"[IU]", 1, "@[IU]"},
	{"Np", 1, "=ln(1 1)"},
	{"B", 1, "=lg(1 1)"},

	// -- customary length (international foot family).
	{"[in_i]", 2.54e-2, "m"},
	{"[ft_i]", 0.3048, "m"},
	{"[yd_i]", 0.9144, "m"},
	{"[mi_i]", 1609.344, "m"},
	{"[fth_i]", 1.8288, "m"},
	{"[nmi_i]", 1852, "m"},
	{"[kn_i]", 1852.0 / 3600, "m/s"},
	{"[in_i'Hg]", 3386.389, "Pa"},
	{"[in_i'H2O]", 249.082, "Pa"},
	{"m[H2O]", 9806.65, "Pa"},
	{"m[Hg]", 133322.387415, "Pa"},

	// -- customary mass (avoirdupois family).
	{"[lb_av]", 0.45359237, "kg"},
	{"[oz_av]", 0.028349523125, "kg"},
	{"[dr_av]", 0.0017718451953125, "kg"},
	{"[gr]", 6.479891e-5, "kg"},
	{"[ston_av]", 907.18474, "kg"},
	{"[lton_av]", 1016.0469088, "kg"},
	{"[stone_av]", 6.35029318, "kg"},
	{"[lbf_av]", 4.4482216152605, "N"},
	{"[psi]", 6894.757293168361, "Pa"},

	// -- US customary volume.
	{"[gal_us]", 3.785411784e-3, "m3"},
	{"[bbl_us]", 0.158987294928, "m3"},
	{"[qt_us]", 9.46352946e-4, "m3"},
	{"[pt_us]", 4.73176473e-4, "m3"},
	{"[foz_us]", 2.95735295625e-5, "m3"},
	{"[tbs_us]", 1.478676478125e-5, "m3"},
	{"[tsp_us]", 4.92892159375e-6, "m3"},
	{"[cup_us]", 2.365882365e-4, "m3"},

	// -- energy / thermochemistry.
	{"cal", 4.184, "J"},
	{"cal_[15]", 4.18580, "J"},
	{"cal_[20]", 4.18190, "J"},
	{"cal_m", 4.19002, "J"},
	{"cal_IT", 4.1868, "J"},
	{"cal_th", 4.184, "J"},
	{"tex", 1e-6, "kg/m"},

	// -- information.
	{"bit", 1, "1"},
	{"By", 8, "bit"},
	{"Bd", 1, "s-1"},
	{"mho", 1, "S"},
}
