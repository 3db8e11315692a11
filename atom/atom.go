// Package atom holds the static UCUM atom table: metric prefixes, the
// metric and non-metric atom sets, and the conversion table used to reduce
// derived units to base units. It also provides the atom tokenizer that
// splits a bare unit symbol such as "kg" into its prefix and atom parts.
//
// All data here is compile-time constant, ported from the published UCUM
// prefix, atom, and conversion tables.
package atom

// Prefixes are the legal metric prefix symbols, case-sensitive. Prefixes
// are at most two characters long.
var Prefixes = []string{
	"Y", "Z", "E", "P", "T", "G", "M", "k", "h", "da",
	"d", "c", "mu", "n", "p", "f", "a", "z", "y",
	"Ki", "Mi", "Gi", "Ti",
}

// PrefixExponents maps a decimal prefix symbol to its power-of-ten scaling
// exponent. The binary prefixes (Ki, Mi, Gi, Ti) are not in this map; they
// are in BinaryPrefixExponents.
var PrefixExponents = map[string]int{
	"Y": 24, "Z": 21, "E": 18, "P": 15, "T": 12, "G": 9, "M": 6, "k": 3,
	"h": 2, "da": 1, "d": -1, "c": -2, "mu": -6, "n": -9, "p": -12,
	"f": -15, "a": -18, "z": -21, "y": -24,
}

// BinaryPrefixExponents maps a binary prefix symbol to its power-of-1024 exponent.
var BinaryPrefixExponents = map[string]int{
	"Ki": 1, "Mi": 2, "Gi": 3, "Ti": 4,
}

var prefixSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(Prefixes))
	for _, p := range Prefixes {
		m[p] = struct{}{}
	}
	return m
}()

// MetricAtoms is the set of atoms that may carry a metric prefix.
var MetricAtoms = toSet([]string{
	"m", "s", "g", "rad", "K", "C", "cd", "mol", "sr", "Hz", "N", "Pa", "J",
	"W", "A", "V", "F", "Ohm", "S", "Wb", "Cel", "T", "H", "lm", "lx", "Bq",
	"Gy", "Sv", "l", "L", "ar", "t", "bar", "u", "eV", "pc", "[c]", "[h]",
	"[k]", "[eps_0]", "[mu_0]", "[e]", "[m_e]", "[m_p]", "[G]", "[g]", "[ly]",
	"gf", "Ky", "Gal", "dyn", "erg", "P", "Bi", "St", "Mx", "G", "Oe", "Gb",
	"sb", "Lmb", "ph", "Ci", "R", "RAD", "REM", "cal_[15]", "cal_[20]",
	"cal_m", "cal_IT", "cal_th", "cal", "tex", "m[H2O]", "m[Hg]", "eq", "osm",
	"g%", "kat", "U", "[iU]", "[IU]", "Np", "B", "B[SPL]", "B[V]", "B[mV]",
	"B[uV]", "B[10.nV]", "B[W]", "B[kW]", "st", "mho", "bit", "By", "Bd",
})

// NonMetricAtoms is the set of atoms that never carry a prefix: bracketed
// customary units, arbitrary units and the handful of bare symbols ('  "
// minute/second-of-arc marks, %, etc.) that UCUM defines outside the metric
// system.
var NonMetricAtoms = toSet([]string{
	"'", "\"", "10^", "[pi]", "%", "[ppth]", "[ppm]", "[ppb]", "[pptr]", "gon",
	"deg", "min", "h", "d", "a_t", "a_j", "a_g", "a", "wk", "mo_s",
	"mo_j", "mo_g", "mo", "AU", "atm", "[lbf_av]", "[in_i]", "[ft_i]",
	"[yd_i]", "[mi_i]", "[fth_i]", "[nmi_i]", "[kn_i]", "[sin_i]", "[sft_i]",
	"[syd_i]", "[cin_i]", "[cft_i]", "[cyd_i]", "[bf_i]", "[cr_i]", "[mil_i]",
	"[cml_i]", "[hd_i]", "[ft_us]", "[yd_us]", "[in_us]", "[rd_us]", "[ch_us]",
	"[lk_us]", "[rch_us]", "[rlk_us]", "[fth_us]", "[fur_us]", "[mi_us]",
	"[acr_us]", "[srd_us]", "[smi_us]", "[sct]", "[twp]", "[mil_us]", "[in_br]",
	"[ft_br]", "[rd_br]", "[ch_br]", "[lk_br]", "[fth_br]", "[pc_br]",
	"[yd_br]", "[mi_br]", "[nmi_br]", "[kn_br]", "[acr_br]", "[gal_us]",
	"[bbl_us]", "[qt_us]", "[pt_us]", "[gil_us]", "[foz_us]", "[fdr_us]",
	"[min_us]", "[crd_us]", "[bu_us]", "[gal_wi]", "[pk_us]", "[dqt_us]",
	"[dpt_us]", "[tbs_us]", "[tsp_us]", "[cup_us]", "[foz_m]", "[cup_m]",
	"[tsp_m]", "[tbs_m]", "[gal_br]", "[pk_br]", "[bu_br]", "[qt_br]",
	"[pt_br]", "[gil_br]", "[foz_br]", "[fdr_br]", "[min_br]", "[gr]",
	"[lb_av]", "[oz_av]", "[dr_av]", "[scwt_av]", "[lcwt_av]", "[ston_av]",
	"[lton_av]", "[stone_av]", "[pwt_tr]", "[oz_tr]", "[lb_tr]", "[sc_ap]",
	"[dr_ap]", "[oz_ap]", "[lb_ap]", "[oz_m]", "[lne]", "[pnt]", "[pca]",
	"[pnt_pr]", "[pca_pr]", "[pied]", "[pouce]", "[ligne]", "[didot]",
	"[cicero]", "[degF]", "[degR]", "[degRe]", "[Cal]", "[Btu_39]", "[Btu_59]",
	"[Btu_60]", "[Btu_m]", "[Btu_IT]", "[Btu_th]", "[Btu]", "[HP]", "[den]",
	"[in_i'H2O]", "[in_i'Hg]", "[PRU]", "[wood'U]", "[diop]", "[p'diop]",
	"%[slope]", "[mesh_i]", "[Ch]", "[drp]", "[hnsf'U]", "[MET]", "[hp'_X]",
	"[hp'_C]", "[hp'_M]", "[hp'_Q]", "[hp_X]", "[hp_C]", "[hp_M]", "[hp_Q]",
	"[kp_X]", "[kp_C]", "[kp_M]", "[kp_Q]", "[pH]", "[S]", "[HPF]", "[LPF]",
	"[arb'U]", "[USP'U]", "[GPL'U]", "[MPL'U]", "[APL'U]", "[beth'U]",
	"[anti'Xa'U]", "[todd'U]", "[dye'U]", "[smgy'U]", "[bdsk'U]", "[ka'U]",
	"[knk'U]", "[mclg'U]", "[tb'U]", "[CCID_50]", "[TCID_50]", "[EID_50]",
	"[PFU]", "[FFU]", "[CFU]", "[IR]", "[BAU]", "[AU]", "[Amb'a'1'U]", "[PNU]",
	"[Lf]", "[D'ag'U]", "[FEU]", "[ELU]", "[EU]", "Ao", "b", "att", "[psi]",
	"circ", "sph", "[car_m]", "[car_Au]", "[smoot]", "[m/s2/Hz^(1/2)]", "bit_s",
	"{tot}", "{tbl}", "{rbc}", "g.m/{H.B.}", "gf.m/{H.B.}", "kg{wet'tis}",
	"mg{creat}",
})

func toSet(atoms []string) map[string]struct{} {
	m := make(map[string]struct{}, len(atoms))
	for _, a := range atoms {
		m[a] = struct{}{}
	}
	return m
}

// IsMetric reports whether atom may carry a metric prefix.
func IsMetric(a string) bool {
	_, ok := MetricAtoms[a]
	return ok
}

// Unit is a single prefixed, exponentiated, optionally-annotated atom, the
// token produced by the atom tokenizer and consumed by the term parser.
type Unit struct {
	Prefix     string
	Atom       string
	Exponent   int8
	Annotation string
}

// SameSymbol reports whether two units share the same (prefix, atom) pair,
// ignoring exponent and annotation. Used by term normalization to decide
// whether two adjacent units should be coalesced.
func (u Unit) SameSymbol(o Unit) bool {
	return u.Prefix == o.Prefix && u.Atom == o.Atom
}

// Invert returns the unit with its exponent negated.
func (u Unit) Invert() Unit {
	u.Exponent = -u.Exponent
	return u
}

// Tokenize splits a bare unit symbol s into a Unit with its prefix and atom
// parts separated, given an already-parsed exponent and annotation.
//
// Legal prefixes are at most two characters long. The smallest i such that
// s[:i] is a legal prefix and s[i:] is a metric atom wins; this keeps "mol"
// parsed as the bare atom "mol" rather than prefix "m" + atom "ol" (not a
// metric atom). A symbol that doesn't split this way is returned with an
// empty prefix and the whole string as its atom — this is how non-metric
// bracketed atoms and un-prefixed atoms fall through.
func Tokenize(s string, exp int8, annotation string) Unit {
	for i := 1; i <= 2 && i < len(s); i++ {
		candidatePrefix := s[:i]
		rest := s[i:]
		if _, ok := prefixSet[candidatePrefix]; ok && IsMetric(rest) {
			return Unit{Prefix: candidatePrefix, Atom: rest, Exponent: exp, Annotation: annotation}
		}
	}
	return Unit{Prefix: "", Atom: s, Exponent: exp, Annotation: annotation}
}

// Conversion is a single row of the conversion table: lhs_atom maps to
// factor * rhs, where rhs is either a UCUM unit term string, the atom
// itself (base unit, no further reduction), or a sentinel beginning with
// "@", "=" or "1" meaning "not reducible here" (special function, affine
// identity, or already dimensionless).
type Conversion struct {
	Atom   string
	Factor float64
	RHS    string
}

// IsOpaque reports whether an RHS string is a reduction sentinel: a special
// function unit, an affine/identity mapping, or an explicit "1" (already
// dimensionless), none of which are further reducible by this system.
func IsOpaque(rhs string) bool {
	if rhs == "" {
		return false
	}
	switch rhs[0] {
	case '@', '=', '1':
		return true
	default:
		return false
	}
}

// conversionIndex maps an atom to its Conversion for O(1) lookup. Built
// once from Conversions; linear scan in the source data is a pure
// optimization detail, not a semantic requirement.
var conversionIndex = func() map[string]Conversion {
	m := make(map[string]Conversion, len(Conversions))
	for _, c := range Conversions {
		m[c.Atom] = c
	}
	return m
}()

// Lookup returns the conversion entry for a bare atom (no prefix), if any.
func Lookup(a string) (Conversion, bool) {
	c, ok := conversionIndex[a]
	return c, ok
}

