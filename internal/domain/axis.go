package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/fatih/camelcase"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Axis is one of the five fixed bipolar dimensions of the survey.
// The numeric order is the canonical letter order of an archetype code.
type Axis int

const (
	AxisEquityFreeMarket Axis = iota
	AxisLibertarianAuthoritarian
	AxisProgressiveConservative
	AxisSecularReligious
	AxisGlobalismNationalism
)

// AxisCount is the number of letters in an archetype code.
const AxisCount = 5

// Axes lists every axis in canonical order.
var Axes = [AxisCount]Axis{
	AxisEquityFreeMarket,
	AxisLibertarianAuthoritarian,
	AxisProgressiveConservative,
	AxisSecularReligious,
	AxisGlobalismNationalism,
}

// Letter is the single-character pole code of an axis.
type Letter byte

func (l Letter) String() string { return string(rune(l)) }

// Pole is one end of an axis.
type Pole struct {
	Letter Letter
	Ident  string // CamelCase identifier, e.g. "FreeMarket"
}

// Label returns the human-readable pole name ("FreeMarket" -> "Free Market").
func (p Pole) Label() string {
	return strings.Join(camelcase.Split(p.Ident), " ")
}

type axisSpec struct {
	left, right Pole
}

var axisSpecs = [AxisCount]axisSpec{
	AxisEquityFreeMarket:         {Pole{'E', "Equity"}, Pole{'F', "FreeMarket"}},
	AxisLibertarianAuthoritarian: {Pole{'L', "Libertarian"}, Pole{'A', "Authoritarian"}},
	AxisProgressiveConservative:  {Pole{'P', "Progressive"}, Pole{'C', "Conservative"}},
	AxisSecularReligious:         {Pole{'S', "Secular"}, Pole{'R', "Religious"}},
	AxisGlobalismNationalism:     {Pole{'G', "Globalism"}, Pole{'N', "Nationalism"}},
}

// Valid reports whether a is one of the five known axes.
func (a Axis) Valid() bool { return a >= 0 && int(a) < AxisCount }

// Left returns the left-hand pole of the axis.
func (a Axis) Left() Pole { return axisSpecs[a].left }

// Right returns the right-hand pole of the axis.
func (a Axis) Right() Pole { return axisSpecs[a].right }

// Name is the canonical display name, e.g. "Equity vs. Free Market".
func (a Axis) Name() string {
	if !a.Valid() {
		return fmt.Sprintf("Axis(%d)", int(a))
	}
	return a.Left().Label() + " vs. " + a.Right().Label()
}

func (a Axis) String() string { return a.Name() }

// Opposite returns the other letter of the axis pair, and false when l
// does not belong to the axis.
func (a Axis) Opposite(l Letter) (Letter, bool) {
	switch l {
	case a.Left().Letter:
		return a.Right().Letter, true
	case a.Right().Letter:
		return a.Left().Letter, true
	default:
		return 0, false
	}
}

// PoleFor returns the pole matching letter l.
func (a Axis) PoleFor(l Letter) (Pole, bool) {
	switch l {
	case a.Left().Letter:
		return a.Left(), true
	case a.Right().Letter:
		return a.Right(), true
	default:
		return Pole{}, false
	}
}

// legacyAliases are labels used by older question banks.
var legacyAliases = map[string]Axis{
	"Equality vs. Markets":        AxisEquityFreeMarket,
	"Economic":                    AxisEquityFreeMarket,
	"Economy":                     AxisEquityFreeMarket,
	"Liberty vs. Authority":       AxisLibertarianAuthoritarian,
	"Authority":                   AxisLibertarianAuthoritarian,
	"Government":                  AxisLibertarianAuthoritarian,
	"Progressive vs. Traditional": AxisProgressiveConservative,
	"Social":                      AxisProgressiveConservative,
	"Culture":                     AxisProgressiveConservative,
	"Secularism vs. Religion":     AxisSecularReligious,
	"Religion":                    AxisSecularReligious,
	"Global vs. National":         AxisGlobalismNationalism,
	"Globalist vs. Nationalist":   AxisGlobalismNationalism,
	"Sovereignty":                 AxisGlobalismNationalism,
}

// AxisResolver canonicalizes free-text axis labels.
type AxisResolver struct {
	aliases map[string]Axis
	extra   []string
}

// NewAxisResolver builds a resolver with the built-in aliases plus extra,
// a map of alias label to any label the built-ins already resolve.
func NewAxisResolver(extra map[string]string) (*AxisResolver, error) {
	r := &AxisResolver{aliases: make(map[string]Axis, 64)}
	for _, a := range Axes {
		left, right := a.Left(), a.Right()
		r.add(a.Name(), a)
		r.add(left.Label()+" "+right.Label(), a)
		r.add(right.Label()+" "+left.Label(), a)
		r.add(left.Ident+right.Ident, a)
	}
	for label, a := range legacyAliases {
		r.add(label, a)
	}
	for alias, target := range extra {
		a, ok := r.Resolve(target)
		if !ok {
			return nil, fmt.Errorf("axis alias %q points at unknown axis %q", alias, target)
		}
		r.add(alias, a)
		if key := foldLabel(alias); key != "" {
			r.extra = append(r.extra, key+"="+a.Name())
		}
	}
	sort.Strings(r.extra)
	return r, nil
}

// Fingerprint digests the configured aliases. It is empty when only the
// built-in aliases are in use.
func (r *AxisResolver) Fingerprint() string {
	if r == nil || len(r.extra) == 0 {
		return ""
	}
	sum := sha256.Sum256([]byte(strings.Join(r.extra, "\n")))
	return hex.EncodeToString(sum[:])
}

// DefaultAxisResolver returns a resolver with only the built-in aliases.
func DefaultAxisResolver() *AxisResolver {
	r, _ := NewAxisResolver(nil)
	return r
}

func (r *AxisResolver) add(label string, a Axis) {
	if key := foldLabel(label); key != "" {
		r.aliases[key] = a
	}
}

// Resolve maps a label to its axis.
func (r *AxisResolver) Resolve(label string) (Axis, bool) {
	a, ok := r.aliases[foldLabel(label)]
	return a, ok
}

// fillers are dropped so "Equity vs. Free Market", "Equity / Free Market",
// "Equity versus Free-Market" and "Economic Axis" fold like their plain forms.
var fillers = map[string]bool{"vs": true, "versus": true, "v": true, "and": true, "axis": true}

func foldLabel(s string) string {
	s = norm.NFKC.String(s)
	s = strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return ' '
		}
		return r
	}, s)

	// camelCase words split before folding erases the case boundaries.
	var parts []string
	for _, w := range strings.Fields(s) {
		parts = append(parts, camelcase.Split(w)...)
	}

	// Casers are stateful, so each call gets its own.
	s = cases.Fold().String(strings.Join(parts, " "))
	kept := make([]string, 0, len(parts))
	for _, w := range strings.Fields(s) {
		if !fillers[w] {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}
