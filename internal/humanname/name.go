// Package humanname splits a free-text personal name into its parts.
//
// Display names on archival records come as a single string in either
// "First Middle Last" or "Last, First Middle" order, sometimes with a
// generational or academic suffix. The splitter here covers those forms
// plus lowercase surname particles ("van", "von der", ...), which attach
// to the family name rather than the middle name.
package humanname

import "strings"

// Name holds the parsed parts of a personal name. Any part except Last
// may be empty.
type Name struct {
	First  string
	Middle string
	Last   string
	Suffix string
}

// suffixes are tokens treated as a name suffix when they appear at the
// end of a name (or after a second comma).
var suffixes = map[string]bool{
	"jr":   true,
	"jr.":  true,
	"sr":   true,
	"sr.":  true,
	"ii":   true,
	"iii":  true,
	"iv":   true,
	"v":    true,
	"phd":  true,
	"ph.d": true,
	"md":   true,
	"m.d":  true,
}

// particles are lowercase tokens that belong to the family name.
var particles = map[string]bool{
	"van": true,
	"von": true,
	"der": true,
	"den": true,
	"de":  true,
	"del": true,
	"des": true,
	"di":  true,
	"da":  true,
	"du":  true,
	"la":  true,
	"le":  true,
	"ter": true,
	"ten": true,
}

// Parse splits a display name into first/middle/last/suffix parts.
//
// Supported forms:
//   - "Jane Public"            → first="Jane", last="Public"
//   - "Jane Q. Public"         → first="Jane", middle="Q.", last="Public"
//   - "Public, Jane Q."        → same as above (comma = family-name-first)
//   - "Martin Luther King Jr." → suffix="Jr."
//   - "Ludwig van Beethoven"   → last="van Beethoven"
//
// An empty or whitespace-only input yields a zero Name.
func Parse(input string) Name {
	input = strings.TrimSpace(input)
	if input == "" {
		return Name{}
	}

	// Family-name-first form: "Last, First Middle[, Suffix]"
	if idx := strings.Index(input, ","); idx > 0 {
		last := strings.TrimSpace(input[:idx])
		rest := strings.TrimSpace(input[idx+1:])

		var suffix string
		if j := strings.Index(rest, ","); j >= 0 {
			suffix = strings.TrimSpace(rest[j+1:])
			rest = strings.TrimSpace(rest[:j])
		}

		// Everything after the comma is given names: first token is the
		// first name, the rest are middle names.
		n := Name{Last: last, Suffix: suffix}
		if given := strings.Fields(rest); len(given) > 0 {
			n.First = given[0]
			n.Middle = strings.Join(given[1:], " ")
		}
		return n
	}

	tokens := strings.Fields(input)

	// Peel suffix tokens off the end, keeping at least one token for the
	// family name.
	var suffixTokens []string
	for len(tokens) > 1 && suffixes[strings.ToLower(tokens[len(tokens)-1])] {
		suffixTokens = append([]string{tokens[len(tokens)-1]}, suffixTokens...)
		tokens = tokens[:len(tokens)-1]
	}

	return fromTokens(tokens, suffixTokens)
}

// fromTokens assigns first/middle/last from given-name-first tokens.
// Surname particles preceding the final token fold into the family name.
func fromTokens(tokens, suffixTokens []string) Name {
	var n Name
	n.Suffix = strings.Join(suffixTokens, " ")

	switch len(tokens) {
	case 0:
		return n
	case 1:
		n.Last = tokens[0]
		return n
	}

	// Family name is the final token plus any run of particles before it.
	start := len(tokens) - 1
	for start > 1 && particles[strings.ToLower(tokens[start-1])] {
		start--
	}
	n.Last = strings.Join(tokens[start:], " ")

	n.First = tokens[0]
	if start > 1 {
		n.Middle = strings.Join(tokens[1:start], " ")
	}
	return n
}
