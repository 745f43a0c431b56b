package ansi

import (
	"regexp"
	"strconv"
	"strings"
)

// sgrPattern matches a complete SGR sequence and captures its parameter
// string. The iCE transform works directly on this pattern rather than on
// the token stream: it only ever rewrites SGR sequences and must stay
// fail-soft per sequence, unlike the total classification in Tokenize.
var sgrPattern = regexp.MustCompile(`\x1b\[([0-9;]*)m`)

// blink is the SGR attribute historical BBS boards reused for iCE colors.
const blink = 5

// IceFix rewrites iCE color attributes: an SGR sequence carrying blink (5)
// gets every classic background parameter (40-47) promoted to its bright
// variant (100-107) and the blink parameter dropped. Sequences without
// blink, with an empty parameter list or with unparseable parameters are
// left untouched.
func IceFix(text string) string {
	return sgrPattern.ReplaceAllStringFunc(text, func(seq string) string {
		raw := seq[2 : len(seq)-1]
		if raw == "" {
			return seq
		}

		params, ok := parseParams(raw)
		if !ok {
			return seq
		}
		if !hasParam(params, blink) {
			return seq
		}

		out := make([]string, 0, len(params))
		for _, p := range params {
			switch {
			case p >= 40 && p <= 47:
				out = append(out, strconv.Itoa(p+60))
			case p == blink:
				// dropped
			default:
				out = append(out, strconv.Itoa(p))
			}
		}
		return "\x1b[" + strings.Join(out, ";") + "m"
	})
}

// parseParams splits a ;-delimited SGR parameter string into integers,
// skipping empty fields. It reports false when any field fails to parse,
// in which case the caller must leave the sequence unmodified.
func parseParams(raw string) ([]int, bool) {
	fields := strings.Split(raw, ";")
	params := make([]int, 0, len(fields))
	for _, f := range fields {
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, false
		}
		params = append(params, n)
	}
	return params, true
}

func hasParam(params []int, want int) bool {
	for _, p := range params {
		if p == want {
			return true
		}
	}
	return false
}
