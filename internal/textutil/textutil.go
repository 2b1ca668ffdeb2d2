package textutil

import (
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// durationUnit pairs a time-unit keyword with its value in months.
type durationUnit struct {
	unit   string
	months float64
}

var durationUnits = []durationUnit{
	{"month", 1},
	{"year", 12},
	{"week", 0.25},
}

// ExtractDuration case-folds text and searches for a time-unit keyword
// ("month", "year", "week"); on the first hit it scans backward through
// the tokens preceding the unit for the last parseable number, inferring a
// comparison operator (">", "<", or "=") from an adjacent ">"/">="/"<"/"<="
// token or a leading ">"/"<" on the number token itself.
func ExtractDuration(text string) (operator string, months float64, ok bool) {
	lower := strings.ToLower(text)
	for _, u := range durationUnits {
		pos := strings.Index(lower, u.unit)
		if pos < 0 {
			continue
		}
		before := strings.TrimRight(lower[:pos], " ")
		parts := strings.Fields(before)
		for i := len(parts) - 1; i >= 0; i-- {
			numeric := filterDigitsAndDot(parts[i])
			val, err := strconv.ParseFloat(numeric, 64)
			if err != nil {
				continue
			}
			op := "="
			if i-1 >= 0 {
				switch parts[i-1] {
				case ">", ">=":
					op = ">"
				case "<", "<=":
					op = "<"
				default:
					op = operatorPrefix(parts[i])
				}
			} else {
				op = operatorPrefix(parts[i])
			}

			return op, val * u.months, true
		}
	}

	return "", 0, false
}

func operatorPrefix(token string) string {
	switch {
	case strings.HasPrefix(token, ">"):
		return ">"
	case strings.HasPrefix(token, "<"):
		return "<"
	default:
		return "="
	}
}

func filterDigitsAndDot(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			sb.WriteRune(r)
		}
	}

	return sb.String()
}

// ExtractNumericValue strips commas, then scans whitespace-delimited
// tokens keeping only characters in [0-9.KkMm], applying a K (10^3) or M
// (10^6) suffix multiplier, returning the first successful parse.
func ExtractNumericValue(text string) (float64, bool) {
	text = strings.ReplaceAll(text, ",", "")
	for _, word := range strings.Fields(text) {
		var sb strings.Builder
		for _, r := range word {
			switch {
			case r >= '0' && r <= '9', r == '.', r == 'K', r == 'k', r == 'M', r == 'm':
				sb.WriteRune(r)
			}
		}
		cleaned := sb.String()
		if cleaned == "" {
			continue
		}

		multiplier := 1.0
		numPart := cleaned
		switch cleaned[len(cleaned)-1] {
		case 'K', 'k':
			multiplier = 1e3
			numPart = cleaned[:len(cleaned)-1]
		case 'M', 'm':
			multiplier = 1e6
			numPart = cleaned[:len(cleaned)-1]
		}

		val, err := strconv.ParseFloat(numPart, 64)
		if err != nil {
			continue
		}

		return val * multiplier, true
	}

	return 0, false
}

var variableStopwords = map[string]bool{
	"true": true, "false": true, "and": true, "or": true, "not": true,
}

// ExtractVariables tokenises expr on identifier-boundary runs of
// [A-Za-z0-9_]. Inside parentheses every identifier is a variable;
// outside, an identifier is a variable only if it contains an underscore
// or is entirely lowercase (this filters out function names). An
// identifier immediately followed by "(" is itself treated as a function
// name and discarded. Results are deduplicated, sorted, and filtered to
// drop length<=1 entries and the logical stopwords {true,false,and,or,not}.
func ExtractVariables(expr string) []string {
	var (
		vars    []string
		current strings.Builder
		inParens bool
	)

	flushOutsideParens := func() {
		if current.Len() == 0 || inParens {
			current.Reset()
			return
		}
		w := current.String()
		if isLikelyVariable(w) {
			vars = append(vars, w)
		}
		current.Reset()
	}

	for _, ch := range expr {
		switch {
		case ch == '(':
			current.Reset() // preceding identifier, if any, is a function name
			inParens = true
		case ch == ')':
			if current.Len() > 0 && inParens {
				vars = append(vars, current.String())
			}
			current.Reset()
			inParens = false
		case ch == ',' || ch == ' ':
			if inParens {
				if current.Len() > 0 {
					vars = append(vars, current.String())
				}
				current.Reset()
			} else {
				flushOutsideParens()
			}
		case unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_':
			current.WriteRune(ch)
		default:
			flushOutsideParens()
		}
	}
	if current.Len() > 0 {
		w := current.String()
		if inParens || isLikelyVariable(w) {
			vars = append(vars, w)
		}
	}

	return dedupVariables(vars)
}

func isLikelyVariable(w string) bool {
	if strings.Contains(w, "_") {
		return true
	}
	for _, r := range w {
		if !(unicode.IsLower(r) || r == '_') {
			return false
		}
	}

	return true
}

func dedupVariables(vars []string) []string {
	sorted := append([]string(nil), vars...)
	sort.Strings(sorted)
	seen := make(map[string]bool, len(sorted))
	out := make([]string, 0, len(sorted))
	for _, v := range sorted {
		if seen[v] {
			continue
		}
		seen[v] = true
		if len(v) <= 1 || variableStopwords[v] {
			continue
		}
		out = append(out, v)
	}

	return out
}

// ParseImplication splits expr on the first occurrence of "→" or "->",
// trying "→" first, and returns the trimmed (lhs, rhs) pair. It returns
// ok=false if neither arrow is present, or if either side is empty after
// trimming for every arrow tried.
func ParseImplication(expr string) (lhs, rhs string, ok bool) {
	for _, arrow := range []string{"→", "->"} {
		idx := strings.Index(expr, arrow)
		if idx < 0 {
			continue
		}
		l := strings.TrimSpace(expr[:idx])
		r := strings.TrimSpace(expr[idx+len(arrow):])
		if l != "" && r != "" {
			return l, r, true
		}
	}

	return "", "", false
}
