package source

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// NeutralCredibility is returned whenever nothing is known about a domain.
const NeutralCredibility = 0.5

// Lookup scores domains against a reputation table.
type Lookup struct {
	table *Table
}

// NewLookup builds a Lookup over table. A nil table behaves as empty.
func NewLookup(table *Table) *Lookup {
	if table == nil {
		table = EmptyTable()
	}
	return &Lookup{table: table}
}

// Score returns the credibility of domain in [0,1]. The empty string means
// no domain was found and scores neutral. The base domain is consulted before
// the full domain; any value that cannot be read as a number scores neutral.
func (l *Lookup) Score(domain string) float64 {
	domain = strings.ToLower(strings.TrimSpace(domain))
	if domain == "" {
		return NeutralCredibility
	}

	raw, ok := l.table.get(BaseDomain(domain))
	if !ok {
		raw, ok = l.table.get(domain)
	}
	if !ok {
		return NeutralCredibility
	}

	v, ok := coerce(raw)
	if !ok {
		return NeutralCredibility
	}
	return clamp(v)
}

// BaseDomain returns the last two dot-separated labels of domain, or domain
// itself when it has fewer than two labels. Multi-part public suffixes are not
// special-cased: mail.bbc.co.uk → co.uk.
func BaseDomain(domain string) string {
	parts := strings.Split(domain, ".")
	if len(parts) < 2 {
		return domain
	}
	return strings.Join(parts[len(parts)-2:], ".")
}

func coerce(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func clamp(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return NeutralCredibility
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
