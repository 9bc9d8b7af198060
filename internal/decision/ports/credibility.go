package ports

// CredibilityPort maps an optional source domain to a prior credibility in
// [0,1]. The empty string means no domain was found.
type CredibilityPort interface {
	Score(domain string) float64
}

// DomainExtractor finds the most plausible source domain in text.
type DomainExtractor func(text string) (domain string, ok bool)
