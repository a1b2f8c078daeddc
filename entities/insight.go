package entities

// Insight is a triggered pattern-level observation about irrigation behavior
// over a time window. Derived only; never persisted.
type Insight struct {
	RuleID   string  `json:"rule_id"`  // FREQ_001|FREQ_002|DUR_001|CONFLICT_001|RESPONSE_001
	Severity string  `json:"severity"` // info|warning|critical
	Scope    string  `json:"scope"`
	Message  string  `json:"message"`
	Evidence float64 `json:"evidence"`

	// Articles matched to the insight topic for the response payload.
	RelatedArticles []ArticleRef `json:"related_articles,omitempty"`
}

type ArticleRef struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}
