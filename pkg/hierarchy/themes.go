package hierarchy

// Theme names a topical bucket and the trigger substrings that pull
// keywords into it. Themes are applied in order, so earlier themes claim
// contested keywords.
type Theme struct {
	Name     string   `yaml:"name"`
	Triggers []string `yaml:"triggers"`
}

// DefaultThemes is the built-in theme list. Deployments tune it through
// configuration.
var DefaultThemes = []Theme{
	{Name: "ai_related", Triggers: []string{"ai", "chatbot", "automation", "intelligence", "machine"}},
	{Name: "real_estate", Triggers: []string{"real", "estate", "property", "housing", "investment"}},
	{Name: "social_media", Triggers: []string{"facebook", "whatsapp", "social", "messaging", "chat"}},
	{Name: "business", Triggers: []string{"business", "industry", "service", "solution", "client"}},
	{Name: "technology", Triggers: []string{"technology", "tech", "digital", "online", "platform"}},
}
