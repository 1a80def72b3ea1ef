package ports

// Translator resolves UI label keys for the active locale. Implementations
// always return a string; an unknown key resolves to the key itself.
type Translator interface {
	Translate(key string) string
	Locale() string
}
