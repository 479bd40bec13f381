package domain

// Currency is a reference entity keyed by its 3-digit numeric ISO 4217 code.
type Currency struct {
	Code string
	Name string
}
