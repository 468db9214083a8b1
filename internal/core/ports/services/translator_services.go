package services

// ConfigLookup resolves a display label for an enumerated code within a
// label domain (e.g. "balances", "transactions", "accounts"). Implemented
// by the configuration layer; the core never reads configuration directly.
type ConfigLookup interface {
	// Label returns the configured label for a code and whether one exists.
	Label(labelDomain string, code string) (string, bool)
}

// TranslatorSvcFacade maps internal enumerated codes to display-safe labels.
type TranslatorSvcFacade interface {
	// Label returns the display label for a single code. Unknown codes are
	// returned as-is.
	Label(labelDomain string, code string) string

	// Labels returns display labels preserving the input order.
	Labels(labelDomain string, codes []string) []string
}
