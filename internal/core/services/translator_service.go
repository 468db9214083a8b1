package services

import (
	portssvc "github.com/finbooks/ifrs_backend/internal/core/ports/services"
)

// translatorService maps internal enumerated codes to display-safe labels
// using an injected configuration lookup. It performs no validation and has
// no side effects.
type translatorService struct {
	lookup portssvc.ConfigLookup
}

// NewTranslatorService creates a new TranslatorService.
func NewTranslatorService(lookup portssvc.ConfigLookup) portssvc.TranslatorSvcFacade {
	return &translatorService{lookup: lookup}
}

var _ portssvc.TranslatorSvcFacade = (*translatorService)(nil)

// Label returns the display label for a code, or the code itself when no
// label is configured.
func (s *translatorService) Label(labelDomain string, code string) string {
	if label, ok := s.lookup.Label(labelDomain, code); ok {
		return label
	}
	return code
}

// Labels returns display labels preserving the input order.
func (s *translatorService) Labels(labelDomain string, codes []string) []string {
	labels := make([]string, len(codes))
	for i, code := range codes {
		labels[i] = s.Label(labelDomain, code)
	}
	return labels
}
