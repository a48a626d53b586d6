// Package i18n renders human-readable messages for violation codes.
package i18n

import (
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Translator retrieves localized messages for violation codes.
type Translator interface {
	Message(code string) string
}

// Translations maps a violation code to its text per language.
type Translations map[string]map[language.Tag]string

var builtin = Translations{
	"required":       {language.English: "required field missing", language.French: "champ obligatoire manquant"},
	"invalid_type":   {language.English: "invalid type", language.French: "type invalide"},
	"invalid_enum":   {language.English: "value not in the allowed list", language.French: "valeur hors de la liste autorisée"},
	"too_small":      {language.English: "value is below the minimum", language.French: "valeur inférieure au minimum"},
	"not_integer":    {language.English: "value must be a whole number", language.French: "la valeur doit être un entier"},
	"too_short":      {language.English: "too few items", language.French: "pas assez d'éléments"},
	"too_long":       {language.English: "too long", language.French: "trop long"},
	"invalid_format": {language.English: "invalid format", language.French: "format invalide"},
	"unknown_key":    {language.English: "unknown key", language.French: "clé inconnue"},
	"duplicate_key":  {language.English: "duplicate key", language.French: "clé dupliquée"},
	"parse_error":    {language.English: "parse error", language.French: "erreur d'analyse"},
	"read_only":      {language.English: "read-only field changed", language.French: "champ en lecture seule modifié"},
	"write_once":     {language.English: "field can only be set once", language.French: "le champ ne peut être défini qu'une fois"},
}

// CatalogFromTranslations builds an x/text catalog from t.
func CatalogFromTranslations(t Translations) catalog.Catalog {
	ctlg := catalog.NewBuilder(catalog.Fallback(language.English))
	for code, byLang := range t {
		for lang, text := range byLang {
			if err := ctlg.SetString(lang, code, text); err != nil {
				panic(err)
			}
		}
	}
	return ctlg
}

// catalogTranslator is the built-in catalog-backed Translator.
type catalogTranslator struct{ p *message.Printer }

// NewTranslator returns a Translator for lang backed by the given catalog.
// Unknown codes render as the code itself.
func NewTranslator(lang language.Tag, c catalog.Catalog) Translator {
	return catalogTranslator{p: message.NewPrinter(lang, message.Catalog(c))}
}

func (t catalogTranslator) Message(code string) string { return t.p.Sprintf(code) }

var (
	mu                sync.RWMutex
	builtinCatalog    = CatalogFromTranslations(builtin)
	currentTranslator = NewTranslator(language.English, builtinCatalog)
)

// SetLanguage switches the built-in Translator language. Unsupported or
// malformed tags fall back to English.
func SetLanguage(lang string) {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	supported := builtinCatalog.Languages()
	_, idx, conf := builtinCatalog.Matcher().Match(tag)
	if conf == language.No || idx < 0 || idx >= len(supported) {
		tag = language.English
	} else {
		tag = supported[idx]
	}
	tr := NewTranslator(tag, builtinCatalog)
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// SetTranslator replaces the Translator implementation. nil restores the
// English built-in.
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = NewTranslator(language.English, builtinCatalog)
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches the message for code using the current Translator.
func T(code string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code)
}
