// Package translate localizes the diagnostics of the hackvm tools.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var printer = newPrinter()

// newPrinter picks a message printer for the given languages, falling back
// to the user locale and then en-US.
func newPrinter(langs ...string) *message.Printer {
	if len(langs) == 0 {
		locales, err := locale.GetLocales()
		if err != nil {
			log.Printf("hackvm: locale: %v", err)
		}
		langs = locales
	}

	if len(langs) == 0 {
		langs = []string{"en-US"}
	}

	return message.NewPrinter(message.MatchLanguage(langs...))
}

// SetLanguage overrides the detected locale. Not safe to call while other
// goroutines are formatting messages. Messages already formatted, such as
// sentinel errors created at package init, keep their original language.
func SetLanguage(langs ...string) {
	printer = newPrinter(langs...)
}

// From translates an en-US Sprintf() format and its arguments to a string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
