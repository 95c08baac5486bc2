package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.German

	// Header
	message.SetString(lang, "icons.title", "ZenFlow App-Icons")
	message.SetString(lang, "icons.design", "Design: %s")
	message.SetString(lang, "icons.output", "Ausgabe: %s")

	// Per-file status
	message.SetString(lang, "icons.ok", "ok      %-25s (%s)")
	message.SetString(lang, "icons.ok_manifest", "ok      %s")
	message.SetString(lang, "icons.fail", "FEHLER  %s: %v")
	message.SetString(lang, "icons.plan", "würde %s schreiben (%s)")
	message.SetString(lang, "icons.plan_manifest", "würde %s schreiben")

	// Summary
	message.SetString(lang, "icons.success", "Erfolgreich: %d/%d Icons")
	message.SetString(lang, "icons.failed", "Fehlgeschlagen: %d")
	message.SetString(lang, "icons.saved", "Gespeichert in: %s")
}
