package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.MustParse("pt-BR")

	// Header
	message.SetString(lang, "icons.title", "Ícones do app ZenFlow")
	message.SetString(lang, "icons.design", "Design: %s")
	message.SetString(lang, "icons.output", "Saída: %s")

	// Per-file status
	message.SetString(lang, "icons.ok", "ok     %-25s (%s)")
	message.SetString(lang, "icons.ok_manifest", "ok     %s")
	message.SetString(lang, "icons.fail", "FALHA  %s: %v")
	message.SetString(lang, "icons.plan", "gravaria %s (%s)")
	message.SetString(lang, "icons.plan_manifest", "gravaria %s")

	// Summary
	message.SetString(lang, "icons.success", "Sucesso: %d/%d ícones")
	message.SetString(lang, "icons.failed", "Falhas: %d")
	message.SetString(lang, "icons.saved", "Salvo em: %s")
}
