package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Header
	message.SetString(lang, "icons.title", "ZenFlow app icons")
	message.SetString(lang, "icons.design", "Design: %s")
	message.SetString(lang, "icons.output", "Output: %s")

	// Per-file status
	message.SetString(lang, "icons.ok", "ok    %-25s (%s)")
	message.SetString(lang, "icons.ok_manifest", "ok    %s")
	message.SetString(lang, "icons.fail", "FAIL  %s: %v")
	message.SetString(lang, "icons.plan", "would write %s (%s)")
	message.SetString(lang, "icons.plan_manifest", "would write %s")

	// Summary
	message.SetString(lang, "icons.success", "Success: %d/%d icons")
	message.SetString(lang, "icons.failed", "Failed: %d")
	message.SetString(lang, "icons.saved", "Saved to: %s")
}
