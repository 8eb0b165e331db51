// Package lang maps short language codes to the per-service codes the
// pipeline's collaborators expect: transcription models, translation
// backends, and neural TTS voices each speak a slightly different dialect
// of BCP 47.
package lang

import (
	"fmt"
	"sort"
)

// Language describes one supported pipeline language.
type Language struct {
	Code      string // short code used on the CLI, e.g. "en"
	Name      string // display name
	Whisper   string // code passed to transcription
	Translate string // code passed to translation backends
	TTS       string // locale passed to speech synthesis
}

var languages = map[string]Language{
	"en": {Code: "en", Name: "English", Whisper: "en", Translate: "en", TTS: "en-US"},
	"zh": {Code: "zh", Name: "Chinese", Whisper: "zh", Translate: "zh-CN", TTS: "zh-CN"},
	"ja": {Code: "ja", Name: "Japanese", Whisper: "ja", Translate: "ja", TTS: "ja-JP"},
	"ko": {Code: "ko", Name: "Korean", Whisper: "ko", Translate: "ko", TTS: "ko-KR"},
	"es": {Code: "es", Name: "Spanish", Whisper: "es", Translate: "es", TTS: "es-ES"},
	"fr": {Code: "fr", Name: "French", Whisper: "fr", Translate: "fr", TTS: "fr-FR"},
	"de": {Code: "de", Name: "German", Whisper: "de", Translate: "de", TTS: "de-DE"},
	"ru": {Code: "ru", Name: "Russian", Whisper: "ru", Translate: "ru", TTS: "ru-RU"},
	"pt": {Code: "pt", Name: "Portuguese", Whisper: "pt", Translate: "pt", TTS: "pt-BR"},
	"ar": {Code: "ar", Name: "Arabic", Whisper: "ar", Translate: "ar", TTS: "ar-SA"},
	"it": {Code: "it", Name: "Italian", Whisper: "it", Translate: "it", TTS: "it-IT"},
	"nl": {Code: "nl", Name: "Dutch", Whisper: "nl", Translate: "nl", TTS: "nl-NL"},
	"pl": {Code: "pl", Name: "Polish", Whisper: "pl", Translate: "pl", TTS: "pl-PL"},
	"tr": {Code: "tr", Name: "Turkish", Whisper: "tr", Translate: "tr", TTS: "tr-TR"},
	"vi": {Code: "vi", Name: "Vietnamese", Whisper: "vi", Translate: "vi", TTS: "vi-VN"},
	"th": {Code: "th", Name: "Thai", Whisper: "th", Translate: "th", TTS: "th-TH"},
	"id": {Code: "id", Name: "Indonesian", Whisper: "id", Translate: "id", TTS: "id-ID"},
	"hi": {Code: "hi", Name: "Hindi", Whisper: "hi", Translate: "hi", TTS: "hi-IN"},
}

// Lookup resolves a short language code. Unknown codes are an error so a
// typo on the command line fails before any remote call is made.
func Lookup(code string) (Language, error) {
	if l, ok := languages[code]; ok {
		return l, nil
	}
	return Language{}, fmt.Errorf("unsupported language %q (use 'dubfab languages' to list)", code)
}

// All returns the supported languages sorted by code.
func All() []Language {
	out := make([]Language, 0, len(languages))
	for _, l := range languages {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
