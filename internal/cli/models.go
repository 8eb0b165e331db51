package cli

import "strings"

// known-good model lists, bypassable with --model-override

var validGeminiModels = map[string]bool{
	"gemini-3-pro-preview":   true,
	"gemini-3-flash-preview": true,
	"gemini-2.5-pro":         true,
	"gemini-2.5-flash":       true,
	"gemini-2.5-flash-lite":  true,
}

var validOpenAIModels = map[string]bool{
	"o1":          true,
	"o3-mini":     true,
	"o1-pro":      true,
	"o3":          true,
	"gpt-5":       true,
	"gpt-5-nano":  true,
	"gpt-5-mini":  true,
	"gpt-5-pro":   true,
	"gpt-5.1":     true,
	"gpt-5.2":     true,
	"gpt-5.2-pro": true,
}

func isValidGeminiModel(model string) bool {
	return validGeminiModels[model]
}

func isValidOpenAIModel(model string) bool {
	return validOpenAIModels[model]
}

// The OpenAI audio API can transcribe in the source language or translate
// to English, nothing else.
func isValidOpenAITranscriptLanguage(lang string) bool {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case "", "native", "english", "en":
		return true
	}
	return false
}
