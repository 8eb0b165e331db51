package lang

// Voice is a neural TTS voice for one locale.
type Voice struct {
	Name        string
	Description string
}

var voices = map[string][]Voice{
	"zh-CN": {
		{"zh-CN-XiaoxiaoNeural", "Xiaoxiao (female, warm)"},
		{"zh-CN-XiaoyiNeural", "Xiaoyi (female, lively)"},
		{"zh-CN-YunxiNeural", "Yunxi (male, young)"},
		{"zh-CN-YunjianNeural", "Yunjian (male, mature)"},
		{"zh-CN-YunyangNeural", "Yunyang (male, news)"},
	},
	"en-US": {
		{"en-US-JennyNeural", "Jenny (female, friendly)"},
		{"en-US-GuyNeural", "Guy (male, casual)"},
		{"en-US-AriaNeural", "Aria (female, professional)"},
		{"en-US-DavisNeural", "Davis (male, calm)"},
	},
	"ja-JP": {
		{"ja-JP-NanamiNeural", "Nanami (female)"},
		{"ja-JP-KeitaNeural", "Keita (male)"},
	},
	"ko-KR": {
		{"ko-KR-SunHiNeural", "SunHi (female)"},
		{"ko-KR-InJoonNeural", "InJoon (male)"},
	},
	"es-ES": {
		{"es-ES-ElviraNeural", "Elvira (female)"},
		{"es-ES-AlvaroNeural", "Alvaro (male)"},
	},
	"fr-FR": {
		{"fr-FR-DeniseNeural", "Denise (female)"},
		{"fr-FR-HenriNeural", "Henri (male)"},
	},
	"de-DE": {
		{"de-DE-KatjaNeural", "Katja (female)"},
		{"de-DE-ConradNeural", "Conrad (male)"},
	},
	"ru-RU": {
		{"ru-RU-SvetlanaNeural", "Svetlana (female)"},
		{"ru-RU-DmitryNeural", "Dmitry (male)"},
	},
	"pt-BR": {
		{"pt-BR-FranciscaNeural", "Francisca (female)"},
		{"pt-BR-AntonioNeural", "Antonio (male)"},
	},
	"ar-SA": {
		{"ar-SA-ZariyahNeural", "Zariyah (female)"},
		{"ar-SA-HamedNeural", "Hamed (male)"},
	},
}

var defaultVoices = map[string]string{
	"zh-CN": "zh-CN-XiaoxiaoNeural",
	"en-US": "en-US-JennyNeural",
	"ja-JP": "ja-JP-NanamiNeural",
	"ko-KR": "ko-KR-SunHiNeural",
	"es-ES": "es-ES-ElviraNeural",
	"fr-FR": "fr-FR-DeniseNeural",
	"de-DE": "de-DE-KatjaNeural",
	"ru-RU": "ru-RU-SvetlanaNeural",
	"pt-BR": "pt-BR-FranciscaNeural",
	"ar-SA": "ar-SA-ZariyahNeural",
}

// VoicesFor lists the known voices for a TTS locale. Locales without a
// curated list fall back to the English voices.
func VoicesFor(locale string) []Voice {
	if v, ok := voices[locale]; ok {
		return v
	}
	return voices["en-US"]
}

// DefaultVoice returns the default voice for a TTS locale.
func DefaultVoice(locale string) string {
	if v, ok := defaultVoices[locale]; ok {
		return v
	}
	return "en-US-JennyNeural"
}
