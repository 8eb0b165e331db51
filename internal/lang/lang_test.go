package lang

import "testing"

func TestLookup(t *testing.T) {
	tests := []struct {
		code      string
		translate string
		tts       string
	}{
		{"en", "en", "en-US"},
		{"zh", "zh-CN", "zh-CN"},
		{"pt", "pt", "pt-BR"},
		{"hi", "hi", "hi-IN"},
	}

	for _, tt := range tests {
		l, err := Lookup(tt.code)
		if err != nil {
			t.Errorf("Lookup(%q) failed: %v", tt.code, err)
			continue
		}
		if l.Translate != tt.translate {
			t.Errorf("Lookup(%q).Translate = %q, want %q", tt.code, l.Translate, tt.translate)
		}
		if l.TTS != tt.tts {
			t.Errorf("Lookup(%q).TTS = %q, want %q", tt.code, l.TTS, tt.tts)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup("xx"); err == nil {
		t.Error("expected error for unknown language code")
	}
}

func TestAllSorted(t *testing.T) {
	all := All()
	if len(all) != len(languages) {
		t.Fatalf("All() returned %d languages, want %d", len(all), len(languages))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Code >= all[i].Code {
			t.Errorf("All() not sorted at %d: %q >= %q", i, all[i-1].Code, all[i].Code)
		}
	}
}

func TestDefaultVoiceMatchesVoiceList(t *testing.T) {
	for locale := range voices {
		def := DefaultVoice(locale)
		found := false
		for _, v := range VoicesFor(locale) {
			if v.Name == def {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("default voice %q for %s not in its voice list", def, locale)
		}
	}
}

func TestVoiceFallback(t *testing.T) {
	if got := DefaultVoice("xx-XX"); got != "en-US-JennyNeural" {
		t.Errorf("fallback default voice = %q", got)
	}
	if got := VoicesFor("xx-XX"); len(got) == 0 || got[0].Name != "en-US-JennyNeural" {
		t.Errorf("fallback voice list unexpected: %+v", got)
	}
}
