package tts

import (
	"context"
	"fmt"
)

// interface for speech synthesis
type Synthesizer interface {
	Synthesize(ctx context.Context, text string, outputPath string) error
}

// speech synthesis provider
type Provider string

const (
	ProviderEdge   Provider = "edge"
	ProviderOpenAI Provider = "openai"
)

// synthesis options
type Options struct {
	Voice string
	Rate  int // speaking rate adjustment in percent, -50 to +100
	Pitch int // pitch adjustment in Hz, -50 to +50
	Model string
}

// creates synthesizer based on provider
func Factory(provider Provider, apiKey string, opts Options) (Synthesizer, error) {
	switch provider {
	case ProviderEdge:
		return NewEdgeSynthesizer(opts), nil
	case ProviderOpenAI:
		return NewOpenAISynthesizer(apiKey, opts)
	default:
		return nil, fmt.Errorf("unsupported TTS provider: %s", provider)
	}
}
