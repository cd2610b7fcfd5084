package llm

import (
	"context"
	"testing"
)

func TestNewGenerator(t *testing.T) {
	tests := []struct {
		name      string
		opts      Options
		wantName  string
		wantError bool
	}{
		{name: "default provider", opts: Options{APIKey: "k"}, wantName: ProviderAnthropic},
		{name: "anthropic", opts: Options{Provider: ProviderAnthropic, APIKey: "k"}, wantName: ProviderAnthropic},
		{name: "openai", opts: Options{Provider: ProviderOpenAI, APIKey: "k"}, wantName: ProviderOpenAI},
		{name: "missing key", opts: Options{Provider: ProviderAnthropic}, wantError: true},
		{name: "unknown provider", opts: Options{Provider: "llama", APIKey: "k"}, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			generator, err := NewGenerator(context.Background(), tt.opts)
			if tt.wantError {
				if err == nil {
					t.Error("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			defer generator.Close()

			if generator.Name() != tt.wantName {
				t.Errorf("Expected provider %s, got %s", tt.wantName, generator.Name())
			}
		})
	}
}

func TestNewGeminiClientRequiresKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), "", "", 0)
	if err == nil {
		t.Error("Expected error for missing Gemini API key, got nil")
	}
}
