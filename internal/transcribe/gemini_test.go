package transcribe

import (
	"context"
	"testing"
)

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain JSON untouched",
			input: `[{"start": 0, "end": 1, "text": "hi"}]`,
			want:  `[{"start": 0, "end": 1, "text": "hi"}]`,
		},
		{
			name:  "json fence stripped",
			input: "```json\n[{\"start\": 0}]\n```",
			want:  `[{"start": 0}]`,
		},
		{
			name:  "bare fence stripped",
			input: "```\n[]\n```",
			want:  `[]`,
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  \n[]\n  ",
			want:  `[]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanJSONResponse(tt.input); got != tt.want {
				t.Errorf("cleanJSONResponse(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncateString(t *testing.T) {
	if got := truncateString("short", 10); got != "short" {
		t.Errorf("truncateString(short, 10) = %q", got)
	}
	if got := truncateString("0123456789abc", 10); got != "0123456789..." {
		t.Errorf("truncateString long = %q", got)
	}
}

func TestFactory(t *testing.T) {
	ctx := context.Background()

	if _, err := Factory(ctx, ProviderWhisper, "", Options{}); err != nil {
		t.Errorf("whisper provider should not need an API key: %v", err)
	}
	if _, err := Factory(ctx, ProviderOpenAI, "", Options{}); err == nil {
		t.Error("openai provider without API key should fail")
	}
	if _, err := Factory(ctx, ProviderGemini, "", Options{}); err == nil {
		t.Error("gemini provider without API key should fail")
	}
	if _, err := Factory(ctx, Provider("bogus"), "key", Options{}); err == nil {
		t.Error("unknown provider should fail")
	}
}
