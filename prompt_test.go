package airdropscout_test

import (
	"strings"
	"testing"
	"time"

	"github.com/krastod/airdropscout"
)

func TestBuildPrompt(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	prompt := airdropscout.BuildPrompt(solanaAddress, airdropscout.WalletTypeSolana, airdropscout.LanguageEnglish, now)

	wants := []string{
		"I have a wallet address: " + solanaAddress + " which appears to be a Solana wallet.",
		"\"latest crypto airdrops Solana 2025 2026\"",
		"\"active claims for Solana users\"",
		"Do not hallucinate.",
		"```json```",
		"\"summary\": \"A brief overview (in English)",
		"\"status\": \"Active\" or \"Upcoming\" or \"Rumor\"",
		"\"likelihood\": \"High\" or \"Medium\" or \"Low\"",
		"\"category\": \"L2\" or \"DeFi\" or \"NFT\" or \"Infrastructure\" or \"Other\"",
		"\"actionUrl\": \"Official URL if found, otherwise empty string\"",
	}
	for _, want := range wants {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q\n%s", want, prompt)
		}
	}
}

func TestParseLanguage(t *testing.T) {
	cases := map[string]airdropscout.Language{
		"bg":         airdropscout.LanguageBulgarian,
		" Bulgarian": airdropscout.LanguageBulgarian,
		"en":         airdropscout.LanguageEnglish,
		"":           airdropscout.LanguageEnglish,
		"fr":         airdropscout.LanguageEnglish,
	}
	for in, want := range cases {
		if got := airdropscout.ParseLanguage(in); got != want {
			t.Errorf("ParseLanguage(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestMessagesForFallsBackToEnglish(t *testing.T) {
	if got, want := airdropscout.MessagesFor("xx"), airdropscout.MessagesFor(airdropscout.LanguageEnglish); got != want {
		t.Errorf("MessagesFor(xx) = %+v, want English catalog", got)
	}
}
