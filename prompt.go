package airdropscout

import (
	"fmt"
	"strings"
	"time"
)

// Language selects the language of the model's prose and of the fixed
// fallback summaries.
type Language string

const (
	LanguageEnglish   Language = "en"
	LanguageBulgarian Language = "bg"
)

// Messages holds the fixed user-facing strings for a language.
type Messages struct {
	// Name of the language as written in the prompt.
	PromptLanguage string
	// Summary used when the parsed payload carries no summary.
	NoInformation string
	// Summary used when the reply has no parsable JSON block.
	Unstructured string
	// Banner text shown for a hard connection fault.
	ServiceUnavailable string
}

var catalog = map[Language]Messages{
	LanguageEnglish: {
		PromptLanguage:     "English",
		NoInformation:      "No information found.",
		Unstructured:       "We could not structure the data automatically. Please try again.",
		ServiceUnavailable: "Something went wrong while analyzing the wallet. Please try again later.",
	},
	LanguageBulgarian: {
		PromptLanguage:     "Bulgarian",
		NoInformation:      "Няма намерена информация.",
		Unstructured:       "Не успяхме да структурираме данните автоматично. Моля, опитайте отново.",
		ServiceUnavailable: "Възникна грешка при анализа на портфейла. Моля, опитайте отново по-късно.",
	},
}

// MessagesFor returns the catalog for lang, falling back to English.
func MessagesFor(lang Language) Messages {
	if m, ok := catalog[lang]; ok {
		return m
	}
	return catalog[LanguageEnglish]
}

// ParseLanguage maps a config value such as "bg" or "Bulgarian" to a
// Language. Unknown values map to English.
func ParseLanguage(s string) Language {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bg", "bul", "bulgarian":
		return LanguageBulgarian
	default:
		return LanguageEnglish
	}
}

// BuildPrompt renders the instruction sent to the model for address.
// now anchors the years used in the suggested search queries.
func BuildPrompt(address string, walletType WalletType, lang Language, now time.Time) string {
	network := walletType.Label()
	proseLanguage := MessagesFor(lang).PromptLanguage
	year := now.Year()

	var b strings.Builder
	b.WriteString("Act as a senior cryptocurrency airdrop analyst.\n")
	fmt.Fprintf(&b, "I have a wallet address: %s which appears to be a %s wallet.\n\n", address, network)

	b.WriteString("Goal: Search for CURRENTLY ACTIVE or RECENTLY ANNOUNCED airdrops relevant to this network ecosystem.\n")
	b.WriteString("Do not hallucinate. Use Google Search to find real, live data. If you cannot find anything, return an empty list.\n\n")

	b.WriteString("Please perform the following:\n")
	fmt.Fprintf(&b, "1. Search for \"latest crypto airdrops %s %d %d\".\n", network, year, year+1)
	fmt.Fprintf(&b, "2. Search for \"active claims for %s users\".\n", network)
	b.WriteString("3. Identify 3-5 specific projects that are popular right now for potential eligibility or farming.\n")
	b.WriteString("4. Determine the likely category (Layer 2, DeFi, etc.).\n\n")

	b.WriteString("Output Format:\n")
	b.WriteString("Provide a JSON object inside ```json``` code blocks.\n")
	b.WriteString("The structure must be:\n")
	b.WriteString("{\n")
	fmt.Fprintf(&b, "  \"summary\": \"A brief overview (in %s) of the current airdrop climate for this wallet type.\",\n", proseLanguage)
	b.WriteString("  \"airdrops\": [\n")
	b.WriteString("    {\n")
	b.WriteString("      \"name\": \"Project Name\",\n")
	b.WriteString("      \"token\": \"Token Symbol (or TBD)\",\n")
	b.WriteString("      \"status\": \"Active\" or \"Upcoming\" or \"Rumor\",\n")
	b.WriteString("      \"likelihood\": \"High\" or \"Medium\" or \"Low\" (based on general user activity usually required),\n")
	fmt.Fprintf(&b, "      \"description\": \"Short eligibility criteria in %s (e.g. 'Active claim for users who bridged before a snapshot date').\",\n", proseLanguage)
	b.WriteString("      \"category\": \"L2\" or \"DeFi\" or \"NFT\" or \"Infrastructure\" or \"Other\",\n")
	b.WriteString("      \"actionUrl\": \"Official URL if found, otherwise empty string\"\n")
	b.WriteString("    }\n")
	b.WriteString("  ]\n")
	b.WriteString("}\n")

	return b.String()
}
