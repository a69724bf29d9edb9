package airdropscout

import (
	"bytes"
	"encoding/json"
)

// WalletType is the network family guessed for an address.
type WalletType string

const (
	WalletTypeEVM     WalletType = "EVM"
	WalletTypeSolana  WalletType = "SOLANA"
	WalletTypeBitcoin WalletType = "BITCOIN"
	WalletTypeCosmos  WalletType = "COSMOS"
	WalletTypeUnknown WalletType = "UNKNOWN"
)

// Label returns the human readable network name used in prompts and output.
func (w WalletType) Label() string {
	switch w {
	case WalletTypeEVM:
		return "EVM (Ethereum/L2s)"
	case WalletTypeSolana:
		return "Solana"
	case WalletTypeBitcoin:
		return "Bitcoin"
	case WalletTypeCosmos:
		return "Cosmos"
	default:
		return "Unknown"
	}
}

// AirdropStatus is the lifecycle stage reported by the model.
type AirdropStatus string

const (
	AirdropStatusActive   AirdropStatus = "Active"
	AirdropStatusUpcoming AirdropStatus = "Upcoming"
	AirdropStatusExpired  AirdropStatus = "Expired"
	AirdropStatusRumor    AirdropStatus = "Rumor"
)

// Likelihood is the model's estimate of eligibility for typical users.
type Likelihood string

const (
	LikelihoodHigh   Likelihood = "High"
	LikelihoodMedium Likelihood = "Medium"
	LikelihoodLow    Likelihood = "Low"
)

// Category groups airdrop projects for the breakdown chart.
type Category string

const (
	CategoryL2             Category = "L2"
	CategoryDeFi           Category = "DeFi"
	CategoryNFT            Category = "NFT"
	CategoryInfrastructure Category = "Infrastructure"
	CategoryOther          Category = "Other"
)

// AirdropItem is one opportunity as described by the model.
// Values are not validated: enum fields may hold anything the model wrote,
// and any field may be empty.
type AirdropItem struct {
	Name        string        `json:"name"`
	Token       string        `json:"token"`
	Status      AirdropStatus `json:"status"`
	Likelihood  Likelihood    `json:"likelihood"`
	Description string        `json:"description"`
	Category    Category      `json:"category"`
	ActionURL   string        `json:"actionUrl,omitempty"`
}

// UnmarshalJSON decodes an item leniently. Fields whose JSON value is not a
// string are left empty instead of failing the whole payload.
func (a *AirdropItem) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		// A non-object entry (null, number, string) yields an empty item.
		*a = AirdropItem{}
		return nil
	}

	*a = AirdropItem{
		Name:        looseString(raw["name"]),
		Token:       looseString(raw["token"]),
		Status:      AirdropStatus(looseString(raw["status"])),
		Likelihood:  Likelihood(looseString(raw["likelihood"])),
		Description: looseString(raw["description"]),
		Category:    Category(looseString(raw["category"])),
		ActionURL:   looseString(raw["actionUrl"]),
	}
	return nil
}

func looseString(raw json.RawMessage) string {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// SearchResult is the outcome of a single analysis. It is built once and
// not modified afterwards.
type SearchResult struct {
	WalletType WalletType    `json:"walletType"`
	Airdrops   []AirdropItem `json:"airdrops"`
	Summary    string        `json:"summary"`
	// Citation URLs in the order the model returned them. Not deduplicated.
	GroundingLinks []string `json:"groundingLinks"`
}

// CategoryCount is one slice of the category breakdown chart.
type CategoryCount struct {
	Name  Category `json:"name"`
	Value int      `json:"value"`
}

// Usage reports token accounting for a generation, when the provider sends it.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// Citation is a web source attached to a generation by search grounding.
type Citation struct {
	URI   string `json:"uri,omitempty"`
	Title string `json:"title,omitempty"`
}

// Generation is the raw answer of a generator.
type Generation struct {
	Text      string     `json:"text"`
	Citations []Citation `json:"citations,omitempty"`
	Usage     *Usage     `json:"usage,omitempty"`
}

// GenerateOptions configures a single generate call.
type GenerateOptions struct {
	// Sampling temperature. Nil leaves the provider default.
	Temperature *float64 `json:"temperature,omitempty"`
	// Ask the provider to ground the answer with live web search.
	SearchGrounding bool `json:"search_grounding,omitempty"`
}
