package airdropscout

import "strings"

// walletRule matches an address to a wallet type.
type walletRule struct {
	walletType WalletType
	match      func(address string) bool
}

// walletRules are evaluated in order; the first match wins. New rules must be
// inserted at the position that keeps existing precedence intact.
var walletRules = []walletRule{
	{WalletTypeEVM, func(a string) bool {
		return strings.HasPrefix(a, "0x") && len(a) == 42
	}},
	{WalletTypeSolana, func(a string) bool {
		return len(a) > 30 && len(a) < 45 && !strings.HasPrefix(a, "0x")
	}},
	{WalletTypeBitcoin, func(a string) bool {
		return strings.HasPrefix(a, "bc1") || strings.HasPrefix(a, "1") || strings.HasPrefix(a, "3")
	}},
	{WalletTypeCosmos, func(a string) bool {
		return strings.HasPrefix(a, "cosmos")
	}},
}

// Classify guesses the network family of an address from its prefix and
// length. It never inspects the character set or checksum, so it is a
// heuristic: any 31 to 44 character string without a 0x prefix is reported as
// Solana, including many Bitcoin and Cosmos addresses.
func Classify(address string) WalletType {
	for _, rule := range walletRules {
		if rule.match(address) {
			return rule.walletType
		}
	}
	return WalletTypeUnknown
}
