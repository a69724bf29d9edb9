// Package render formats analysis results for a terminal.
package render

import (
	"bytes"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/krastod/airdropscout"
)

const maxBarWidth = 30

type labels struct {
	AnalysisFor string
	Network     string
	Breakdown   string
	Found       string
	Empty       string
	Sources     string
	Likelihood  string
	Check       string
}

var labelCatalog = map[airdropscout.Language]labels{
	airdropscout.LanguageEnglish: {
		AnalysisFor: "Analysis for",
		Network:     "Network",
		Breakdown:   "Breakdown by category",
		Found:       "Opportunities found",
		Empty:       "No active public airdrops were found for this wallet type right now.",
		Sources:     "Sources (Google Search)",
		Likelihood:  "Likelihood",
		Check:       "Check",
	},
	airdropscout.LanguageBulgarian: {
		AnalysisFor: "Анализ за",
		Network:     "Мрежа",
		Breakdown:   "Разпределение по категория",
		Found:       "Намерени Възможности",
		Empty:       "Не са намерени активни публични аердропи за този тип портфейл в момента.",
		Sources:     "Източници на информация (Google Search)",
		Likelihood:  "Вероятност",
		Check:       "Провери",
	},
}

type options struct {
	language airdropscout.Language
}

type Option func(*options)

// WithLanguage selects the heading language. Defaults to English.
func WithLanguage(lang airdropscout.Language) Option {
	return func(o *options) {
		o.language = lang
	}
}

// ShortAddress returns the first six and last four characters of address
// joined by an ellipsis. Addresses of ten characters or fewer are returned
// unchanged.
func ShortAddress(address string) string {
	if len(address) <= 10 {
		return address
	}
	return address[:6] + "..." + address[len(address)-4:]
}

// Hostname returns the host of a grounding link, or the link itself when it
// does not parse as an absolute URL.
func Hostname(link string) string {
	u, err := url.Parse(link)
	if err != nil || u.Hostname() == "" {
		return link
	}
	return u.Hostname()
}

// Text writes a plain-text report of result to w.
func Text(w io.Writer, address string, result *airdropscout.SearchResult, opts ...Option) error {
	o := options{language: airdropscout.LanguageEnglish}
	for _, opt := range opts {
		opt(&o)
	}
	l, ok := labelCatalog[o.language]
	if !ok {
		l = labelCatalog[airdropscout.LanguageEnglish]
	}
	if result == nil {
		result = &airdropscout.SearchResult{WalletType: airdropscout.WalletTypeUnknown}
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s: %s\n", l.AnalysisFor, ShortAddress(address))
	fmt.Fprintf(&buf, "%s: %s\n", l.Network, result.WalletType.Label())
	if result.Summary != "" {
		fmt.Fprintf(&buf, "\n  \"%s\"\n", result.Summary)
	}

	if breakdown := airdropscout.CategoryBreakdown(result.Airdrops); len(breakdown) > 0 {
		fmt.Fprintf(&buf, "\n%s\n", l.Breakdown)
		writeBreakdown(&buf, breakdown)
	}

	fmt.Fprintf(&buf, "\n%s (%d)\n", l.Found, len(result.Airdrops))
	if len(result.Airdrops) == 0 {
		fmt.Fprintf(&buf, "  %s\n", l.Empty)
	}
	for i, item := range result.Airdrops {
		writeCard(&buf, i+1, item, l)
	}

	if len(result.GroundingLinks) > 0 {
		fmt.Fprintf(&buf, "\n%s\n", l.Sources)
		for _, link := range result.GroundingLinks {
			fmt.Fprintf(&buf, "  - %s\n", Hostname(link))
		}
	}

	_, err := w.Write(buf.Bytes())
	return err
}

func writeBreakdown(buf *bytes.Buffer, breakdown []airdropscout.CategoryCount) {
	nameWidth, maxValue := 0, 0
	for _, c := range breakdown {
		nameWidth = max(nameWidth, len(categoryName(c.Name)))
		maxValue = max(maxValue, c.Value)
	}
	for _, c := range breakdown {
		width := c.Value
		if maxValue > maxBarWidth {
			width = max(1, c.Value*maxBarWidth/maxValue)
		}
		fmt.Fprintf(buf, "  %-*s %s %d\n", nameWidth, categoryName(c.Name), strings.Repeat("█", width), c.Value)
	}
}

func writeCard(buf *bytes.Buffer, n int, item airdropscout.AirdropItem, l labels) {
	fmt.Fprintf(buf, "\n%d. %s", n, item.Name)
	if item.Token != "" {
		fmt.Fprintf(buf, " [%s]", item.Token)
	}
	if item.Status != "" {
		fmt.Fprintf(buf, " (%s)", item.Status)
	}
	buf.WriteByte('\n')
	if item.Category != "" {
		fmt.Fprintf(buf, "   %s\n", strings.ToUpper(string(item.Category)))
	}
	if item.Description != "" {
		fmt.Fprintf(buf, "   %s\n", item.Description)
	}
	if item.Likelihood != "" {
		fmt.Fprintf(buf, "   %s: %s\n", l.Likelihood, item.Likelihood)
	}
	if item.ActionURL != "" {
		fmt.Fprintf(buf, "   %s: %s\n", l.Check, item.ActionURL)
	}
}

func categoryName(c airdropscout.Category) string {
	if c == "" {
		return "-"
	}
	return string(c)
}
