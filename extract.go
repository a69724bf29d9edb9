package airdropscout

import "regexp"

// fencedJSONBlock matches the first ```json fenced block, non-greedy, so a
// reply with several blocks only yields the first one.
var fencedJSONBlock = regexp.MustCompile("(?s)```json\\r?\\n(.*?)\\r?\\n```")

// ExtractFirstFencedJSONBlock returns the body of the first ```json fenced
// block in text, without the fences. The second value is false when there is
// no such block.
func ExtractFirstFencedJSONBlock(text string) (string, bool) {
	match := fencedJSONBlock.FindStringSubmatch(text)
	if match == nil {
		return "", false
	}
	return match[1], true
}
