package hyphen

import "strings"

// parsePattern splits a raw Liang pattern (e.g. ".ab2c3d.") into its letter
// key ("abcd") and the weight sitting in each of the len(key)+1 gaps around
// those letters (a missing digit reads as 0).
func parsePattern(raw string) (string, []int) {
	weights := make([]int, 1, len(raw)+1)
	var key []byte
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c >= '0' && c <= '9' {
			weights[len(weights)-1] = int(c - '0')
		} else {
			key = append(key, c)
			weights = append(weights, 0)
		}
	}
	return string(key), weights
}

// encodeWeights packs a pattern's weight vector back into the compact
// digit-string form the trie stores as a node's Data, so a single string
// comparison-free decode (decodeWeights) recovers it at match time.
func encodeWeights(weights []int) string {
	var b strings.Builder
	for i, w := range weights {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte(byte('0' + w))
	}
	return b.String()
}

func decodeWeights(data string) []int {
	if data == "" {
		return nil
	}
	parts := strings.Split(data, ",")
	weights := make([]int, len(parts))
	for i, p := range parts {
		if len(p) == 1 {
			weights[i] = int(p[0] - '0')
		}
	}
	return weights
}

// applyPatterns runs every trie-matched pattern over padded (a lower-cased
// word bracketed with '.' word-boundary markers) and returns the
// max-combined weight at each of the len(padded)+1 gaps, per Liang's
// algorithm: every substring starting at every offset is looked up, and
// each hit's weights are taken pointwise-max against the accumulator at
// the matching offset.
func applyPatterns(trie *Trie, padded string) []int {
	acc := make([]int, len(padded)+1)
	for start := 0; start < len(padded); start++ {
		state := Root
		for end := start; end < len(padded); end++ {
			data := trie.Step(padded[end], &state)
			if data != "" {
				w := decodeWeights(data)
				for i, v := range w {
					pos := start + i
					if pos < len(acc) && v > acc[pos] {
						acc[pos] = v
					}
				}
			}
			if state < 0 {
				break
			}
		}
	}
	return acc
}

// breaksFromWeights converts a weight vector over padded (= "." + word +
// ".") into 0-indexed break positions within the unpadded word: a break is
// permitted between word[j-1] and word[j] whenever weights[j] (the gap
// immediately after the leading '.') is odd, per Liang's odd-is-a-break
// rule.
func breaksFromWeights(weights []int, wordLen int) []int {
	var breaks []int
	for j := 1; j < wordLen; j++ {
		gap := j + 1 // +1 to skip the leading '.' boundary gap
		if gap < len(weights) && weights[gap]%2 == 1 {
			breaks = append(breaks, j)
		}
	}
	return breaks
}

// minHyphenableLen is Dillo's candidate-word length floor: shorter words
// are never worth hyphenating.
const minHyphenableLen = 6

// isHyphenationCandidate applies Dillo's pre-filter (dw::Hyphenator::
// isHyphenationCandidate): a word must be long enough, contain no digits,
// and carry no internal hyphen of its own (a word like "Abtei-Stadt"
// already has a perfectly good break point).
func isHyphenationCandidate(word []byte) bool {
	if len(word) < minHyphenableLen {
		return false
	}
	for _, c := range word {
		if c >= '0' && c <= '9' {
			return false
		}
		if c == '-' {
			return false
		}
	}
	return true
}
