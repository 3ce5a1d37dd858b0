package quiz

import (
	"math/rand"
	"strings"
)

const (
	vowels  = "aeiou"
	letters = "abcdefghijklmnopqrstuvwxyz"
)

// similarConsonants maps consonants to phonetically confusable
// replacements; "h" maps to removal
var similarConsonants = map[byte]string{
	'b': "p", 'p': "b", 'd': "t", 't': "d", 'g': "k", 'k': "g",
	's': "c", 'c': "s", 'f': "v", 'v': "f", 'm': "n", 'n': "m",
	'l': "r", 'r': "l", 'j': "g", 'z': "s", 'w': "v", 'h': "",
}

// misspell generates up to count distinct plausible misspellings of word.
// Each result differs from the original and has length in [2, len(word)+2].
// Results are in insertion order of first acceptance. The attempt budget is
// 10 x count, so fewer than count results may come back for short or
// unluckily-shaped words.
func misspell(rng *rand.Rand, word string, count int) []string {
	lower := strings.ToLower(word)
	attempts := count * 10

	var results []string
	seen := make(map[string]bool)

	for i := 0; i < attempts && len(results) < count; i++ {
		var candidate string

		switch rng.Intn(6) {
		case 0: // remove a letter (not the first)
			if len(lower) > 1 {
				pos := 1 + rng.Intn(len(lower)-1)
				candidate = lower[:pos] + lower[pos+1:]
			}
		case 1: // double a letter
			pos := rng.Intn(len(lower))
			candidate = lower[:pos] + string(lower[pos]) + lower[pos:]
		case 2: // swap two adjacent letters
			if len(lower) > 1 {
				pos := rng.Intn(len(lower) - 1)
				b := []byte(lower)
				b[pos], b[pos+1] = b[pos+1], b[pos]
				candidate = string(b)
			}
		case 3: // replace a vowel with a different vowel
			positions := indexesOf(lower, vowels)
			if len(positions) > 0 {
				pos := positions[rng.Intn(len(positions))]
				others := strings.Replace(vowels, string(lower[pos]), "", 1)
				newVowel := others[rng.Intn(len(others))]
				candidate = lower[:pos] + string(newVowel) + lower[pos+1:]
			}
		case 4: // insert a random letter (not at the front)
			if len(lower) > 1 {
				pos := 1 + rng.Intn(len(lower)-1)
				letter := letters[rng.Intn(len(letters))]
				candidate = lower[:pos] + string(letter) + lower[pos:]
			}
		case 5: // replace a consonant with a similar-sounding one
			var positions []int
			for j := 0; j < len(lower); j++ {
				if _, ok := similarConsonants[lower[j]]; ok {
					positions = append(positions, j)
				}
			}
			if len(positions) > 0 {
				pos := positions[rng.Intn(len(positions))]
				candidate = lower[:pos] + similarConsonants[lower[pos]] + lower[pos+1:]
			}
		}

		if candidate == "" || candidate == lower || seen[candidate] {
			continue
		}
		if len(candidate) < 2 || len(candidate) > len(lower)+2 {
			continue
		}

		seen[candidate] = true
		results = append(results, candidate)
	}

	return results
}

// indexesOf returns the positions in s whose byte appears in set
func indexesOf(s, set string) []int {
	var positions []int
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(set, s[i]) >= 0 {
			positions = append(positions, i)
		}
	}
	return positions
}
