/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: ngrams.go
Description: English reference statistics for the fitness scorer. Unigram
frequency table plus the common bigram/trigram/tetragram sets used for n-gram
hit counting.
*/

package scoring

import "strings"

// englishFreq is the standard English unigram distribution in percent.
var englishFreq = map[byte]float64{
	'A': 8.12, 'B': 1.49, 'C': 2.71, 'D': 4.32, 'E': 12.02, 'F': 2.30,
	'G': 2.03, 'H': 5.92, 'I': 7.31, 'J': 0.10, 'K': 0.69, 'L': 3.98,
	'M': 2.61, 'N': 6.95, 'O': 7.68, 'P': 1.82, 'Q': 0.11, 'R': 6.02,
	'S': 6.28, 'T': 9.10, 'U': 2.88, 'V': 1.11, 'W': 2.09, 'X': 0.17,
	'Y': 2.11, 'Z': 0.07,
}

var (
	bigrams = toSet("th he in er an re on at en nd ti es or te of ed is it al ar " +
		"st to nt ng se ha as ou io le ve co me de hi ri ro")
	trigrams = toSet("the and ing her hat his tha ere for ent ion ter you thi not are all wit ver")
	tetragrams = toSet("tion atio nthe thed that ther here ethe")
)

func toSet(words string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(words) {
		set[w] = struct{}{}
	}
	return set
}

// NGramHits counts occurrences of known common English bigrams, trigrams, and
// tetragrams as contiguous case-insensitive substrings, weighted 0.6, 1.0, and
// 1.5 respectively.
func NGramHits(t string) float64 {
	tl := strings.ToLower(t)
	n := len(tl)
	var score float64
	for i := 0; i+2 <= n; i++ {
		if _, ok := bigrams[tl[i:i+2]]; ok {
			score += 0.6
		}
	}
	for i := 0; i+3 <= n; i++ {
		if _, ok := trigrams[tl[i:i+3]]; ok {
			score += 1.0
		}
	}
	for i := 0; i+4 <= n; i++ {
		if _, ok := tetragrams[tl[i:i+4]]; ok {
			score += 1.5
		}
	}
	return score
}
