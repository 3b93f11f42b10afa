/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: output.go
Description: Terminal presentation for Akaylee Decipher results. Prints the
ranked candidate table with scores, strategy names, transformation paths, and
optional naming-convention hints for the winning plaintexts.
*/

package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/kleascm/akaylee-decipher/pkg/core"
	"github.com/kleascm/akaylee-decipher/pkg/scoring"
)

// PrintCandidates writes the ranked result to w. hintMode is "auto" (show a
// hint when an alternative rendering looks more word-like), "always" (show a
// lowercase rendering even without a detected hint), or "never".
func PrintCandidates(w io.Writer, result *core.RunResult, hintMode string, showPaths bool) {
	fmt.Fprintf(w, "Session %s: %d candidates produced, %d ranked (%.2fs)\n",
		shortID(result.SessionID), result.Produced, len(result.Candidates), result.Elapsed.Seconds())

	if len(result.Skipped) > 0 {
		fmt.Fprintf(w, "Budget exhausted, skipped: %s\n", strings.Join(result.Skipped, ", "))
	}
	if len(result.Candidates) == 0 {
		fmt.Fprintln(w, "No candidates found.")
		return
	}

	fmt.Fprintln(w)
	for i, c := range result.Candidates {
		fmt.Fprintf(w, "%2d. [%8.3f] %-10s %q\n", i+1, c.Score, c.Strategy, c.Text)
		if showPaths && c.Provenance != "" {
			fmt.Fprintf(w, "    %s\n", c.Provenance)
		}
		if label, value, ok := hint(c.Text, hintMode); ok {
			fmt.Fprintf(w, "    hint (%s): %q\n", label, value)
		}
	}
}

func hint(text, mode string) (string, string, bool) {
	switch mode {
	case "never":
		return "", "", false
	case "always":
		if label, value, ok := scoring.SmartHint(text); ok {
			return label, value, true
		}
		if lower := strings.ToLower(text); lower != text {
			return "lower", lower, true
		}
		return "", "", false
	default: // auto
		return scoring.SmartHint(text)
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
