/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: report.go
Description: JSON run reports for Akaylee Decipher. Serializes a RunResult to a
session-stamped file so that runs can be archived, diffed, and post-processed
without re-running the search.
*/

package core

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kleascm/akaylee-decipher/pkg/interfaces"
)

// runReport is the on-disk schema. Durations are rendered as strings so the
// file remains readable without knowing Go's nanosecond convention.
type runReport struct {
	SessionID   string                 `json:"session_id"`
	GeneratedAt string                 `json:"generated_at"`
	StartedAt   string                 `json:"started_at"`
	Elapsed     string                 `json:"elapsed"`
	Produced    int                    `json:"produced"`
	Strategies  []strategyReport       `json:"strategies"`
	Skipped     []string               `json:"skipped,omitempty"`
	Candidates  []interfaces.Candidate `json:"candidates"`
}

type strategyReport struct {
	Name       string `json:"name"`
	Candidates int    `json:"candidates"`
	Elapsed    string `json:"elapsed"`
	Fault      string `json:"fault,omitempty"`
}

// WriteReport writes the result as an indented JSON file under dir and
// returns the file path.
func WriteReport(result *RunResult, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	report := runReport{
		SessionID:   result.SessionID,
		GeneratedAt: time.Now().Format(time.RFC3339),
		StartedAt:   result.StartedAt.Format(time.RFC3339),
		Elapsed:     result.Elapsed.String(),
		Produced:    result.Produced,
		Skipped:     result.Skipped,
		Candidates:  result.Candidates,
	}
	for _, s := range result.Strategies {
		report.Strategies = append(report.Strategies, strategyReport{
			Name:       s.Name,
			Candidates: s.Candidates,
			Elapsed:    s.Elapsed.String(),
			Fault:      s.Fault,
		})
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("report_%s.json", result.SessionID))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}
