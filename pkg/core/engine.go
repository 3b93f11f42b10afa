/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: engine.go
Description: Run orchestrator for Akaylee Decipher. Executes the active
strategies in order under a global wall-clock budget, isolates strategy panics
as logged faults, collects every candidate, and hands the pool to the ranking
pipeline. One Engine serves one process; each Run gets its own session ID.
*/

package core

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kleascm/akaylee-decipher/pkg/interfaces"
	"github.com/kleascm/akaylee-decipher/pkg/logging"
	"github.com/kleascm/akaylee-decipher/pkg/strategies"
)

// StrategyOutcome records how one strategy fared during a run.
type StrategyOutcome struct {
	Name       string        `json:"name"`
	Candidates int           `json:"candidates"`
	Elapsed    time.Duration `json:"elapsed"`
	Fault      string        `json:"fault,omitempty"`
}

// RunResult is the complete outcome of one deciphering run.
type RunResult struct {
	SessionID  string                 `json:"session_id"`
	StartedAt  time.Time              `json:"started_at"`
	Elapsed    time.Duration          `json:"elapsed"`
	Produced   int                    `json:"produced"`
	Strategies []StrategyOutcome      `json:"strategies"`
	Skipped    []string               `json:"skipped,omitempty"`
	Candidates []interfaces.Candidate `json:"candidates"`
}

// Engine orchestrates strategy execution and ranking.
type Engine struct {
	registry *strategies.Registry
	logger   *logging.Logger
}

// NewEngine creates a new engine. The logger may be nil for library use.
func NewEngine(registry *strategies.Registry, logger *logging.Logger) *Engine {
	return &Engine{registry: registry, logger: logger}
}

// Run executes the configured strategies against the ciphertext and returns
// the ranked result. The global budget is checked between strategies: a
// strategy that is already running always finishes, but no further strategy
// starts once the budget is spent. Strategy panics are recorded as faults and
// never abort the run.
func (e *Engine) Run(ciphertext string, cfg *interfaces.RunConfig) (*RunResult, error) {
	active := cfg.ActiveStrategies
	if len(active) == 0 {
		active = e.registry.Names()
	}

	// Fail fast on unknown names before any work happens
	strats := make([]interfaces.Strategy, len(active))
	for i, name := range active {
		s, err := e.registry.Get(name)
		if err != nil {
			return nil, fmt.Errorf("run config: %w", err)
		}
		strats[i] = s
	}

	result := &RunResult{
		SessionID: uuid.New().String(),
		StartedAt: time.Now(),
	}
	var pool []interfaces.Candidate

	for i, strat := range strats {
		name := active[i]
		strategyCfg := cfg.StrategyConfigs[name]
		if strategyCfg == nil {
			strategyCfg = strat.DefaultConfig()
		}

		started := time.Now()
		cands, fault := e.runStrategy(strat, ciphertext, strategyCfg)
		outcome := StrategyOutcome{
			Name:       name,
			Candidates: len(cands),
			Elapsed:    time.Since(started),
		}
		if fault != nil {
			outcome.Fault = fault.Error()
			if e.logger != nil {
				e.logger.LogStrategyFault(name, fault, nil)
			}
		} else {
			pool = append(pool, cands...)
			if e.logger != nil {
				e.logger.LogStrategyRun(name, len(cands), outcome.Elapsed, nil)
			}
		}
		result.Strategies = append(result.Strategies, outcome)

		if time.Since(result.StartedAt).Seconds() > cfg.TotalBudgetS {
			for _, rest := range active[i+1:] {
				result.Skipped = append(result.Skipped, rest)
			}
			if len(result.Skipped) > 0 && e.logger != nil {
				e.logger.LogBudgetExceeded(time.Since(result.StartedAt), result.Skipped, nil)
			}
			break
		}
	}

	result.Produced = len(pool)
	result.Candidates = Rank(pool, RankOptions{
		TopK:       cfg.TopK,
		PerAlgoCap: cfg.PerAlgoCap,
		PromoteTop: cfg.PromoteTop,
	})
	result.Elapsed = time.Since(result.StartedAt)

	if e.logger != nil {
		e.logger.LogRunComplete(result.SessionID, result.Produced, len(result.Candidates), result.Elapsed, nil)
	}
	return result, nil
}

// runStrategy isolates one strategy invocation, converting panics to errors.
func (e *Engine) runStrategy(strat interfaces.Strategy, ciphertext string, cfg *interfaces.StrategyConfig) (out []interfaces.Candidate, fault error) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
			fault = fmt.Errorf("strategy panic: %v", r)
		}
	}()
	return strat.Run(ciphertext, cfg), nil
}
