/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: registry.go
Description: Strategy registry for Akaylee Decipher. Holds every known salvage
strategy keyed by family name and preserves registration order so that runs and
listings are deterministic.
*/

package strategies

import (
	"fmt"

	"github.com/kleascm/akaylee-decipher/pkg/interfaces"
	"github.com/kleascm/akaylee-decipher/pkg/scoring"
)

// Registry maps strategy family names to implementations.
type Registry struct {
	order      []string
	strategies map[string]interfaces.Strategy
}

// NewRegistry creates a registry populated with every built-in strategy.
func NewRegistry(scorer *scoring.Scorer) *Registry {
	r := &Registry{strategies: make(map[string]interfaces.Strategy)}
	r.Register(NewBase64Strategy(scorer))
	r.Register(NewBase58Strategy(scorer))
	r.Register(NewBase45Strategy(scorer))
	r.Register(NewBase91Strategy(scorer))
	r.Register(NewRotNStrategy(scorer))
	r.Register(NewSuperRotStrategy(scorer))
	return r
}

// Register adds a strategy, replacing any previous one with the same name.
func (r *Registry) Register(s interfaces.Strategy) {
	name := s.Name()
	if _, exists := r.strategies[name]; !exists {
		r.order = append(r.order, name)
	}
	r.strategies[name] = s
}

// Get returns the strategy registered under name.
func (r *Registry) Get(name string) (interfaces.Strategy, error) {
	s, ok := r.strategies[name]
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q (have %v)", name, r.order)
	}
	return s, nil
}

// Names returns the registered strategy names in registration order.
func (r *Registry) Names() []string {
	return append([]string{}, r.order...)
}
