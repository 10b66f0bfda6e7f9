// Package templates expands prompt, help, error and hint text. Placeholders
// use pongo2 syntax ({{ name }}) and are resolved only from the explicit
// variable map supplied by each rule.
package templates

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
)

// Engine compiles templates once and reuses them across expansions.
type Engine struct {
	mu        sync.RWMutex
	templates map[string]*pongo2.Template
}

// New constructs an empty Engine.
func New() *Engine {
	return &Engine{templates: make(map[string]*pongo2.Template)}
}

var defaultEngine = New()

// Default returns the process-wide engine. Its cache only ever holds
// compiled templates, which are immutable.
func Default() *Engine {
	return defaultEngine
}

// Expand renders source against vars. Text without a "{{" marker is
// returned untouched.
func (e *Engine) Expand(source string, vars map[string]any) (string, error) {
	if e == nil {
		return "", errors.New("templates: engine is nil")
	}
	if !strings.Contains(source, "{{") && !strings.Contains(source, "{%") {
		return source, nil
	}

	tmpl, err := e.compile(source)
	if err != nil {
		return "", err
	}

	ctx := make(pongo2.Context, len(vars))
	for key, value := range vars {
		// Values are plain console text; skip pongo2's HTML escaping.
		ctx[key] = pongo2.AsSafeValue(value)
	}

	out, err := tmpl.Execute(ctx)
	if err != nil {
		return "", fmt.Errorf("templates: execute: %w", err)
	}
	return out, nil
}

// ExpandOrSource is Expand for prompt text; on failure it returns the
// unexpanded source so a bad override never hides the prompt entirely.
func (e *Engine) ExpandOrSource(source string, vars map[string]any) string {
	out, err := e.Expand(source, vars)
	if err != nil {
		return source
	}
	return out
}

func (e *Engine) compile(source string) (*pongo2.Template, error) {
	e.mu.RLock()
	tmpl, ok := e.templates[source]
	e.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	tmpl, err := pongo2.FromString(source)
	if err != nil {
		return nil, fmt.Errorf("templates: parse %q: %w", source, err)
	}

	e.mu.Lock()
	e.templates[source] = tmpl
	e.mu.Unlock()
	return tmpl, nil
}
