package catalog

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

// validateSchema checks the raw catalog JSON against the embedded schema.
func validateSchema(raw []byte) error {
	schemaOnce.Do(func() {
		schema, schemaErr = compileSchema()
	})
	if schemaErr != nil {
		return schemaErr
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

func compileSchema() (*jsonschema.Schema, error) {
	raw, err := dataFS.ReadFile("data/catalog.schema.json")
	if err != nil {
		return nil, fmt.Errorf("read embedded schema: %w", err)
	}

	var def any
	if err := json.Unmarshal(raw, &def); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	const url = "schema://catalog.schema.json"
	if err := c.AddResource(url, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return compiled, nil
}

// validateTopics performs structural checks on the topic DAG.
// Returns a combined error describing all problems found, or nil if valid.
func validateTopics(topics []Topic) error {
	var errs []string

	idSet := make(map[string]bool, len(topics))
	for _, t := range topics {
		if idSet[t.ID] {
			errs = append(errs, fmt.Sprintf("duplicate topic ID: %q", t.ID))
		}
		idSet[t.ID] = true
	}

	for _, t := range topics {
		for _, prereqID := range t.Prerequisites {
			if !idSet[prereqID] {
				errs = append(errs, fmt.Sprintf("topic %q references nonexistent prerequisite %q", t.ID, prereqID))
			}
		}
	}

	// Cycle check via Kahn's algorithm.
	inDegree := make(map[string]int, len(topics))
	adjList := make(map[string][]string)
	for _, t := range topics {
		inDegree[t.ID] = len(t.Prerequisites)
		for _, prereqID := range t.Prerequisites {
			adjList[prereqID] = append(adjList[prereqID], t.ID)
		}
	}

	var queue []string
	for _, t := range topics {
		if inDegree[t.ID] == 0 {
			queue = append(queue, t.ID)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, depID := range adjList[id] {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	if visited < len(topics) {
		var cycleNodes []string
		for _, t := range topics {
			if inDegree[t.ID] > 0 {
				cycleNodes = append(cycleNodes, t.ID)
			}
		}
		errs = append(errs, fmt.Sprintf("cycle detected involving topics: %s", strings.Join(cycleNodes, ", ")))
	}

	hasRoot := false
	for _, t := range topics {
		if len(t.Prerequisites) == 0 {
			hasRoot = true
			break
		}
	}
	if !hasRoot && len(topics) > 0 {
		errs = append(errs, "no root topics found (at least one topic must have no prerequisites)")
	}

	if len(errs) > 0 {
		return fmt.Errorf("topic graph validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
