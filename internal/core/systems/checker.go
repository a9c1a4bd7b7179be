package systems

import (
	"fmt"
	"sort"
	"strings"
)

// DependencyChecker validates that a set of systems can be initialized in an
// order where every system comes after the systems it depends on.
//
// Dependencies come from System.Dependencies plus any extra rules added with
// Require.
type DependencyChecker struct {
	rules map[string][]string
}

func NewDependencyChecker() *DependencyChecker {
	return &DependencyChecker{rules: make(map[string][]string)}
}

// Require records that system must be initialized after dependency.
func (c *DependencyChecker) Require(system, dependency string) {
	c.rules[system] = append(c.rules[system], dependency)
}

// Order returns the names of systems in a valid initialization order.
// Systems without a constraint between them keep their input order.
// A dependency on an absent system or a cycle is an error.
func (c *DependencyChecker) Order(list []System) ([]string, error) {
	position := make(map[string]int, len(list))
	for i, s := range list {
		position[s.Name()] = i
	}

	deps := make(map[string][]string, len(list))
	for _, s := range list {
		name := s.Name()
		all := append(append([]string(nil), s.Dependencies()...), c.rules[name]...)
		for _, dep := range all {
			if _, ok := position[dep]; !ok {
				return nil, fmt.Errorf("%w: %s requires %s", ErrMissingDependency, name, dep)
			}
		}
		deps[name] = all
	}

	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(list))
	order := make([]string, 0, len(list))
	var path []string

	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("%w: %s", ErrDependencyCycle, strings.Join(append(path, name), " -> "))
		}
		state[name] = visiting
		path = append(path, name)

		ds := append([]string(nil), deps[name]...)
		sort.SliceStable(ds, func(i, j int) bool { return position[ds[i]] < position[ds[j]] })
		for _, dep := range ds {
			if err := visit(dep); err != nil {
				return err
			}
		}

		path = path[:len(path)-1]
		state[name] = done
		order = append(order, name)
		return nil
	}

	for _, s := range list {
		if err := visit(s.Name()); err != nil {
			return nil, err
		}
	}
	return order, nil
}
