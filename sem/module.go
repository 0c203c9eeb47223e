package sem

import "fmt"

// ModuleDescriptor is the semantic representation of a compilation module: its
// name, its optional typed capabilities, and the list of other modules it may
// reference.  Descriptors are created upstream and are effectively immutable
// for the duration of IR generation.
type ModuleDescriptor struct {
	// Name is the module name.
	Name string

	caps CapabilitySet
	deps []*ModuleDescriptor
}

// NewModuleDescriptor creates a new module descriptor with the given name and
// no dependencies.
func NewModuleDescriptor(name string) *ModuleDescriptor {
	return &ModuleDescriptor{Name: name}
}

// Capabilities returns the module's capability set.
func (m *ModuleDescriptor) Capabilities() *CapabilitySet {
	return &m.caps
}

// IsBuiltins indicates whether this module is flagged as the built-ins module.
func (m *ModuleDescriptor) IsBuiltins() bool {
	flag, _ := GetCapability(&m.caps, CapBuiltins)
	return flag
}

// Dependencies returns the module's direct dependency list.
func (m *ModuleDescriptor) Dependencies() []*ModuleDescriptor {
	return m.deps
}

// SetDependencies sets the module's dependency list.
func (m *ModuleDescriptor) SetDependencies(deps []*ModuleDescriptor) {
	m.deps = deps
}

// TransitiveDependencies returns the module's transitive dependency closure,
// including the module itself, in breadth-first order.
func (m *ModuleDescriptor) TransitiveDependencies() []*ModuleDescriptor {
	var closure []*ModuleDescriptor
	visited := make(map[*ModuleDescriptor]struct{})

	queue := []*ModuleDescriptor{m}
	for len(queue) > 0 {
		dep := queue[0]
		queue = queue[1:]

		if _, ok := visited[dep]; ok {
			continue
		}
		visited[dep] = struct{}{}

		closure = append(closure, dep)
		queue = append(queue, dep.deps...)
	}

	return closure
}

// CheckDependencyCycle validates that the dependency graph rooted at m is
// acyclic.  The one permitted exception is a built-ins module depending on
// itself.
func CheckDependencyCycle(m *ModuleDescriptor) error {
	// Colors for the three color algorithm: white = 0, grey = 1, black = 2.
	colors := make(map[*ModuleDescriptor]int)

	var visit func(dep *ModuleDescriptor) error
	visit = func(dep *ModuleDescriptor) error {
		colors[dep] = 1

		for _, next := range dep.deps {
			if next == dep && dep.IsBuiltins() {
				continue
			}

			switch colors[next] {
			case 0:
				if err := visit(next); err != nil {
					return err
				}
			case 1:
				return fmt.Errorf("dependency cycle through module `%s`", next.Name)
			}
		}

		colors[dep] = 2
		return nil
	}

	return visit(m)
}
