package sem

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDependencyClosure(t *testing.T) {
	app := NewModuleDescriptor("app")
	lib := NewModuleDescriptor("lib")
	core := NewModuleDescriptor("core")

	app.SetDependencies([]*ModuleDescriptor{lib})
	lib.SetDependencies([]*ModuleDescriptor{core})

	closure := app.TransitiveDependencies()
	require.Equal(t, []*ModuleDescriptor{app, lib, core}, closure)
}

func TestDependencyCycleDetected(t *testing.T) {
	a := NewModuleDescriptor("a")
	b := NewModuleDescriptor("b")

	a.SetDependencies([]*ModuleDescriptor{b})
	b.SetDependencies([]*ModuleDescriptor{a})

	require.Error(t, CheckDependencyCycle(a))
}

func TestBuiltinsSelfDependencyAllowed(t *testing.T) {
	builtins := NewModuleDescriptor("kestrel.builtins")
	SetCapability(builtins.Capabilities(), CapBuiltins, true)
	builtins.SetDependencies([]*ModuleDescriptor{builtins})

	require.NoError(t, CheckDependencyCycle(builtins))

	// A non-builtins module may not depend on itself.
	plain := NewModuleDescriptor("plain")
	plain.SetDependencies([]*ModuleDescriptor{plain})

	require.Error(t, CheckDependencyCycle(plain))
}

func TestSupertypeClosure(t *testing.T) {
	module := NewModuleDescriptor("app")

	animal := NewClassDescriptor(module, "app", "Animal", OriginSource)
	dog := NewClassDescriptor(module, "app", "Dog", OriginSource)
	puppy := NewClassDescriptor(module, "app", "Puppy", OriginSource)

	dog.Supertypes = []*ClassDescriptor{animal}
	puppy.Supertypes = []*ClassDescriptor{dog}

	require.True(t, puppy.InheritsFrom(animal))
	require.True(t, dog.InheritsFrom(animal))
	require.False(t, animal.InheritsFrom(dog))
	require.False(t, dog.InheritsFrom(dog))

	puppyType := Type{Class: puppy}
	animalType := Type{Class: animal}
	require.True(t, puppyType.AssignableTo(animalType))
	require.False(t, animalType.AssignableTo(puppyType))

	// Nullable values do not narrow to non-null expectations.
	nullablePuppy := Type{Class: puppy, Nullable: true}
	require.False(t, nullablePuppy.AssignableTo(animalType))
	require.True(t, puppyType.AssignableTo(Type{Class: animal, Nullable: true}))
}
