package prototype_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/designlab/patterns/prototype"
)

func newVehicle() *prototype.Vehicle {
	return prototype.NewVehicle("hatchback", prototype.Engine{Kind: "petrol", HorsePower: 90}, "city", "eco")
}

func TestNewVehicle_OwnsItsState(t *testing.T) {
	t.Parallel()

	engine := prototype.Engine{Kind: "petrol", HorsePower: 90}
	tags := []string{"city"}
	v := prototype.NewVehicle("hatchback", engine, tags...)

	require.NotEmpty(t, v.ID)

	// The constructor copies its inputs.
	engine.HorsePower = 500
	tags[0] = "mutated"
	assert.Equal(t, 90, v.Engine.HorsePower)
	assert.Equal(t, "city", v.Tags[0])
}

func TestShallowClone_SharesNestedState(t *testing.T) {
	t.Parallel()

	original := newVehicle()
	clone := original.ShallowClone()

	require.NotSame(t, original, clone)
	assert.Equal(t, original.ID, clone.ID)

	// Nested engine is shared: mutation through the clone is visible
	// through the original.
	assert.Same(t, original.Engine, clone.Engine)
	clone.Engine.HorsePower = 140
	assert.Equal(t, 140, original.Engine.HorsePower)

	// The tag backing array is shared too.
	clone.Tags[0] = "track"
	assert.Equal(t, "track", original.Tags[0])
}

func TestClone_FullyIndependent(t *testing.T) {
	t.Parallel()

	original := newVehicle()
	clone := original.Clone()

	require.NotSame(t, original, clone)
	assert.Equal(t, original.ID, clone.ID)
	assert.Equal(t, original.Model, clone.Model)
	assert.Equal(t, *original.Engine, *clone.Engine)
	assert.Equal(t, original.Tags, clone.Tags)

	// Mutations through the clone leave the original unchanged.
	assert.NotSame(t, original.Engine, clone.Engine)
	clone.Engine.HorsePower = 140
	clone.Tags[0] = "track"
	assert.Equal(t, 90, original.Engine.HorsePower)
	assert.Equal(t, "city", original.Tags[0])
}

func TestClone_NilEngineAndTags(t *testing.T) {
	t.Parallel()

	v := &prototype.Vehicle{ID: "x", Model: "shell"}

	clone := v.Clone()
	require.NotNil(t, clone)
	assert.Nil(t, clone.Engine)
	assert.Empty(t, clone.Tags)

	shallow := v.ShallowClone()
	assert.Nil(t, shallow.Engine)
}

func TestRegistry_SpawnsAreIndependent(t *testing.T) {
	t.Parallel()

	reg := prototype.NewRegistry()
	exemplar := newVehicle()
	require.NoError(t, reg.Put("city-car", exemplar))

	// Mutating the registered value after Put must not affect the exemplar.
	exemplar.Engine.HorsePower = 999

	a, err := reg.Spawn("city-car")
	require.NoError(t, err)
	b, err := reg.Spawn("city-car")
	require.NoError(t, err)

	assert.Equal(t, 90, a.Engine.HorsePower)
	require.NotSame(t, a, b)

	a.Engine.HorsePower = 200
	a.Tags[0] = "track"
	assert.Equal(t, 90, b.Engine.HorsePower)
	assert.Equal(t, "city", b.Tags[0])
}

func TestRegistry_Errors(t *testing.T) {
	t.Parallel()

	reg := prototype.NewRegistry()

	require.ErrorIs(t, reg.Put("x", nil), prototype.ErrNilPrototype)

	require.NoError(t, reg.Put("dup", newVehicle()))
	err := reg.Put("dup", newVehicle())
	var dup prototype.DuplicatePrototypeError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "dup", dup.Name)

	_, err = reg.Spawn("missing")
	var unknown prototype.UnknownPrototypeError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "missing", unknown.Name)
}

func TestRegistry_NamesSorted(t *testing.T) {
	t.Parallel()

	reg := prototype.NewRegistry()
	require.NoError(t, reg.Put("b", newVehicle()))
	require.NoError(t, reg.Put("a", newVehicle()))

	assert.Equal(t, []string{"a", "b"}, reg.Names())
}

func TestDemo(t *testing.T) {
	t.Parallel()

	d := prototype.Demo()
	require.Equal(t, "prototype", d.Name)
	require.NoError(t, d.Run(context.Background(), zaptest.NewLogger(t).Sugar()))
}
