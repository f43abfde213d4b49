package factory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/designlab/patterns/factory"
)

func TestNew_KnownKinds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		kind        factory.Kind
		wantMessage string
	}{
		{kind: factory.KindTruck, wantMessage: "delivered 3 crates to Oslo by road"},
		{kind: factory.KindShip, wantMessage: "delivered 3 crates to Oslo by sea"},
		{kind: factory.KindPlane, wantMessage: "delivered 3 crates to Oslo by air"},
	}

	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			t.Parallel()

			tr, err := factory.New(tc.kind)
			require.NoError(t, err)
			require.NotNil(t, tr)

			assert.Equal(t, tc.kind, tr.Kind())
			assert.Equal(t, tc.wantMessage, tr.Deliver("3 crates", "Oslo"))
		})
	}
}

func TestNew_UnknownKind(t *testing.T) {
	t.Parallel()

	tr, err := factory.New(factory.Kind("zeppelin"))
	require.Error(t, err)
	assert.Nil(t, tr)

	var unknown factory.UnknownKindError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, factory.Kind("zeppelin"), unknown.Kind)
	assert.Contains(t, err.Error(), `"zeppelin"`)
}

func TestMustNew(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { _ = factory.MustNew(factory.KindShip) })
	assert.Panics(t, func() { _ = factory.MustNew(factory.Kind("hovercraft")) })
}

func TestPlanDelivery_UsesOnlyTheInterface(t *testing.T) {
	t.Parallel()

	record, err := factory.PlanDelivery(factory.KindShip, "20 containers", "Rotterdam")
	require.NoError(t, err)
	assert.Equal(t, "delivered 20 containers to Rotterdam by sea", record)

	_, err = factory.PlanDelivery(factory.Kind(""), "x", "y")
	var unknown factory.UnknownKindError
	require.True(t, errors.As(err, &unknown))
}

func TestKinds_CoveredByNew(t *testing.T) {
	t.Parallel()

	for _, kind := range factory.Kinds() {
		tr, err := factory.New(kind)
		require.NoError(t, err)
		assert.Equal(t, kind, tr.Kind())
	}
}

func TestDemo(t *testing.T) {
	t.Parallel()

	d := factory.Demo()
	require.Equal(t, "factory-method", d.Name)
	require.NoError(t, d.Run(context.Background(), zaptest.NewLogger(t).Sugar()))
}
