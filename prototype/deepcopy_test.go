package prototype_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/designlab/patterns/prototype"
)

func TestDeepCopy_Struct(t *testing.T) {
	t.Parallel()

	type spec struct {
		Doors  int
		Colors []string
		Extras map[string]string
	}

	orig := spec{
		Doors:  5,
		Colors: []string{"red", "blue"},
		Extras: map[string]string{"roof": "sun"},
	}

	copied, err := prototype.DeepCopy(orig)
	require.NoError(t, err)
	assert.Equal(t, orig, copied)

	copied.Colors[0] = "green"
	copied.Extras["roof"] = "none"
	assert.Equal(t, "red", orig.Colors[0])
	assert.Equal(t, "sun", orig.Extras["roof"])
}

func TestDeepCopy_LargeNumbersSurvive(t *testing.T) {
	t.Parallel()

	orig := map[string]any{"serial": json.Number("9007199254740993")}

	copied, err := prototype.DeepCopy(orig)
	require.NoError(t, err)
	assert.Equal(t, "9007199254740993", copied["serial"].(json.Number).String())
}

func TestDeepCopy_RejectsUnencodableValues(t *testing.T) {
	t.Parallel()

	_, err := prototype.DeepCopy(map[string]any{"ch": make(chan int)})
	require.Error(t, err)
}

func TestDeepCopy_NilSlicesAndMaps(t *testing.T) {
	t.Parallel()

	type holder struct {
		S []int
		M map[string]int
	}

	copied, err := prototype.DeepCopy(holder{})
	require.NoError(t, err)
	assert.Nil(t, copied.S)
	assert.Nil(t, copied.M)
}
