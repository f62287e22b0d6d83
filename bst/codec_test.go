package bst_test

import (
	"slices"
	"strconv"
	"testing"

	"github.com/Pallinder/go-randomdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlds/bst"
)

func TestSerialize(t *testing.T) {
	cases := []struct {
		name string
		vals []int
		want string
	}{
		{"Empty", nil, "#"},
		{"Single", []int{2}, "2 # #"},
		{"Triangle", []int{2, 1, 3}, "2 1 # # 3 # #"},
		{"RightChain", []int{1, 2}, "1 # 2 # #"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, bst.FromSlice(tc.vals).Serialize(nil))
		})
	}
}

func TestSerializeCustomFormat(t *testing.T) {
	tr := bst.FromSlice([]int{10, 5})
	got := tr.Serialize(func(v int) string { return strconv.FormatInt(int64(v), 16) })
	assert.Equal(t, "a 5 # # #", got)
}

func TestDeserializeRoundTrip(t *testing.T) {
	for round := 0; round < 10; round++ {
		n := randomdata.Number(0, 80)
		vals := make([]int, n)
		for i := range vals {
			vals[i] = randomdata.Number(-30, 30)
		}
		tr := bst.FromSlice(vals)

		back, err := bst.Deserialize(tr.Serialize(nil), strconv.Atoi)
		require.NoError(t, err)
		assert.Equal(t, slices.Collect(tr.PreOrder()), slices.Collect(back.PreOrder()), "round %d", round)
		assert.Equal(t, tr.Len(), back.Len())
		assert.Equal(t, tr.Height(), back.Height())
	}
}

func TestDeserializeEmptyTree(t *testing.T) {
	tr, err := bst.Deserialize("#", strconv.Atoi)
	require.NoError(t, err)
	assert.Zero(t, tr.Len())
	assert.Nil(t, tr.Root())
}

func TestDeserializeMalformed(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"Empty", ""},
		{"Blank", "   "},
		{"Truncated", "2 1 #"},
		{"Trailing", "2 # # 7"},
		{"NilThenMore", "# 1"},
		{"BadToken", "2 x # # #"},
		{"LeftTooLarge", "2 3 # # #"},
		{"LeftEqual", "2 2 # # #"},
		{"RightSmaller", "2 # 1 # #"},
		{"DeepViolation", "8 3 # 9 # # #"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := bst.Deserialize(tc.data, strconv.Atoi)
			assert.ErrorIs(t, err, bst.ErrMalformed)
		})
	}
}

func TestDeserializeWrapsParseError(t *testing.T) {
	_, err := bst.Deserialize("oops # #", strconv.Atoi)
	require.ErrorIs(t, err, bst.ErrMalformed)
	assert.ErrorIs(t, err, strconv.ErrSyntax)
}

func TestDeserializeAcceptsRightDuplicates(t *testing.T) {
	tr, err := bst.Deserialize("2 # 2 # #", strconv.Atoi)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, slices.Collect(tr.InOrder()))
}

func ptr(v int) *int { return &v }

func TestLevelSlice(t *testing.T) {
	cases := []struct {
		name string
		vals []int
		want []*int
	}{
		{"Empty", nil, []*int{}},
		{"Single", []int{2}, []*int{ptr(2)}},
		{"RightChain", []int{2, 3, 4}, []*int{ptr(2), nil, ptr(3), nil, ptr(4)}},
		{"Fixture", insertOrder, []*int{
			ptr(8), ptr(3), ptr(10), ptr(1), ptr(6), nil, ptr(14), nil, nil, ptr(4), ptr(7), ptr(13),
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, bst.FromSlice(tc.vals).LevelSlice())
		})
	}
}

func TestLevelSliceCopiesValues(t *testing.T) {
	tr := bst.FromSlice([]int{2, 1})
	out := tr.LevelSlice()
	*out[0] = 100
	assert.Equal(t, []int{1, 2}, slices.Collect(tr.InOrder()))
}

func TestFromLevelSliceRoundTrip(t *testing.T) {
	for round := 0; round < 10; round++ {
		n := randomdata.Number(0, 80)
		vals := make([]int, n)
		for i := range vals {
			vals[i] = randomdata.Number(-30, 30)
		}
		tr := bst.FromSlice(vals)

		back, err := bst.FromLevelSlice(tr.LevelSlice())
		require.NoError(t, err)
		assert.Equal(t, tr.Serialize(nil), back.Serialize(nil), "round %d", round)
		assert.Equal(t, tr.Len(), back.Len())
	}
}

func TestFromLevelSliceEmpty(t *testing.T) {
	for _, in := range [][]*int{nil, {}, {nil}, {nil, nil}} {
		tr, err := bst.FromLevelSlice(in)
		require.NoError(t, err)
		assert.Zero(t, tr.Len())
		assert.Nil(t, tr.Root())
	}
}

func TestFromLevelSliceTrailingHoles(t *testing.T) {
	tr, err := bst.FromLevelSlice([]*int{ptr(2), ptr(1), nil, nil, nil, nil, nil})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, slices.Collect(tr.LevelOrder()))
}

func TestFromLevelSliceMalformed(t *testing.T) {
	cases := []struct {
		name string
		in   []*int
	}{
		{"ValueUnderNilRoot", []*int{nil, ptr(1)}},
		{"Orphan", []*int{ptr(2), nil, nil, ptr(5)}},
		{"LeftTooLarge", []*int{ptr(2), ptr(3)}},
		{"RightSmaller", []*int{ptr(2), nil, ptr(1)}},
		{"DeepViolation", []*int{ptr(8), ptr(3), nil, nil, ptr(9)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := bst.FromLevelSlice(tc.in)
			assert.ErrorIs(t, err, bst.ErrMalformed)
		})
	}
}
