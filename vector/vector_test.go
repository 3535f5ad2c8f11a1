package vector_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lalib/domain"
	"github.com/katalvlaran/lalib/field"
	"github.com/katalvlaran/lalib/gf2"
	"github.com/katalvlaran/lalib/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// xyz builds the three-label string domain shared by most tests.
func xyz(t *testing.T) domain.Domain[string] {
	t.Helper()

	dom, err := domain.New("x", "y", "z")
	require.NoError(t, err)

	return dom
}

// TestNew verifies construction with exactly covering entries.
func TestNew(t *testing.T) {
	dom := xyz(t)

	v, err := vector.New(dom, field.R, map[string]float64{"x": 1, "y": 2, "z": 3})
	require.NoError(t, err)

	assert.Equal(t, 3, v.Len())
	assert.True(t, v.Domain().Equal(dom))

	got, err := v.At("y")
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)
}

// TestNew_LabelMismatch verifies missing and extra keys are rejected.
func TestNew_LabelMismatch(t *testing.T) {
	dom := xyz(t)

	_, err := vector.New(dom, field.R, map[string]float64{"x": 1, "y": 2})
	assert.ErrorIs(t, err, vector.ErrLabelMismatch, "missing label")

	_, err = vector.New(dom, field.R, map[string]float64{"x": 1, "y": 2, "z": 3, "w": 4})
	assert.ErrorIs(t, err, vector.ErrLabelMismatch, "extra label")

	_, err = vector.New(dom, field.R, map[string]float64{"x": 1, "y": 2, "w": 4})
	assert.ErrorIs(t, err, vector.ErrLabelMismatch, "wrong label")
}

// TestNew_EmptyDomain verifies a zero-value domain cannot produce a
// vector, even with a matching empty entries map.
func TestNew_EmptyDomain(t *testing.T) {
	var dom domain.Domain[string]

	_, err := vector.New(dom, field.R, map[string]float64{})
	assert.ErrorIs(t, err, vector.ErrLabelMismatch)

	_, err = vector.New(dom, field.R, nil)
	assert.ErrorIs(t, err, vector.ErrLabelMismatch)
}

// TestNew_CopiesEntries verifies mutating the input map afterwards does
// not reach the vector.
func TestNew_CopiesEntries(t *testing.T) {
	dom := xyz(t)
	entries := map[string]float64{"x": 1, "y": 2, "z": 3}

	v, err := vector.New(dom, field.R, entries)
	require.NoError(t, err)

	entries["x"] = 99
	got, err := v.At("x")
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
}

// TestZerosOnes verifies the identity constructors over two fields.
func TestZerosOnes(t *testing.T) {
	dom := xyz(t)

	zeros := vector.Zeros(dom, field.R)
	ones := vector.Ones(dom, field.R)
	for _, label := range dom.Labels() {
		z, err := zeros.At(label)
		require.NoError(t, err)
		assert.Equal(t, 0.0, z)

		o, err := ones.At(label)
		require.NoError(t, err)
		assert.Equal(t, 1.0, o)
	}

	qOnes := vector.Ones(dom, field.Q)
	q, err := qOnes.At("x")
	require.NoError(t, err)
	assert.True(t, field.Q.IsOne(q))
}

// TestRandom verifies draws land in [0, 1] and a fixed seed reproduces
// the same vector.
func TestRandom(t *testing.T) {
	dom := xyz(t)

	v := vector.Random(dom, field.R, rand.New(rand.NewSource(42)))
	for _, label := range dom.Labels() {
		got, err := v.At(label)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 1.0)
	}

	again := vector.Random(dom, field.R, rand.New(rand.NewSource(42)))
	assert.True(t, v.Equal(again), "same seed, same vector")
}

// TestRandom_NilRNG verifies the nil fallback is resolved once for the
// whole vector: the entries differ from each other, and two nil-RNG
// builds still agree with each other.
func TestRandom_NilRNG(t *testing.T) {
	dom, err := domain.Canonical(8)
	require.NoError(t, err)

	v := vector.Random(dom, field.R, nil)

	distinct := map[float64]bool{}
	for _, label := range dom.Labels() {
		got, err := v.At(label)
		require.NoError(t, err)
		distinct[got] = true
	}
	assert.Greater(t, len(distinct), 1, "entries must not collapse to one repeated draw")

	again := vector.Random(dom, field.R, nil)
	assert.True(t, v.Equal(again), "nil RNG stays deterministic")
}

// TestAtSet verifies element access and the unknown-label guard.
func TestAtSet(t *testing.T) {
	dom := xyz(t)
	v, err := vector.New(dom, field.R, map[string]float64{"x": 1, "y": 2, "z": 3})
	require.NoError(t, err)

	_, err = v.At("w")
	assert.ErrorIs(t, err, vector.ErrUnknownLabel)

	_, err = v.Set("w", 9)
	assert.ErrorIs(t, err, vector.ErrUnknownLabel)

	w, err := v.Set("y", 9)
	require.NoError(t, err)

	got, err := w.At("y")
	require.NoError(t, err)
	assert.Equal(t, 9.0, got)

	// The original is untouched.
	got, err = v.At("y")
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)
}

// TestAddSub verifies element-wise addition and subtraction.
func TestAddSub(t *testing.T) {
	dom := xyz(t)
	v, err := vector.New(dom, field.R, map[string]float64{"x": 1, "y": 2, "z": 3})
	require.NoError(t, err)
	w, err := vector.New(dom, field.R, map[string]float64{"x": 10, "y": 20, "z": 30})
	require.NoError(t, err)

	sum, err := v.Add(w)
	require.NoError(t, err)
	want, err := vector.New(dom, field.R, map[string]float64{"x": 11, "y": 22, "z": 33})
	require.NoError(t, err)
	assert.True(t, sum.Equal(want))

	diff, err := w.Sub(v)
	require.NoError(t, err)
	want, err = vector.New(dom, field.R, map[string]float64{"x": 9, "y": 18, "z": 27})
	require.NoError(t, err)
	assert.True(t, diff.Equal(want))
}

// TestAdd_DomainMismatch verifies vectors over different domains refuse
// to meet.
func TestAdd_DomainMismatch(t *testing.T) {
	dom := xyz(t)
	other, err := domain.New("a", "b", "c")
	require.NoError(t, err)

	v := vector.Ones(dom, field.R)
	w := vector.Ones(other, field.R)

	_, err = v.Add(w)
	assert.ErrorIs(t, err, vector.ErrDomainMismatch)
	assert.False(t, v.Equal(w))
}

// TestAdd_FieldMismatch verifies vectors over different fields with the
// same element type refuse to meet.
func TestAdd_FieldMismatch(t *testing.T) {
	dom := xyz(t)

	v := vector.Ones(dom, field.R)
	w := vector.Ones[string, float64](dom, renamedReal{})

	_, err := v.Add(w)
	assert.ErrorIs(t, err, vector.ErrFieldMismatch)
	assert.False(t, v.Equal(w))
}

// renamedReal is ℝ under a different name; enough to trip the field
// identity check.
type renamedReal struct{ field.Real }

func (renamedReal) Name() string { return "ℝ'" }

// TestNegScaleApply verifies the unary element-wise operations.
func TestNegScaleApply(t *testing.T) {
	dom := xyz(t)
	v, err := vector.New(dom, field.R, map[string]float64{"x": 1, "y": -2, "z": 3})
	require.NoError(t, err)

	neg := v.Neg()
	got, err := neg.At("y")
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)

	twice := v.Scale(2)
	got, err = twice.At("z")
	require.NoError(t, err)
	assert.Equal(t, 6.0, got)

	squared := v.Apply(func(x float64) float64 { return x * x })
	got, err = squared.At("y")
	require.NoError(t, err)
	assert.Equal(t, 4.0, got)

	// v itself never moves.
	got, err = v.At("y")
	require.NoError(t, err)
	assert.Equal(t, -2.0, got)
}

// TestEqual verifies equality goes through the field's Eq, so ℝ vectors
// match within the default threshold.
func TestEqual(t *testing.T) {
	dom := xyz(t)
	v, err := vector.New(dom, field.R, map[string]float64{"x": 1, "y": 2, "z": 3})
	require.NoError(t, err)
	w, err := vector.New(dom, field.R, map[string]float64{"x": 1 + 1e-13, "y": 2, "z": 3})
	require.NoError(t, err)
	u, err := vector.New(dom, field.R, map[string]float64{"x": 1.1, "y": 2, "z": 3})
	require.NoError(t, err)

	assert.True(t, v.Equal(w), "within threshold")
	assert.False(t, v.Equal(u))
}

// TestRationalVector verifies exact arithmetic carries through the
// container: a tenth plus two tenths is exactly three tenths per entry.
func TestRationalVector(t *testing.T) {
	dom, err := domain.Canonical(2)
	require.NoError(t, err)

	v, err := vector.New(dom, field.Q, map[int]*big.Rat{0: big.NewRat(1, 10), 1: big.NewRat(1, 3)})
	require.NoError(t, err)
	w, err := vector.New(dom, field.Q, map[int]*big.Rat{0: big.NewRat(2, 10), 1: big.NewRat(2, 3)})
	require.NoError(t, err)

	sum, err := v.Add(w)
	require.NoError(t, err)

	got, err := sum.At(0)
	require.NoError(t, err)
	assert.True(t, field.Q.Eq(big.NewRat(3, 10), got))

	got, err = sum.At(1)
	require.NoError(t, err)
	assert.True(t, field.Q.IsOne(got))
}

// TestGaloisVector verifies the container works over GF(2): adding a
// vector to itself yields the zero vector.
func TestGaloisVector(t *testing.T) {
	dom, err := domain.Canonical(4)
	require.NoError(t, err)

	v := vector.Random(dom, field.GF2, rand.New(rand.NewSource(42)))

	sum, err := v.Add(v)
	require.NoError(t, err)
	assert.True(t, sum.Equal(vector.Zeros(dom, field.GF2)))

	one, err := sum.Set(2, gf2.One)
	require.NoError(t, err)
	got, err := one.At(2)
	require.NoError(t, err)
	assert.Equal(t, gf2.One, got)
}
