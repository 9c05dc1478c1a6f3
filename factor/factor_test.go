package factor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liam-m/primes/primality"
	"github.com/liam-m/primes/sieve"
)

func TestFactorizePrime(t *testing.T) {
	assert.Equal(t, []int64{}, Factorize(13, false, nil))
	assert.Equal(t, []int64{1, 13}, Factorize(13, true, nil))
	assert.Equal(t, []int64{}, Factorize(9223372036854775783, false, nil))
}

func TestFactorizeSemiprime(t *testing.T) {
	assert.Equal(t, []int64{3, 5}, Factorize(15, false, nil))
	assert.Equal(t, []int64{1, 3, 5, 15}, Factorize(15, true, nil))
	assert.Equal(t, []int64{198031, 479239}, Factorize(94904178409, false, nil))
}

func TestFactorizePrimeSquare(t *testing.T) {
	assert.Equal(t, []int64{7}, Factorize(49, false, nil))
	assert.Equal(t, []int64{198031}, Factorize(198031*198031, false, nil))
}

func TestFactorizePrimePowers(t *testing.T) {
	assert.Equal(t, []int64{2, 3}, Factorize(144, false, nil))
	assert.Equal(t, []int64{2, 5}, Factorize(1000000, false, nil))
	assert.Equal(t, []int64{2, 3, 5, 7}, Factorize(2*2*2*3*3*5*7, false, nil))
}

func TestFactorizeLargeSemiprime(t *testing.T) {
	// 1000000007 * 1000000009: the randomized search has to split it.
	got := Factorize(1000000016000000063, false, nil)
	assert.Equal(t, []int64{1000000007, 1000000009}, got)
}

func TestFactorizeLargeCofactorAfterStripping(t *testing.T) {
	// 2^3 * 3 * 198031 * 479239: trial division strips the small part,
	// rho splits the remainder.
	assert.Equal(t, []int64{2, 3, 198031, 479239}, Factorize(8*3*94904178409, false, nil))
}

func TestFactorizeProductReconstructs(t *testing.T) {
	for n := int64(2); n <= 3000; n++ {
		fs := Factorize(n, false, nil)
		if len(fs) == 0 {
			// primes have no nontrivial factors
			assert.True(t, primality.IsPrime(n, nil), "%d has no factors but is not prime", n)
			continue
		}
		m := n
		for _, f := range fs {
			require.True(t, m%f == 0, "%d is not a factor of %d", f, n)
			for m%f == 0 {
				m /= f
			}
		}
		if m != 1 {
			t.Fatalf("factorization of %d missed the cofactor %d", n, m)
		}
	}
}

func TestFactorizeKnownPrimeAboveRoot(t *testing.T) {
	// 99991 sits far beyond sqrt(2*99991); the hint must still surface it
	// by exact lookup rather than trial-dividing the whole list.
	known := sieve.UpTo(100000, nil)
	assert.Equal(t, []int64{2, 99991}, Factorize(2*99991, false, known))
	assert.Equal(t, []int64{3, 99991}, Factorize(3*99991, false, known))
}

// The result never depends on which valid hint is supplied.
func TestFactorizeHintIndependence(t *testing.T) {
	hints := [][]int64{nil, {2}, sieve.UpTo(100, nil), sieve.UpTo(100000, nil)}
	for _, n := range []int64{15, 49, 144, 561, 94904178409} {
		want := Factorize(n, false, nil)
		for i, hint := range hints {
			assert.Equal(t, want, Factorize(n, false, hint), "n = %d, hint %d", n, i)
		}
	}
}

func TestMemo(t *testing.T) {
	m, err := NewMemo(4)
	require.NoError(t, err)

	first := m.Factorize(94904178409)
	assert.Equal(t, []int64{198031, 479239}, first)

	// mutating a returned slice must not poison later hits
	first[0] = 1
	assert.Equal(t, []int64{198031, 479239}, m.Factorize(94904178409))

	assert.Equal(t, []int64{3, 5}, m.Factorize(15))
	assert.Equal(t, []int64{}, m.Factorize(13))
}

func TestNewMemoRejectsInvalidSize(t *testing.T) {
	_, err := NewMemo(0)
	assert.Error(t, err)
}
