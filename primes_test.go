package primes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liam-m/primes/sieve"
)

func TestSieveUpTo(t *testing.T) {
	assert.Equal(t, []int64{2, 3, 5, 7}, SieveUpTo(10, nil))
	assert.Equal(t, []int64{2, 3}, SieveUpTo(3, nil))
	assert.Empty(t, SieveUpTo(1, nil))
}

func TestNPrimesLength(t *testing.T) {
	// counts straddling every upper-bound tier switch
	counts := []int{0, 1, 2, 5, 6, 7, 100, 1229, 8601, 8602, 8603, 15984, 15985, 16000, 39016, 39017, 40000}
	for _, n := range counts {
		assert.Len(t, NPrimes(n, nil), n, "n = %d", n)
	}
}

// The first n primes must be exactly the primes up to the nth one.
func TestNPrimesMatchesSieve(t *testing.T) {
	for _, n := range []int{6, 100, 8602, 16000, 40000} {
		ps := NPrimes(n, nil)
		require.Len(t, ps, n)
		assert.Equal(t, sieve.UpTo(ps[n-1], nil), ps, "n = %d", n)
	}
}

func TestNPrimesWithPassIn(t *testing.T) {
	known := sieve.UpTo(100, nil)
	assert.Equal(t, NPrimes(50, nil), NPrimes(50, known))
	assert.Equal(t, []int64{2, 3, 5}, NPrimes(3, known))
}

func TestNthPrime(t *testing.T) {
	tests := []struct {
		n    int
		want int64
	}{
		{1, 2},
		{2, 3},
		{4, 7},
		{100, 541},
		{1000, 7919},
		{10000, 104729},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NthPrime(tt.n, nil), "n = %d", tt.n)
	}
}

func TestCompositesUpTo(t *testing.T) {
	assert.Equal(t, []int64{4, 6, 8, 9, 10, 12, 14, 15, 16, 18, 20}, CompositesUpTo(20, nil))
}

func TestNextPrime(t *testing.T) {
	assert.Equal(t, int64(2), NextPrime(nil))
	assert.Equal(t, int64(3), NextPrime([]int64{2}))
	assert.Equal(t, int64(5), NextPrime([]int64{2, 3}))
	assert.Equal(t, int64(101), NextPrime(sieve.UpTo(100, nil)))
	assert.Equal(t, int64(104729), NextPrime(NPrimes(9999, nil)))
}

func TestFactorize(t *testing.T) {
	assert.Equal(t, []int64{3, 5}, Factorize(15, false, nil))
	assert.Equal(t, []int64{}, Factorize(7, false, nil))
	assert.Equal(t, []int64{1, 7}, Factorize(7, true, nil))
}

func TestNthPrimeUpperBound(t *testing.T) {
	// Each tier's bound must reach at least the nth prime.
	for _, n := range []int{1, 5, 6, 1000, 8601, 8602, 15984, 15985, 39016, 39017, 50000} {
		bound := nthPrimeUpperBound(n)
		assert.True(t, int64(len(sieve.UpTo(bound, nil))) >= int64(n), "bound %d too low for n = %d", bound, n)
	}
}
