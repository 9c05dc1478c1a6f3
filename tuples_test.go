package primes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTwinPrimesUpTo(t *testing.T) {
	want := [][2]int64{{3, 5}, {5, 7}, {11, 13}, {17, 19}}
	assert.Equal(t, want, TwinPrimesUpTo(20, nil))
	assert.Empty(t, TwinPrimesUpTo(4, nil))
}

func TestCousinPrimesUpTo(t *testing.T) {
	want := [][2]int64{{3, 7}, {7, 11}, {13, 17}, {19, 23}}
	assert.Equal(t, want, CousinPrimesUpTo(23, nil))
}

func TestSexyPrimesUpTo(t *testing.T) {
	want := [][2]int64{{5, 11}, {7, 13}, {11, 17}, {13, 19}}
	assert.Equal(t, want, SexyPrimesUpTo(20, nil))
}

func TestPrimeTripletsUpTo(t *testing.T) {
	want := [][3]int64{{5, 7, 11}, {7, 11, 13}, {11, 13, 17}, {13, 17, 19}}
	assert.Equal(t, want, PrimeTripletsUpTo(20, nil))
}

func TestPrimeQuadrupletsUpTo(t *testing.T) {
	want := [][4]int64{{5, 7, 11, 13}, {11, 13, 17, 19}}
	assert.Equal(t, want, PrimeQuadrupletsUpTo(20, nil))
}
