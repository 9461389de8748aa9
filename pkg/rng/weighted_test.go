package rng

import (
	"crypto/sha256"
	"errors"
	"testing"
)

type rated struct {
	name string
	rate float64
}

func TestWeightedChoice_EmptyItems(t *testing.T) {
	configHash := sha256.Sum256([]byte("cfg"))
	r := NewRNG(1, "test", configHash[:])

	_, err := WeightedChoice(r, []rated{}, func(it rated) float64 { return it.rate })
	if !errors.Is(err, ErrEmptyDistribution) {
		t.Fatalf("expected ErrEmptyDistribution, got %v", err)
	}
}

func TestWeightedChoice_AllZeroWeights(t *testing.T) {
	configHash := sha256.Sum256([]byte("cfg"))
	r := NewRNG(1, "test", configHash[:])

	items := []rated{{"a", 0}, {"b", 0}}
	_, err := WeightedChoice(r, items, func(it rated) float64 { return it.rate })
	if !errors.Is(err, ErrEmptyDistribution) {
		t.Fatalf("expected ErrEmptyDistribution, got %v", err)
	}
}

func TestWeightedChoice_SingleNonZero(t *testing.T) {
	configHash := sha256.Sum256([]byte("cfg"))
	r := NewRNG(1, "test", configHash[:])

	items := []rated{{"a", 0}, {"b", 5}, {"c", 0}}
	for i := 0; i < 20; i++ {
		got, err := WeightedChoice(r, items, func(it rated) float64 { return it.rate })
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.name != "b" {
			t.Fatalf("expected only non-zero item to ever be chosen, got %q", got.name)
		}
	}
}

func TestWeightedChoice_Distribution(t *testing.T) {
	configHash := sha256.Sum256([]byte("cfg"))
	r := NewRNG(42, "test", configHash[:])

	items := []rated{{"common", 90}, {"rare", 10}}
	counts := map[string]int{}
	const trials = 2000
	for i := 0; i < trials; i++ {
		got, err := WeightedChoice(r, items, func(it rated) float64 { return it.rate })
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		counts[got.name]++
	}

	if counts["common"] == 0 || counts["rare"] == 0 {
		t.Fatalf("expected both items to be drawn at least once, got %v", counts)
	}
	if counts["rare"] >= counts["common"] {
		t.Fatalf("expected common to be drawn far more often than rare, got %v", counts)
	}
}

func TestWeightedChoice_NegativeWeightPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on negative weight")
		}
	}()

	configHash := sha256.Sum256([]byte("cfg"))
	r := NewRNG(1, "test", configHash[:])
	items := []rated{{"a", -1}}
	_, _ = WeightedChoice(r, items, func(it rated) float64 { return it.rate })
}
