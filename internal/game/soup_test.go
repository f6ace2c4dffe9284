package game

import (
	"math"
	"testing"
)

func TestSoupHeightIsPure(t *testing.T) {
	soup := Soup{Baseline: 540}

	for _, x := range []float64{0, 120, 399.5, 800} {
		for _, frame := range []uint64{0, 1, 140, 100000} {
			a := soup.HeightAt(x, frame)
			b := soup.HeightAt(x, frame)
			if a != b {
				t.Errorf("HeightAt(%v, %d) not deterministic: %v vs %v", x, frame, a, b)
			}
		}
	}
}

func TestSoupHeightBounded(t *testing.T) {
	soup := Soup{Baseline: 540}
	limit := soup.MaxAmplitude()

	for frame := uint64(0); frame < 2000; frame += 7 {
		for x := 0.0; x <= 800; x += 13 {
			h := soup.HeightAt(x, frame)
			if math.Abs(h-soup.Baseline) > limit {
				t.Fatalf("HeightAt(%v, %d) = %v, outside baseline±%v", x, frame, h, limit)
			}
		}
	}
}

func TestSoupHeightAtRest(t *testing.T) {
	soup := Soup{Baseline: 540}

	// Both sine terms vanish at x=0, frame=0
	if h := soup.HeightAt(0, 0); h != 540 {
		t.Errorf("HeightAt(0, 0) = %v, expected exactly the baseline 540", h)
	}
}

func TestSoupSurfaceAnimates(t *testing.T) {
	soup := Soup{Baseline: 540}

	h1 := soup.HeightAt(0, 10)
	h2 := soup.HeightAt(0, 20)
	if h1 == h2 {
		t.Error("Surface should move between frames at a fixed x")
	}

	h3 := soup.HeightAt(100, 10)
	if h1 == h3 {
		t.Error("Surface should vary along x within a frame")
	}
}
