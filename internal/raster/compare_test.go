package raster

import (
	"errors"
	"testing"
)

func TestEqual(t *testing.T) {
	a := testPattern(t, 5, 4)
	b := testPattern(t, 5, 4)

	if !Equal(a, a) {
		t.Error("an image must equal itself")
	}
	if !Equal(a, b) {
		t.Error("identically constructed images must be equal")
	}

	if err := b.SetPixel(2, 2, RGBA(1, 2, 3, 4)); err != nil {
		t.Fatal(err)
	}
	if Equal(a, b) {
		t.Error("a single differing pixel must break equality")
	}

	c := testPattern(t, 4, 5)
	if Equal(a, c) {
		t.Error("differing dimensions must not compare equal")
	}
}

func TestEqualAlphaChannel(t *testing.T) {
	a, err := NewFilled(2, 2, RGBA(10, 10, 10, 255))
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewFilled(2, 2, RGBA(10, 10, 10, 128))
	if err != nil {
		t.Fatal(err)
	}

	if Equal(a, b) {
		t.Error("images differing only in alpha must not compare equal")
	}
}

func TestSimilarityIdentical(t *testing.T) {
	img := testPattern(t, 6, 6)

	score, err := Similarity(img, img)
	if err != nil {
		t.Fatalf("Similarity: %v", err)
	}
	if score != 1.0 {
		t.Errorf("self-similarity = %v, want 1.0", score)
	}
}

func TestSimilarityExtremes(t *testing.T) {
	black, err := New(8, 8) // zero-initialized: all channels 0
	if err != nil {
		t.Fatal(err)
	}
	white, err := NewFilled(8, 8, RGBA(255, 255, 255, 255))
	if err != nil {
		t.Fatal(err)
	}

	score, err := Similarity(black, white)
	if err != nil {
		t.Fatalf("Similarity: %v", err)
	}
	if score != 0.0 {
		t.Errorf("similarity of opposite extremes = %v, want 0.0", score)
	}
}

func TestSimilaritySymmetric(t *testing.T) {
	a := testPattern(t, 7, 5)
	b := Invert(a)

	ab, err := Similarity(a, b)
	if err != nil {
		t.Fatal(err)
	}
	ba, err := Similarity(b, a)
	if err != nil {
		t.Fatal(err)
	}
	if ab != ba {
		t.Errorf("similarity is not symmetric: %v vs %v", ab, ba)
	}
	if ab <= 0 || ab >= 1 {
		t.Errorf("partial difference score = %v, want strictly between 0 and 1", ab)
	}
}

func TestSimilarityDimensionMismatch(t *testing.T) {
	a := testPattern(t, 4, 4)
	b := testPattern(t, 4, 5)

	if _, err := Similarity(a, b); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("mismatched dimensions error = %v, want ErrDimensionMismatch", err)
	}
}

func TestSimilarityEmpty(t *testing.T) {
	a, err := New(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(0, 0)
	if err != nil {
		t.Fatal(err)
	}

	score, err := Similarity(a, b)
	if err != nil {
		t.Fatalf("Similarity: %v", err)
	}
	if score != 1.0 {
		t.Errorf("similarity of empty images = %v, want 1.0", score)
	}
}
