package models

import (
	"testing"
)

func TestReviewSanitize(t *testing.T) {
	review := Review{
		Name:    "   ",
		Comment: "  great venue  ",
		Rating:  9,
		Images:  []string{"a.jpg", "b.jpg", "a.jpg"},
	}
	review.Sanitize()

	if review.Name != "Anonymous" {
		t.Errorf("blank author should publish as Anonymous, got %q", review.Name)
	}
	if review.Comment != "great venue" {
		t.Errorf("comment should be trimmed, got %q", review.Comment)
	}
	if review.Rating != 5 {
		t.Errorf("rating should clamp to 5, got %d", review.Rating)
	}
	if len(review.Images) != 2 {
		t.Errorf("duplicate images should collapse, got %v", review.Images)
	}

	low := Review{Name: "Ana", Rating: 0}
	low.Sanitize()
	if low.Rating != 1 {
		t.Errorf("rating should clamp to 1, got %d", low.Rating)
	}
	if low.Name != "Ana" {
		t.Errorf("non-empty author should be kept, got %q", low.Name)
	}
}
