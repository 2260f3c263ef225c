package models

import "testing"

func TestCartHasItemTitled(t *testing.T) {
	cart := &Cart{
		UserEmail: "ana@example.com",
		Items: []CartItem{
			{ProductID: "p1", Title: "Catering Package A"},
			{ProductID: "p2", Title: "Sound System"},
		},
	}

	if !cart.HasItemTitled("Sound System") {
		t.Error("expected existing title to be found")
	}
	if cart.HasItemTitled("Photo Booth") {
		t.Error("did not expect missing title to be found")
	}
	empty := &Cart{UserEmail: "ana@example.com"}
	if empty.HasItemTitled("Catering Package A") {
		t.Error("empty cart should hold no titles")
	}
}
