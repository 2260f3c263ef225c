package models

import (
	"testing"
)

func TestDerivePaymentStatus(t *testing.T) {
	cases := []struct {
		name       string
		amountPaid float64
		totalPrice float64
		want       PaymentStatus
	}{
		{"nothing paid", 0, 5000, PaymentPending},
		{"negative amount", -100, 5000, PaymentPending},
		{"partial payment", 2500, 5000, PaymentPartiallyPaid},
		{"exact payment", 5000, 5000, PaymentFullyPaid},
		{"overpayment clamps", 6000, 5000, PaymentFullyPaid},
		{"zero total and zero paid", 0, 0, PaymentPending},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DerivePaymentStatus(tc.amountPaid, tc.totalPrice)
			if got != tc.want {
				t.Errorf("DerivePaymentStatus(%v, %v) = %q, want %q", tc.amountPaid, tc.totalPrice, got, tc.want)
			}
		})
	}
}

func TestCanTransition(t *testing.T) {
	allowed := map[[2]BookingStatus]bool{
		{BookingPending, BookingApproved}:   true,
		{BookingPending, BookingCancelled}:  true,
		{BookingApproved, BookingFinished}:  true,
		{BookingApproved, BookingCancelled}: true,
	}

	statuses := []BookingStatus{BookingPending, BookingApproved, BookingFinished, BookingCancelled}
	for _, from := range statuses {
		for _, to := range statuses {
			want := allowed[[2]BookingStatus{from, to}]
			if got := CanTransition(from, to); got != want {
				t.Errorf("CanTransition(%q, %q) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestHasOpenRequest(t *testing.T) {
	if (Booking{}).HasOpenRequest() {
		t.Error("booking without requests should not report an open request")
	}

	pending := Booking{CancellationRequest: &CancellationRequest{Status: RequestPending}}
	if !pending.HasOpenRequest() {
		t.Error("pending cancellation request should block a new request")
	}

	approved := Booking{RescheduleRequest: &RescheduleRequest{Status: RequestApproved}}
	if !approved.HasOpenRequest() {
		t.Error("approved reschedule request should block a new request")
	}

	// A rejected request reopens the door for another one.
	rejected := Booking{
		CancellationRequest: &CancellationRequest{Status: RequestRejected},
		RescheduleRequest:   &RescheduleRequest{Status: RequestRejected},
	}
	if rejected.HasOpenRequest() {
		t.Error("rejected requests should not block a new request")
	}
}

func TestSupplierIDs(t *testing.T) {
	booking := Booking{Products: []CartItem{
		{SupplierID: "sup-1"},
		{SupplierID: "sup-2"},
		{SupplierID: "sup-1"},
		{SupplierID: ""},
	}}

	ids := booking.SupplierIDs()
	if len(ids) != 2 {
		t.Fatalf("expected 2 distinct supplier ids, got %d: %v", len(ids), ids)
	}
	if ids[0] != "sup-1" || ids[1] != "sup-2" {
		t.Errorf("unexpected supplier ids: %v", ids)
	}
}
