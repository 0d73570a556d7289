package entities

import "testing"

func TestQuoteStatusCanTransition(t *testing.T) {
	cases := []struct {
		from, to QuoteStatus
		want     bool
	}{
		{QuoteStatusPending, QuoteStatusApproved, true},
		{QuoteStatusPending, QuoteStatusRejected, true},
		{QuoteStatusPending, QuoteStatusConverted, false},
		{QuoteStatusApproved, QuoteStatusRejected, false},
		{QuoteStatusApproved, QuoteStatusConverted, false},
		{QuoteStatusRejected, QuoteStatusApproved, false},
		{QuoteStatusConverted, QuoteStatusPending, false},
		{QuoteStatusPending, QuoteStatusPending, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransition(tc.to); got != tc.want {
			t.Fatalf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestValidProjectStatus(t *testing.T) {
	for _, s := range []ProjectStatus{ProjectStatusPending, ProjectStatusInProgress, ProjectStatusCompleted, ProjectStatusCancelled} {
		if !ValidProjectStatus(s) {
			t.Fatalf("expected %s valid", s)
		}
	}
	if ValidProjectStatus("archived") {
		t.Fatalf("expected archived invalid")
	}
}

func TestValidPaymentStatus(t *testing.T) {
	for _, s := range []PaymentStatus{PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusRefunded} {
		if !ValidPaymentStatus(s) {
			t.Fatalf("expected %s valid", s)
		}
	}
	if ValidPaymentStatus("charged_back") {
		t.Fatalf("expected charged_back invalid")
	}
}

func TestActorIsAdmin(t *testing.T) {
	if !(Actor{ID: "a", Role: RoleAdmin}).IsAdmin() {
		t.Fatalf("expected admin")
	}
	if (Actor{ID: "u", Role: RoleClient}).IsAdmin() {
		t.Fatalf("client is not admin")
	}
	if (Actor{Role: RoleAnonymous}).IsAdmin() {
		t.Fatalf("anonymous is not admin")
	}
}
