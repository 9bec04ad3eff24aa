package feedback

import (
	"testing"
	"time"
)

func TestFeedback_Expired(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	f := Feedback{Text: "Signed up", Kind: KindSuccess, ExpiresAt: now.Add(5 * time.Second)}

	if f.Expired(now) {
		t.Fatalf("feedback should be visible before expiry")
	}
	if !f.Expired(now.Add(5 * time.Second)) {
		t.Fatalf("feedback should expire at ExpiresAt")
	}
	if (Feedback{}).Expired(now) {
		t.Fatalf("zero expiry never expires")
	}
}

func TestFeedback_IsError(t *testing.T) {
	if !(Feedback{Kind: KindError}).IsError() {
		t.Fatalf("expected error kind")
	}
	if (Feedback{Kind: KindSuccess}).IsError() {
		t.Fatalf("did not expect error kind")
	}
}
