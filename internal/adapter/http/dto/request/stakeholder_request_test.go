package request

import "testing"

func TestStakeholderRespondRequest_ResolveAccept(t *testing.T) {
	cases := []struct {
		in     string
		accept bool
		ok     bool
	}{
		{in: "accept", accept: true, ok: true},
		{in: "ACCEPT", accept: true, ok: true},
		{in: " decline ", accept: false, ok: true},
		{in: "yes", ok: false},
		{in: "", ok: false},
	}
	for _, tc := range cases {
		r := StakeholderRespondRequest{Action: tc.in}
		accept, ok := r.ResolveAccept()
		if ok != tc.ok {
			t.Fatalf("ResolveAccept(%q) ok = %t, want %t", tc.in, ok, tc.ok)
		}
		if ok && accept != tc.accept {
			t.Fatalf("ResolveAccept(%q) = %t, want %t", tc.in, accept, tc.accept)
		}
	}
}

func TestProposalRequest_ResolveProductName(t *testing.T) {
	r := ProposalRequest{ProductName: "  Chocolate Bar 90g  "}
	if got := r.ResolveProductName(); got != "Chocolate Bar 90g" {
		t.Fatalf("expected trimmed name, got %q", got)
	}
}
