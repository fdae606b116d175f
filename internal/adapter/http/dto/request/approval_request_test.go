package request

import (
	"testing"

	"reform_flow/internal/domain/entities"
)

func TestApprovalSubmitRequest_ResolveStatus(t *testing.T) {
	cases := []struct {
		in     string
		status entities.ApprovalStatus
		ok     bool
	}{
		{in: "APPROVED", status: entities.ApprovalStatusApproved, ok: true},
		{in: "approved", status: entities.ApprovalStatusApproved, ok: true},
		{in: " rejected ", status: entities.ApprovalStatusRejected, ok: true},
		{in: "changes_requested", status: entities.ApprovalStatusChangesRequested, ok: true},
		{in: "PENDING", ok: false},
		{in: "maybe", ok: false},
		{in: "", ok: false},
	}
	for _, tc := range cases {
		r := ApprovalSubmitRequest{Status: tc.in}
		status, ok := r.ResolveStatus()
		if ok != tc.ok {
			t.Fatalf("ResolveStatus(%q) ok = %t, want %t", tc.in, ok, tc.ok)
		}
		if ok && status != tc.status {
			t.Fatalf("ResolveStatus(%q) = %s, want %s", tc.in, status, tc.status)
		}
	}
}
