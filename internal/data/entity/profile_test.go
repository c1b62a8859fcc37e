package entity

import "testing"

func TestParseRole(t *testing.T) {
	tests := []struct {
		raw  string
		want UserRole
		ok   bool
	}{
		{"admin", RoleAdmin, true},
		{"customer", RoleCustomer, true},
		{"enterprise", RoleEnterprise, true},
		{"builder", RoleBuilder, true},
		{"supplier", RoleSupplier, true},
		{"", RoleCustomer, true},
		{"root", "", false},
		{"Enterprise", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseRole(tt.raw)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseRole(%q) = (%q, %v), want (%q, %v)", tt.raw, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseProfileKind(t *testing.T) {
	tests := []struct {
		segment string
		want    ProfileKind
		ok      bool
	}{
		{"enterprises", KindEnterprise, true},
		{"builders", KindBuilder, true},
		{"suppliers", KindSupplier, true},
		{"enterprise", "", false},
		{"users", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseProfileKind(tt.segment)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseProfileKind(%q) = (%q, %v), want (%q, %v)", tt.segment, got, ok, tt.want, tt.ok)
		}
	}
}

func TestKindRoleMapping(t *testing.T) {
	for _, kind := range []ProfileKind{KindEnterprise, KindBuilder, KindSupplier} {
		role := kind.Role()
		back, ok := KindForRole(role)
		if !ok || back != kind {
			t.Errorf("KindForRole(%q.Role()) = (%q, %v), want %q", kind, back, ok, kind)
		}
		if kind.Collection() == "" {
			t.Errorf("kind %q has no collection", kind)
		}
	}

	if _, ok := KindForRole(RoleCustomer); ok {
		t.Error("customer role maps to a profile kind")
	}
	if _, ok := KindForRole(RoleAdmin); ok {
		t.Error("admin role maps to a profile kind")
	}
}
