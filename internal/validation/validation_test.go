package validation

import "testing"

func TestRequired(t *testing.T) {
	v := Violations{}
	Required("name", "ok", v)
	Required("address", "   ", v)
	if len(v) != 1 {
		t.Fatalf("expected one violation, got %v", v)
	}
	if v["address"] != "required" {
		t.Errorf("address violation = %q, want required", v["address"])
	}
	if _, ok := v["name"]; ok {
		t.Errorf("name should not be flagged")
	}
}

func TestPositive(t *testing.T) {
	v := Violations{}
	PositiveFloat("price", 0, v)
	PositiveFloat("price_ok", 9.99, v)
	PositiveInt("quantity", -1, v)
	PositiveInt("quantity_ok", 3, v)
	if len(v) != 2 {
		t.Fatalf("expected 2 violations, got %v", v)
	}
}

func TestNonEmptySlice(t *testing.T) {
	v := Violations{}
	NonEmptySlice("lines", []int{}, v)
	if v["lines"] != "required" {
		t.Fatalf("expected lines required, got %v", v)
	}
}

func TestViolationsString(t *testing.T) {
	v := Violations{"b": "required", "a": "must_be_positive"}
	if got := v.String(); got != "a: must_be_positive; b: required" {
		t.Errorf("String() = %q", got)
	}
	if got := (Violations{}).String(); got != "" {
		t.Errorf("empty String() = %q, want empty", got)
	}
}
