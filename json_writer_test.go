package brickfolio

import (
	"encoding/json"
	"testing"
)

func TestJsonObjectWriter(t *testing.T) {
	t.Run("empty object", func(t *testing.T) {
		var w jsonObjectWriter
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "{}"; string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("fields in call order", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("name", "ten-units")
		w.Append("maxProperties", 10)
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"name":"ten-units","maxProperties":10}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("optional skips zero values", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("year", 0) // explicit Append keeps the zero.
		w.Optional("summary", "")
		w.Optional("owner", "alice")
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"year":0,"owner":"alice"}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

}

// The scenario encoding is canonical: same scenario, same line, byte for
// byte, so owner files diff cleanly under version control.
func TestScenarioMarshal_CanonicalOrder(t *testing.T) {
	sc := &Scenario{
		Owner:    "alice",
		Name:     "draft",
		Property: PropertyAssumptions{PurchasePrice: 500_000, LoanAmount: 500_000, InterestRate: 4, PurchaseInterval: 1, MaxProperties: 1, LoanTenureYears: 30, StartYear: 2025},
	}

	first, err := json.Marshal(sc)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	second, err := json.Marshal(sc)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if string(first) != string(second) {
		t.Errorf("encoding is not canonical:\n%s\n%s", first, second)
	}

	var decoded Scenario
	if err := json.Unmarshal(first, &decoded); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if decoded.Name != sc.Name || decoded.Property != sc.Property {
		t.Errorf("round trip lost data: %+v", decoded)
	}
}
