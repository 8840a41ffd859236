package agent

import (
	"context"
	"strings"
	"testing"
)

// baseArgs returns the reference projection request as the model would
// supply it: every numeric argument arrives as a float64.
func baseArgs(t *testing.T) map[string]any {
	t.Helper()
	return map[string]any{
		"purchase_price":    500_000.0,
		"loan_amount":       500_000.0,
		"interest_rate":     4.0,
		"appreciation_rate": 3.0,
		"rental_yield":      8.0,
		"loan_tenure_years": 30.0,
	}
}

func TestProjectTool_Call(t *testing.T) {
	tool := &projectTool{}

	t.Run("projection summary", func(t *testing.T) {
		fresp := tool.Call(context.Background(), "call-1", baseArgs(t))
		if err, ok := fresp.Response["error"]; ok {
			t.Fatalf("unexpected error: %v", err)
		}
		output, _ := fresp.Response["output"].(string)
		for _, want := range []string{"Year 10: 10 properties", "Year 30:"} {
			if !strings.Contains(output, want) {
				t.Errorf("projection output is missing %q:\n%s", want, output)
			}
		}
	})

	// Model-supplied assumptions are untrusted input: a degenerate
	// purchase interval must come back as a tool error, never crash the
	// session.
	t.Run("invalid arguments are rejected", func(t *testing.T) {
		testCases := []struct {
			name string
			key  string
			val  float64
			want string
		}{
			{"zero purchase interval", "purchase_interval", 0, "purchase_interval"},
			{"negative purchase interval", "purchase_interval", -2, "purchase_interval"},
			{"zero purchase price", "purchase_price", 0, "purchase_price"},
			{"zero loan tenure", "loan_tenure_years", 0, "loan_tenure_years"},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				args := baseArgs(t)
				args[tc.key] = tc.val
				fresp := tool.Call(context.Background(), "call-2", args)
				errMsg, ok := fresp.Response["error"].(string)
				if !ok {
					t.Fatalf("want an error response, got %v", fresp.Response)
				}
				if !strings.Contains(errMsg, tc.want) {
					t.Errorf("error %q does not name %q", errMsg, tc.want)
				}
			})
		}
	})
}
