package money

import (
	"encoding/json"
	"testing"
)

// TestFromPesos tests peso to centavo conversion
func TestFromPesos(t *testing.T) {
	tests := []struct {
		name  string
		pesos float64
		want  Cents
	}{
		{"whole amount", 1500, 150000},
		{"with centavos", 1500.50, 150050},
		{"rounds half up", 0.005, 1},
		{"zero", 0, 0},
		{"negative", -500, -50000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromPesos(tt.pesos); got != tt.want {
				t.Errorf("FromPesos(%v) = %d, want %d", tt.pesos, got, tt.want)
			}
		})
	}
}

// TestString tests peso formatting
func TestString(t *testing.T) {
	tests := []struct {
		name  string
		cents Cents
		want  string
	}{
		{"whole amount", 150000, "₱1,500"},
		{"with centavos", 150050, "₱1,500.50"},
		{"under a thousand", 80000, "₱800"},
		{"millions", 123456789, "₱1,234,567.89"},
		{"zero", 0, "₱0"},
		{"negative", -50000, "-₱500"},
		{"single centavo", 1, "₱0.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cents.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestJSON tests the peso-number wire format
func TestJSON(t *testing.T) {
	tests := []struct {
		name  string
		cents Cents
		want  string
	}{
		{"whole amount marshals as integer", 150000, "1500"},
		{"fractional amount keeps centavos", 150050, "1500.5"},
		{"zero", 0, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.cents)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Marshal = %s, want %s", data, tt.want)
			}

			var back Cents
			if err := json.Unmarshal(data, &back); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if back != tt.cents {
				t.Errorf("round trip = %d, want %d", back, tt.cents)
			}
		})
	}
}

// TestMul tests day-count scaling
func TestMul(t *testing.T) {
	if got := Cents(150000).Mul(3); got != 450000 {
		t.Errorf("Mul(3) = %d, want 450000", got)
	}
	if got := Cents(80000).Mul(0); got != 0 {
		t.Errorf("Mul(0) = %d, want 0", got)
	}
}
