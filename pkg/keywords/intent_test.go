package keywords

import "testing"

func TestInferIntent(t *testing.T) {
	tests := []struct {
		keyword string
		want    Intent
	}{
		{"buy solar panels", IntentTransactional},
		{"solar panel price comparison", IntentTransactional},
		{"how to install solar panels", IntentInformational},
		{"solar inverter review", IntentInformational},
		{"login portal", IntentNavigational},
		{"solar panel", IntentInformational},
	}

	for _, tt := range tests {
		if got := InferIntent(tt.keyword); got != tt.want {
			t.Errorf("InferIntent(%q) = %v, want %v", tt.keyword, got, tt.want)
		}
	}
}

func TestInferIntent_TransactionalWinsTies(t *testing.T) {
	// "best" is transactional and "guide" is informational; the
	// transactional check runs first.
	if got := InferIntent("best solar guide"); got != IntentTransactional {
		t.Errorf("InferIntent = %v, want %v", got, IntentTransactional)
	}
}
