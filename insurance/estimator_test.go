package insurance

import "testing"

func TestEstimate(t *testing.T) {
	tests := []struct {
		name         string
		genericPrice float64
		insurer      string
		tier         int
		wantCopay    float64
		wantOOP      float64
		wantFinal    float64
		wantSavings  float64
	}{
		{
			name:         "government insurer tier 1 below copay",
			genericPrice: 15.50,
			insurer:      "CGHS",
			tier:         1,
			wantCopay:    25.0,
			wantOOP:      0,
			wantFinal:    15.50,
			wantSavings:  38.75,
		},
		{
			name:         "government insurer tier 2",
			genericPrice: 200.0,
			insurer:      "Ayushman Bharat",
			tier:         2,
			wantCopay:    75.0,
			wantOOP:      125.0,
			wantFinal:    75.0,
			wantSavings:  500.0,
		},
		{
			name:         "private insurer tier 1",
			genericPrice: 110.0,
			insurer:      "Star Health",
			tier:         1,
			wantCopay:    40.0,
			wantOOP:      70.0,
			wantFinal:    40.0,
			wantSavings:  275.0,
		},
		{
			name:         "private insurer tier 4",
			genericPrice: 1000.0,
			insurer:      "HDFC Ergo",
			tier:         4,
			wantCopay:    640.0,
			wantOOP:      360.0,
			wantFinal:    640.0,
			wantSavings:  2500.0,
		},
		{
			name:         "unknown insurer keeps full copay",
			genericPrice: 110.0,
			insurer:      "Some Other Insurer",
			tier:         1,
			wantCopay:    50.0,
			wantOOP:      60.0,
			wantFinal:    50.0,
			wantSavings:  275.0,
		},
		{
			name:         "unknown tier uses the low base",
			genericPrice: 110.0,
			insurer:      "Some Other Insurer",
			tier:         99,
			wantCopay:    15.0,
			wantOOP:      95.0,
			wantFinal:    15.0,
			wantSavings:  275.0,
		},
		{
			name:         "insurer match is exact not substring",
			genericPrice: 100.0,
			insurer:      "CGHS Plus",
			tier:         1,
			wantCopay:    50.0,
			wantOOP:      50.0,
			wantFinal:    50.0,
			wantSavings:  250.0,
		},
		{
			name:         "free drug",
			genericPrice: 0,
			insurer:      "ESI",
			tier:         3,
			wantCopay:    200.0,
			wantOOP:      0,
			wantFinal:    0,
			wantSavings:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Estimate(tt.genericPrice, tt.insurer, tt.tier)

			if got.Insurer != tt.insurer {
				t.Errorf("Insurer = %q, want %q", got.Insurer, tt.insurer)
			}
			if got.Tier != tt.tier {
				t.Errorf("Tier = %d, want %d", got.Tier, tt.tier)
			}
			if got.Copay != tt.wantCopay {
				t.Errorf("Copay = %v, want %v", got.Copay, tt.wantCopay)
			}
			if got.OutOfPocket != tt.wantOOP {
				t.Errorf("OutOfPocket = %v, want %v", got.OutOfPocket, tt.wantOOP)
			}
			if got.FinalCost != tt.wantFinal {
				t.Errorf("FinalCost = %v, want %v", got.FinalCost, tt.wantFinal)
			}
			if got.SavingsVsBrand != tt.wantSavings {
				t.Errorf("SavingsVsBrand = %v, want %v", got.SavingsVsBrand, tt.wantSavings)
			}
		})
	}
}

func TestEstimateCaseInsensitiveInsurer(t *testing.T) {
	lower := Estimate(100.0, "cghs", 1)
	upper := Estimate(100.0, "CGHS", 1)

	if lower.Copay != upper.Copay {
		t.Errorf("copay differs by insurer case: %v vs %v", lower.Copay, upper.Copay)
	}
	if lower.Copay != 25.0 {
		t.Errorf("Copay = %v, want 25.0", lower.Copay)
	}
}
