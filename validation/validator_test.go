package validation

import (
	"strings"
	"testing"

	"github.com/medfinder/medfinder-api/entities"
)

func TestValidateInput(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple drug name", "lisinopril", false},
		{"name with strength", "metformin 500mg", false},
		{"name with punctuation", "co-amoxiclav 625 mg", false},
		{"name with slash", "amoxicillin/clavulanate", false},
		{"empty input", "", true},
		{"whitespace only", "   ", true},
		{"too long", strings.Repeat("a", 201), true},
		{"script tag", "<script>alert(1)</script>", true},
		{"sql injection", "lisinopril' or 1=1", true},
		{"sql comment", "lisinopril--", true},
		{"command injection", "lisinopril `whoami`", true},
		{"path traversal", "../etc/passwd", true},
		{"disallowed characters", "drug@name!", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateInput(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateInput(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateLocation(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name     string
		location string
		wantErr  bool
	}{
		{"city", "Delhi", false},
		{"area with space", "Connaught Place", false},
		{"empty", "", true},
		{"too long", strings.Repeat("x", 101), true},
		{"dangerous content", "Delhi; drop table", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateLocation(tt.location)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLocation(%q) error = %v, wantErr %v", tt.location, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePrice(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		price   float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"normal price", 110.50, false},
		{"large but allowed", 1000000, false},
		{"negative", -1, true},
		{"too large", 1000001, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidatePrice(tt.price)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePrice(%v) error = %v, wantErr %v", tt.price, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDrugRecord(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		record  *entities.DrugRecord
		wantErr bool
	}{
		{
			name: "valid record",
			record: &entities.DrugRecord{
				GenericName: "losartan",
				BrandName:   "Cozaar",
				RxNormID:    "52175",
				AtcCode:     "C09CA01",
			},
			wantErr: false,
		},
		{
			name:    "brand name optional",
			record:  &entities.DrugRecord{GenericName: "losartan"},
			wantErr: false,
		},
		{
			name:    "nil record",
			record:  nil,
			wantErr: true,
		},
		{
			name:    "missing generic name",
			record:  &entities.DrugRecord{BrandName: "Cozaar"},
			wantErr: true,
		},
		{
			name:    "dangerous generic name",
			record:  &entities.DrugRecord{GenericName: "<script>x</script>"},
			wantErr: true,
		},
		{
			name: "rxnorm id too long",
			record: &entities.DrugRecord{
				GenericName: "losartan",
				RxNormID:    strings.Repeat("1", 21),
			},
			wantErr: true,
		},
		{
			name: "atc code too long",
			record: &entities.DrugRecord{
				GenericName: "losartan",
				AtcCode:     strings.Repeat("A", 21),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateDrugRecord(tt.record)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDrugRecord() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
