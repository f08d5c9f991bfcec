package utils

import "testing"

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"Valid", "abc123!x", true},
		{"ValidWithSymbol", "pass=word9", true},
		{"TooShort", "a1!", false},
		{"NoNumber", "password!", false},
		{"NoSpecial", "password1", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidatePassword(tt.password); got != tt.want {
				t.Errorf("ValidatePassword(%q) = %v, want %v", tt.password, got, tt.want)
			}
		})
	}
}

func TestValidateHabitColor(t *testing.T) {
	tests := []struct {
		name  string
		color string
		want  bool
	}{
		{"EmptyUsesDefault", "", true},
		{"ShortHex", "#fff", true},
		{"LongHex", "#4ade80", true},
		{"UpperHex", "#4ADE80", true},
		{"MissingHash", "4ade80", false},
		{"BadLength", "#4ade8", false},
		{"NonHex", "#gggggg", false},
		{"Named", "green", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateHabitColor(tt.color); got != tt.want {
				t.Errorf("ValidateHabitColor(%q) = %v, want %v", tt.color, got, tt.want)
			}
		})
	}
}
