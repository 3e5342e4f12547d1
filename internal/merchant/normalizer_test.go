package merchant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeVendor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercases and strips punctuation", input: " Walmart #123! ", want: "walmart 123"},
		{name: "collapses internal whitespace", input: "WHOLE   FOODS\tMARKET", want: "whole foods market"},
		{name: "card processor prefix", input: "SQ *Blue Bottle", want: "sq blue bottle"},
		{name: "empty string", input: "", want: ""},
		{name: "only punctuation", input: "***!!!", want: ""},
		{name: "digits preserved", input: "7-Eleven 22941", want: "7 eleven 22941"},
		{name: "unicode stripped", input: "Café Déjà Vu", want: "caf d j vu"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeVendor(tt.input))
		})
	}
}

func TestNormalizeVendor_Idempotent(t *testing.T) {
	inputs := []string{
		" Walmart #123! ",
		"SQ *BLUE BOTTLE COFFEE",
		"already normal",
		"",
		"42",
	}

	for _, input := range inputs {
		once := NormalizeVendor(input)
		assert.Equal(t, once, NormalizeVendor(once), "input %q", input)
	}
}
