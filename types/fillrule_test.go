package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillRule_String(t *testing.T) {
	assert.Equal(t, "Winding", Winding.String())
	assert.Equal(t, "EvenOdd", EvenOdd.String())
}

func TestFillRule_String_Panics(t *testing.T) {
	assert.Panics(t, func() {
		_ = FillRule(42).String()
	})
}

func TestParseFillRule(t *testing.T) {
	tests := map[string]struct {
		in      string
		want    FillRule
		wantErr bool
	}{
		"winding lowercase": {in: "winding", want: Winding},
		"evenodd mixed case": {in: "EvenOdd", want: EvenOdd},
		"unknown": {in: "nonzero", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseFillRule(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
