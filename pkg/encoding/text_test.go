package encoding

import "testing"

func TestDecodeLine(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"ascii", []byte("255 0 0 Red"), "255 0 0 Red"},
		{"utf8", []byte("0 0 255 Bleu foncé"), "0 0 255 Bleu foncé"},
		{"windows-1252", []byte("0 0 255 Bleu fonc\xe9"), "0 0 255 Bleu foncé"},
		{"empty", []byte{}, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DecodeLine(tc.in); got != tc.want {
				t.Errorf("DecodeLine(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestTrimBOM(t *testing.T) {
	if got := TrimBOM("\ufeffGIMP Palette"); got != "GIMP Palette" {
		t.Errorf("expected BOM to be removed, got %q", got)
	}
	if got := TrimBOM("GIMP Palette"); got != "GIMP Palette" {
		t.Errorf("expected unchanged string, got %q", got)
	}
}
