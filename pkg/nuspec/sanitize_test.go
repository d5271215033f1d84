package nuspec

import (
	"bytes"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  []byte
	}{
		{
			name:  "no artifact is untouched",
			input: []byte("<package><metadata/></package>"),
			want:  []byte("<package><metadata/></package>"),
		},
		{
			name:  "BOM only",
			input: append([]byte{0xEF, 0xBB, 0xBF}, []byte("<package/>")...),
			want:  []byte("<package/>"),
		},
		{
			name:  "declaration on its own line",
			input: []byte("<?xml version=\"1.0\"?>\n<package/>"),
			want:  []byte("<package/>"),
		},
		{
			name:  "BOM plus declaration plus content on same line",
			input: append([]byte{0xEF, 0xBB, 0xBF}, []byte("<?xml version=\"1.0\" encoding=\"utf-8\"?><package/>")...),
			want:  []byte("<package/>"),
		},
		{
			name:  "unterminated declaration left for the parser",
			input: []byte("<?xml version=\"1.0\""),
			want:  []byte("<?xml version=\"1.0\""),
		},
		{
			name:  "empty input",
			input: nil,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.input)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := [][]byte{
		[]byte("<?xml version=\"1.0\"?>\n<package><metadata/></package>"),
		[]byte("<package><metadata/></package>"),
		append([]byte{0xEF, 0xBB, 0xBF}, []byte("<?xml version=\"1.0\"?><package/>")...),
	}
	for _, input := range inputs {
		once := Sanitize(input)
		twice := Sanitize(once)
		if !bytes.Equal(once, twice) {
			t.Errorf("Sanitize not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}
