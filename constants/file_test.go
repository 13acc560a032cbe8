package constants

import "testing"

func TestMapExtToFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ext  string
		want string
	}{
		{ext: ".pdf", want: PDF},
		{ext: "PDF", want: PDF},
		{ext: ".JPG", want: IMAGE},
		{ext: "jpeg", want: IMAGE},
		{ext: ".png", want: IMAGE},
		{ext: ".tiff", want: IMAGE},
		{ext: ".docx", want: ""},
		{ext: "", want: ""},
	}
	for _, tt := range tests {
		if got := MapExtToFormat(tt.ext); got != tt.want {
			t.Fatalf("MapExtToFormat(%q) = %q, want %q", tt.ext, got, tt.want)
		}
	}
}
