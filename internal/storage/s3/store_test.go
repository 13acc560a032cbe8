package s3

import "testing"

func TestApplyPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{name: "no prefix", prefix: "", key: "abc.pdf", want: "abc.pdf"},
		{name: "simple prefix", prefix: "docs", key: "abc.pdf", want: "docs/abc.pdf"},
		{name: "key leading slash", prefix: "docs", key: "/abc.pdf", want: "docs/abc.pdf"},
		{name: "nested prefix", prefix: "tenant/uploads", key: "abc.pdf", want: "tenant/uploads/abc.pdf"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := applyPrefix(tt.prefix, tt.key); got != tt.want {
				t.Fatalf("applyPrefix(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
			}
		})
	}
}

func TestNormalizePrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "docs", want: "docs"},
		{in: "/docs/", want: "docs"},
		{in: "tenant/uploads/", want: "tenant/uploads"},
	}
	for _, tt := range tests {
		if got := normalizePrefix(tt.in); got != tt.want {
			t.Fatalf("normalizePrefix(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
