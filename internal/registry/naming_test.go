package registry

import "testing"

func TestApplyNamingTemplate(t *testing.T) {
	t.Parallel()

	metadata := map[string]string{
		"invoice_number": "INV-0042",
		"customer name":  "Acme Corp",
		"date":           "2024-06-01",
	}

	tests := []struct {
		name     string
		template string
		metadata map[string]string
		want     string
		wantOK   bool
	}{
		{
			name:     "all placeholders resolve",
			template: "{invoice_number}_{date}.pdf",
			metadata: metadata,
			want:     "INV-0042_2024-06-01.pdf",
			wantOK:   true,
		},
		{
			name:     "placeholder with space",
			template: "{customer name}-{invoice_number}",
			metadata: metadata,
			want:     "Acme Corp-INV-0042",
			wantOK:   true,
		},
		{
			name:     "unknown placeholder falls back",
			template: "{invoice_number}_{missing}.pdf",
			metadata: metadata,
			want:     "original.pdf",
			wantOK:   false,
		},
		{
			name:     "empty metadata value falls back",
			template: "{empty}.pdf",
			metadata: map[string]string{"empty": ""},
			want:     "original.pdf",
			wantOK:   false,
		},
		{
			name:     "empty template falls back",
			template: "  ",
			metadata: metadata,
			want:     "original.pdf",
			wantOK:   false,
		},
		{
			name:     "no placeholders is literal",
			template: "fixed-name.pdf",
			metadata: nil,
			want:     "fixed-name.pdf",
			wantOK:   true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ApplyNamingTemplate(tt.template, tt.metadata, "original.pdf")
			if got != tt.want || ok != tt.wantOK {
				t.Fatalf("ApplyNamingTemplate(%q) = (%q, %v), want (%q, %v)", tt.template, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
