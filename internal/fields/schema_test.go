package fields

import (
	"encoding/json"
	"testing"
)

func TestParseFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		wantLen int
		wantErr bool
	}{
		{
			name:    "valid list",
			raw:     `[{"name":"invoice_number","type":"string"},{"name":"total","type":"number","description":"grand total"}]`,
			wantLen: 2,
		},
		{
			name: "empty input",
			raw:  "",
		},
		{
			name:    "empty array",
			raw:     `[]`,
			wantLen: 0,
		},
		{
			name:    "missing name",
			raw:     `[{"type":"string"}]`,
			wantErr: true,
		},
		{
			name:    "blank name",
			raw:     `[{"name":"","type":"string"}]`,
			wantErr: true,
		},
		{
			name:    "unknown type",
			raw:     `[{"name":"total","type":"decimal"}]`,
			wantErr: true,
		},
		{
			name:    "unexpected property",
			raw:     `[{"name":"total","type":"number","required":true}]`,
			wantErr: true,
		},
		{
			name:    "not an array",
			raw:     `{"name":"total","type":"number"}`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseFields(json.RawMessage(tt.raw))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseFields(%s) succeeded, want error", tt.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFields: %v", err)
			}
			if len(got) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(got), tt.wantLen)
			}
		})
	}
}

func TestBuildMetadataJSONSchemaValidation(t *testing.T) {
	t.Parallel()

	schema := BuildMetadataJSONSchema([]Field{
		{Name: "customer", Type: "string"},
		{Name: "total", Type: "number"},
		{Name: "issued", Type: "date"},
	})

	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{
			name: "all fields valid",
			data: `{"customer":"Acme","total":"129.95","issued":"2024-06-01"}`,
		},
		{
			name: "extra keys allowed",
			data: `{"customer":"Acme","notes":"hand-written"}`,
		},
		{
			name:    "number not numeric",
			data:    `{"total":"about a hundred"}`,
			wantErr: true,
		},
		{
			name:    "date malformed",
			data:    `{"issued":"06/01/2024"}`,
			wantErr: true,
		},
		{
			name: "negative and integer numbers",
			data: `{"total":"-42"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateJSONAgainstSchema(schema, []byte(tt.data))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateJSONAgainstSchema(%s) error = %v, wantErr %v", tt.data, err, tt.wantErr)
			}
		})
	}
}
