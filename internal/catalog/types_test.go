package catalog

import (
	"encoding/json"
	"testing"
)

func TestImageRef_AcceptsStringAndObject(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"string", `"https://cdn.example/p.jpg"`, "https://cdn.example/p.jpg"},
		{"object", `{"url":"https://cdn.example/q.jpg"}`, "https://cdn.example/q.jpg"},
		{"null", `null`, ""},
		{"number", `7`, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var ref ImageRef
			if err := json.Unmarshal([]byte(tc.in), &ref); err != nil {
				t.Fatalf("unmarshal %s: %v", tc.in, err)
			}
			if ref.String() != tc.want {
				t.Fatalf("ref = %q, want %q", ref, tc.want)
			}
		})
	}
}

func TestProductSummary_KeyPrefersIDOverPK(t *testing.T) {
	var withBoth ProductSummary
	if err := json.Unmarshal([]byte(`{"id":42,"pk":7}`), &withBoth); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if withBoth.Key() != "42" {
		t.Fatalf("Key = %q, want 42", withBoth.Key())
	}

	var pkOnly ProductSummary
	if err := json.Unmarshal([]byte(`{"pk":"7"}`), &pkOnly); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if pkOnly.Key() != "7" {
		t.Fatalf("Key = %q, want 7", pkOnly.Key())
	}
}

func TestMoney_AcceptsStringAndNumber(t *testing.T) {
	var fromString Money
	if err := json.Unmarshal([]byte(`"19.99"`), &fromString); err != nil {
		t.Fatalf("unmarshal string: %v", err)
	}
	if fromString.String() != "19.99" {
		t.Fatalf("money = %q, want 19.99", fromString)
	}

	var fromNumber Money
	if err := json.Unmarshal([]byte(`19.99`), &fromNumber); err != nil {
		t.Fatalf("unmarshal number: %v", err)
	}
	if fromNumber.String() != "19.99" {
		t.Fatalf("money = %q, want 19.99", fromNumber)
	}
}

func TestDecodeSummaries_BareArrayAndEnvelope(t *testing.T) {
	bare := json.RawMessage(`[{"id":1,"name":"A"},{"id":2,"name":"B"}]`)
	items, err := decodeSummaries(bare)
	if err != nil {
		t.Fatalf("bare array: %v", err)
	}
	if len(items) != 2 || items[1].Name != "B" {
		t.Fatalf("bare array decoded %+v", items)
	}

	envelope := json.RawMessage(`{"count":1,"results":[{"id":"3","name":"C"}]}`)
	items, err = decodeSummaries(envelope)
	if err != nil {
		t.Fatalf("envelope: %v", err)
	}
	if len(items) != 1 || items[0].Key() != "3" {
		t.Fatalf("envelope decoded %+v", items)
	}
}

func TestProductRecord_Thumbs(t *testing.T) {
	var record ProductRecord
	payload := `{"id":9,"image":"main.jpg","image_2":"a.jpg","image_3":{"url":"b.jpg"},"image_4":null}`
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	thumbs := record.Thumbs()
	if len(thumbs) != 2 || thumbs[0] != "a.jpg" || thumbs[1] != "b.jpg" {
		t.Fatalf("thumbs = %v", thumbs)
	}
	if record.MainImage() != "main.jpg" {
		t.Fatalf("main image = %q", record.MainImage())
	}
}
