package catalyst

import (
	"encoding/json"
	"testing"
)

func TestDecodeEventListEnvelopeShapes(t *testing.T) {
	record := `{"ROWID":"101","name":"Demo Day","slug":"demo-day","capacity":120}`

	cases := []struct {
		name string
		body string
	}{
		{"catalyst envelope", `{"data":[{"Events":` + record + `}]}`},
		{"plain data wrapper", `{"data":[` + record + `]}`},
		{"single wrapped record", `{"data":{"Events":` + record + `}}`},
		{"flat array", `[` + record + `]`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			events, err := decodeEventList([]byte(tc.body))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(events) != 1 {
				t.Fatalf("expected 1 event, got %d", len(events))
			}
			if events[0].Slug != "demo-day" {
				t.Errorf("unexpected slug %q", events[0].Slug)
			}
			if events[0].RowID != "101" {
				t.Errorf("unexpected ROWID %q", events[0].RowID)
			}
		})
	}
}

func TestDecodeEventListEmptyData(t *testing.T) {
	events, err := decodeEventList([]byte(`{"data":[]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("expected empty list, got %d", len(events))
	}
}

func TestDecodeEventListUnrecognized(t *testing.T) {
	if _, err := decodeEventList([]byte(`{"message":"nope"}`)); err == nil {
		t.Error("expected an error for an unrecognized shape")
	}
}

func TestFlexNumber(t *testing.T) {
	var rec struct {
		Capacity FlexNumber `json:"capacity"`
	}

	cases := []struct {
		body   string
		want   int
		wantOK bool
	}{
		{`{"capacity":120}`, 120, true},
		{`{"capacity":"80"}`, 80, true},
		{`{"capacity":null}`, 0, false},
		{`{"capacity":"lots"}`, 0, false},
		{`{}`, 0, false},
	}

	for _, tc := range cases {
		rec.Capacity = ""
		if err := json.Unmarshal([]byte(tc.body), &rec); err != nil {
			t.Fatalf("unmarshal %s: %v", tc.body, err)
		}
		got, ok := rec.Capacity.Int()
		if ok != tc.wantOK || got != tc.want {
			t.Errorf("%s: Int() = (%d, %v), want (%d, %v)", tc.body, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestRemoteEventIdentifier(t *testing.T) {
	withID := &RemoteEvent{ID: "evt-1", RowID: "101"}
	if withID.Identifier() != "evt-1" {
		t.Error("explicit id should win over ROWID")
	}
	rowOnly := &RemoteEvent{RowID: "101"}
	if rowOnly.Identifier() != "101" {
		t.Error("ROWID should be the fallback")
	}
}
