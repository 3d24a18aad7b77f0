package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"gemini-chatbot/pkg/response"
)

func TestDateTimeMarshalJSON(t *testing.T) {
	tm := time.Date(2024, 5, 1, 15, 30, 0, 0, time.Local)

	b, err := json.Marshal(response.DateTime(tm))
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}
	if got, want := string(b), `"2024-05-01 15:30:00"`; got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestDateTimeMarshalJSON_ConvertsToLocal(t *testing.T) {
	tm := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
	want, _ := json.Marshal(tm.Local().Format(response.DateTimeFormat))

	b, err := json.Marshal(response.DateTime(tm))
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}
	if string(b) != string(want) {
		t.Errorf("expected %s, got %s", want, b)
	}
}
