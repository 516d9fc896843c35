package models

import (
	"encoding/json"
	"testing"
)

func TestFlexIntUnmarshal(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{`650`, 650},
		{`"650"`, 650},
		{`650.9`, 650},
		{`"  42 "`, 42},
		{`"abc"`, 0},
		{`""`, 0},
		{`null`, 0},
		{`true`, 0},
	}
	for _, c := range cases {
		var f FlexInt
		if err := json.Unmarshal([]byte(c.in), &f); err != nil {
			t.Errorf("Unmarshal(%s) error: %v", c.in, err)
			continue
		}
		if f.Int() != c.want {
			t.Errorf("Unmarshal(%s) = %d, want %d", c.in, f.Int(), c.want)
		}
	}
}

func TestFlexIntInStruct(t *testing.T) {
	var sel AddOnSelection
	payload := `{"id":"a1","name":"Mobile Bar","price":"8000","category":"Drinks"}`
	if err := json.Unmarshal([]byte(payload), &sel); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if sel.Price.Int() != 8000 {
		t.Errorf("price = %d, want 8000", sel.Price.Int())
	}
}
