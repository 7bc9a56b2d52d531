package core

import "testing"

func topicItems() []PickerItem {
	return []PickerItem{
		{ID: "Streamlit Basics", Label: "Streamlit Basics"},
		{ID: "GitHub Commands", Label: "GitHub Commands"},
		{ID: "Kolada API", Label: "Kolada API"},
		{ID: "Perplexity API", Label: "Perplexity API"},
	}
}

func TestPickerLettersFilterInsteadOfMoving(t *testing.T) {
	p := NewPicker("topics", topicItems())
	for _, k := range []string{"k", "o", "l"} {
		if res := p.HandleKey(k); res.Action != PickerActionFiltered {
			t.Fatalf("key %q action = %v, want filtered", k, res.Action)
		}
	}
	items := p.Items()
	if len(items) != 1 || items[0].ID != "Kolada API" {
		t.Fatalf("filter kol = %+v", items)
	}
	res := p.HandleKey("enter")
	if res.Action != PickerActionSelected || res.Item.ID != "Kolada API" {
		t.Fatalf("enter = %+v", res)
	}
}

func TestPickerRanksWordStartRunsFirst(t *testing.T) {
	p := NewPicker("topics", topicItems())
	p.SetQuery("api")
	items := p.Items()
	if len(items) != 2 {
		t.Fatalf("api should match two topics, got %+v", items)
	}
	// "Kolada" contains an early 'a' so its greedy match is scattered.
	if items[0].ID != "Perplexity API" || items[1].ID != "Kolada API" {
		t.Fatalf("api ranking = %+v", items)
	}
}

func TestPickerArrowsMoveAndClamp(t *testing.T) {
	p := NewPicker("topics", topicItems())
	if res := p.HandleKey("up"); res.Action != PickerActionNone {
		t.Fatalf("up at top should be a no-op, got %v", res.Action)
	}
	p.HandleKey("down")
	p.HandleKey("ctrl+n")
	if p.Cursor() != 2 {
		t.Fatalf("cursor = %d, want 2", p.Cursor())
	}
	for i := 0; i < 10; i++ {
		p.HandleKey("down")
	}
	if p.Cursor() != 3 {
		t.Fatalf("cursor should clamp at last row, got %d", p.Cursor())
	}
}

func TestPickerBackspaceAndNoMatch(t *testing.T) {
	p := NewPicker("topics", topicItems())
	p.HandleKey("z")
	p.HandleKey("z")
	if len(p.Items()) != 0 {
		t.Fatalf("zz should match nothing")
	}
	if res := p.HandleKey("enter"); res.Action != PickerActionNone {
		t.Fatalf("enter with no rows = %v", res.Action)
	}
	p.HandleKey("backspace")
	p.HandleKey("backspace")
	if p.Query() != "" || len(p.Items()) != 4 {
		t.Fatalf("backspace should restore all rows, query=%q rows=%d", p.Query(), len(p.Items()))
	}
	if res := p.HandleKey("esc"); res.Action != PickerActionCancelled {
		t.Fatalf("esc = %v", res.Action)
	}
}

func TestPickerSetCursorByID(t *testing.T) {
	p := NewPicker("topics", topicItems())
	p.SetCursorByID("Perplexity API")
	item, ok := p.CurrentItem()
	if !ok || item.ID != "Perplexity API" {
		t.Fatalf("current = %+v", item)
	}
}
