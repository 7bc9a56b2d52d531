package core

import (
	"sort"
	"strings"
)

type PickerItem struct {
	ID     string
	Label  string
	Meta   string
	Search string
}

type PickerAction int

const (
	PickerActionNone PickerAction = iota
	PickerActionMoved
	PickerActionFiltered
	PickerActionSelected
	PickerActionCancelled
)

type PickerResult struct {
	Action PickerAction
	Item   PickerItem
}

// Picker is a filterable single-choice list. Every printable key extends the
// query, so letters and digits filter; arrows and ctrl+p/ctrl+n move.
type Picker struct {
	title    string
	items    []PickerItem
	filtered []PickerItem
	query    string
	cursor   int
}

func NewPicker(title string, items []PickerItem) *Picker {
	p := &Picker{title: strings.TrimSpace(title)}
	p.SetItems(items)
	return p
}

func (p *Picker) Title() string {
	if p == nil {
		return ""
	}
	return p.title
}

func (p *Picker) Query() string {
	if p == nil {
		return ""
	}
	return p.query
}

func (p *Picker) Cursor() int {
	if p == nil {
		return 0
	}
	return p.cursor
}

func (p *Picker) Items() []PickerItem {
	if p == nil {
		return nil
	}
	return append([]PickerItem(nil), p.filtered...)
}

func (p *Picker) SetItems(items []PickerItem) {
	if p == nil {
		return
	}
	p.items = append([]PickerItem(nil), items...)
	p.rebuildFiltered()
}

func (p *Picker) SetQuery(q string) {
	if p == nil {
		return
	}
	p.query = q
	p.cursor = 0
	p.rebuildFiltered()
}

// SetCursorByID moves the cursor to the item with id if it is visible.
func (p *Picker) SetCursorByID(id string) {
	if p == nil {
		return
	}
	for i, it := range p.filtered {
		if it.ID == id {
			p.cursor = i
			return
		}
	}
}

func (p *Picker) CursorUp() {
	if p == nil {
		return
	}
	if p.cursor > 0 {
		p.cursor--
	}
}

func (p *Picker) CursorDown() {
	if p == nil {
		return
	}
	maxIdx := len(p.filtered) - 1
	if maxIdx < 0 {
		p.cursor = 0
		return
	}
	if p.cursor < maxIdx {
		p.cursor++
	}
}

func (p *Picker) CurrentItem() (PickerItem, bool) {
	if p == nil || len(p.filtered) == 0 {
		return PickerItem{}, false
	}
	idx := min(max(p.cursor, 0), len(p.filtered)-1)
	return p.filtered[idx], true
}

func (p *Picker) HandleKey(keyName string) PickerResult {
	if p == nil {
		return PickerResult{Action: PickerActionNone}
	}
	switch keyName {
	case "up", "ctrl+p":
		before := p.cursor
		p.CursorUp()
		if p.cursor != before {
			return PickerResult{Action: PickerActionMoved}
		}
		return PickerResult{Action: PickerActionNone}
	case "down", "ctrl+n":
		before := p.cursor
		p.CursorDown()
		if p.cursor != before {
			return PickerResult{Action: PickerActionMoved}
		}
		return PickerResult{Action: PickerActionNone}
	case "enter":
		item, ok := p.CurrentItem()
		if !ok {
			return PickerResult{Action: PickerActionNone}
		}
		return PickerResult{Action: PickerActionSelected, Item: item}
	case "esc":
		return PickerResult{Action: PickerActionCancelled}
	case "backspace":
		if len(p.query) == 0 {
			return PickerResult{Action: PickerActionNone}
		}
		r := []rune(p.query)
		p.SetQuery(string(r[:len(r)-1]))
		return PickerResult{Action: PickerActionFiltered}
	case "space":
		p.SetQuery(p.query + " ")
		return PickerResult{Action: PickerActionFiltered}
	default:
		if isPrintableASCIIKey(keyName) {
			p.SetQuery(p.query + keyName)
			return PickerResult{Action: PickerActionFiltered}
		}
		return PickerResult{Action: PickerActionNone}
	}
}

type scoredPickerItem struct {
	item  PickerItem
	score int
	index int
}

func (p *Picker) rebuildFiltered() {
	if p == nil {
		return
	}
	q := strings.TrimSpace(p.query)
	scored := make([]scoredPickerItem, 0, len(p.items))
	for idx, item := range p.items {
		search := strings.TrimSpace(item.Search)
		if search == "" {
			search = item.Label
		}
		matched, score := fuzzyMatchScore(search, q)
		if !matched {
			continue
		}
		scored = append(scored, scoredPickerItem{item: item, score: score, index: idx})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].index < scored[j].index
	})

	out := make([]PickerItem, 0, len(scored))
	for _, row := range scored {
		out = append(out, row.item)
	}
	p.filtered = out

	maxIdx := len(p.filtered) - 1
	if maxIdx < 0 {
		p.cursor = 0
	} else if p.cursor > maxIdx {
		p.cursor = maxIdx
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

// fuzzyMatchScore matches query as a subsequence of label. Prefix hits,
// consecutive runs, word starts and exact matches score higher.
func fuzzyMatchScore(label, query string) (bool, int) {
	if query == "" {
		return true, 0
	}
	labelLower := strings.ToLower(label)
	queryLower := strings.ToLower(query)

	matchIdx := make([]int, 0, len(queryLower))
	searchFrom := 0
	for i := 0; i < len(queryLower); i++ {
		ch := queryLower[i]
		found := false
		for j := searchFrom; j < len(labelLower); j++ {
			if labelLower[j] == ch {
				matchIdx = append(matchIdx, j)
				searchFrom = j + 1
				found = true
				break
			}
		}
		if !found {
			return false, 0
		}
	}

	score := len(queryLower)
	if matchIdx[0] == 0 {
		score += 10
	}
	for i, idx := range matchIdx {
		if i > 0 && idx == matchIdx[i-1]+1 {
			score += 3
		}
		if idx > 0 && (labelLower[idx-1] == ' ' || labelLower[idx-1] == '-') {
			score += 2
		}
	}
	if strings.Contains(labelLower, queryLower) {
		score += 5
	}
	if strings.EqualFold(strings.TrimSpace(label), strings.TrimSpace(query)) {
		score += 20
	}
	return true, score
}

func isPrintableASCIIKey(keyName string) bool {
	return len(keyName) == 1 && keyName[0] >= 32 && keyName[0] < 127
}
