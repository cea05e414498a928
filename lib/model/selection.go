package model

import (
	"github.com/hashicorp/go-set/v2"
	"github.com/samber/lo"
)

// Selection splits a fixed list of keys into selected and not selected.
// Values are immutable: Toggle returns a new Selection.
type Selection struct {
	keys     []string
	selected *set.Set[string]
}

// NewSelection starts with every key selected.
func NewSelection(keys []string) Selection {
	return Selection{
		keys:     keys,
		selected: set.From(keys),
	}
}

// NewSelectionWithout starts with every key selected except the hidden ones.
func NewSelectionWithout(keys []string, hidden []string) Selection {
	s := NewSelection(keys)
	for _, h := range hidden {
		s.selected.Remove(h)
	}
	return s
}

func (s Selection) Keys() []string {
	return s.keys
}

func (s Selection) IsSelected(key string) bool {
	return s.selected != nil && s.selected.Contains(key)
}

// Selected returns the selected keys in column order.
func (s Selection) Selected() []string {
	return lo.Filter(s.keys, func(k string, _ int) bool { return s.IsSelected(k) })
}

// NotSelected returns the keys that are not selected, in column order.
func (s Selection) NotSelected() []string {
	return lo.Filter(s.keys, func(k string, _ int) bool { return !s.IsSelected(k) })
}

// Toggle moves key to the other partition. Unknown keys leave the selection as is.
func (s Selection) Toggle(key string) Selection {
	if !lo.Contains(s.keys, key) {
		return s
	}

	selected := set.From(s.Selected())
	if selected.Contains(key) {
		selected.Remove(key)
	} else {
		selected.Insert(key)
	}

	return Selection{
		keys:     s.keys,
		selected: selected,
	}
}

func (s Selection) Equal(o Selection) bool {
	if len(s.keys) != len(o.keys) {
		return false
	}
	for i, k := range s.keys {
		if o.keys[i] != k || s.IsSelected(k) != o.IsSelected(k) {
			return false
		}
	}
	return true
}
