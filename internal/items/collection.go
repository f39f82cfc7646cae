package items

import (
	"slices"
	"strings"
)

// Collections are plain []*Item slices owned by a room or a cell. Name
// lookups ignore case.

func indexOf(list []*Item, name string) int {
	return slices.IndexFunc(list, func(it *Item) bool {
		return strings.EqualFold(it.Name, name)
	})
}

// AddItem appends an item to the collection
func AddItem(list *[]*Item, item *Item) {
	*list = append(*list, item)
}

// RemoveItem takes the first item with the given name out of the collection
func RemoveItem(list *[]*Item, name string) (*Item, bool) {
	i := indexOf(*list, name)
	if i < 0 {
		return nil, false
	}
	item := (*list)[i]
	*list = slices.Delete(*list, i, i+1)
	return item, true
}

// HasItem reports whether an item with the given name is in the collection
func HasItem(list []*Item, name string) bool {
	return indexOf(list, name) >= 0
}

// FindItem returns the item whose name matches exactly, else the first whose
// name contains partial
func FindItem(list []*Item, partial string) (*Item, bool) {
	if i := indexOf(list, partial); i >= 0 {
		return list[i], true
	}

	partial = strings.ToLower(partial)
	i := slices.IndexFunc(list, func(it *Item) bool {
		return strings.Contains(strings.ToLower(it.Name), partial)
	})
	if i < 0 {
		return nil, false
	}
	return list[i], true
}

// CountType returns how many items in the collection have the given type
func CountType(list []*Item, t ItemType) int {
	n := 0
	for _, item := range list {
		if item.Type == t {
			n++
		}
	}
	return n
}
