package catalog

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

type IDFunc func() uuid.UUID

// Hierarchy собирает дерево категорий из путей вида "A / B / C".
// Каждый префикс пути становится отдельной категорией, дубли по пути не создаются.
type Hierarchy struct {
	newID  IDFunc
	byPath map[string]*Category
}

func NewHierarchy(newID IDFunc) *Hierarchy {
	if newID == nil {
		newID = uuid.New
	}
	return &Hierarchy{newID: newID, byPath: map[string]*Category{}}
}

// Add материализует все префиксы пути. number достаётся только самому глубокому
// сегменту и только если категория создаётся этим вызовом.
func (h *Hierarchy) Add(rawPath, number string) {
	parts := SplitPath(rawPath)
	number = strings.TrimSpace(number)
	for i := range parts {
		full := strings.Join(parts[:i+1], PathSeparator)
		if _, ok := h.byPath[full]; ok {
			continue
		}
		c := &Category{
			ID:         h.newID(),
			Name:       parts[i],
			Path:       full,
			ParentPath: strings.Join(parts[:i], PathSeparator),
			Depth:      i,
		}
		if i == len(parts)-1 {
			c.Number = number
		}
		h.byPath[full] = c
	}
}

func (h *Hierarchy) Len() int { return len(h.byPath) }

// Lookup отдаёт категорию по пути в любом написании.
func (h *Hierarchy) Lookup(rawPath string) (Category, bool) {
	c, ok := h.byPath[NormalizePath(rawPath)]
	if !ok {
		return Category{}, false
	}
	h.resolve(c)
	return *c, true
}

// Categories проставляет parent_id и возвращает категории в порядке (depth, path):
// родитель всегда раньше потомков.
func (h *Hierarchy) Categories() []Category {
	out := make([]Category, 0, len(h.byPath))
	for _, c := range h.byPath {
		h.resolve(c)
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Depth != out[j].Depth {
			return out[i].Depth < out[j].Depth
		}
		return out[i].Path < out[j].Path
	})
	return out
}

func (h *Hierarchy) Roots() int {
	n := 0
	for _, c := range h.byPath {
		if c.Depth == 0 {
			n++
		}
	}
	return n
}

func (h *Hierarchy) resolve(c *Category) {
	c.ParentID = nil
	if c.ParentPath == "" {
		return
	}
	if p, ok := h.byPath[c.ParentPath]; ok {
		id := p.ID
		c.ParentID = &id
	}
}
