package listing

import (
	"slices"
	"sort"
	"strings"
	"time"
)

// PageSizes are the selectable rows-per-page values, mirrored in the
// page-size dropdown on every index screen.
var PageSizes = []int{25, 50, 75, 100}

const (
	DefaultPageSize = 25

	StatusAll = "all"
)

// State is everything a list screen remembers between interactions: the
// per-field search terms, the status filter and the pagination cursor. It is
// serialized into the session per screen and reset on mount.
type State struct {
	Search   map[string]string `json:"search"`
	Status   string            `json:"status"`
	Page     int               `json:"page"`
	PageSize int               `json:"pageSize"`
}

func NewState() State {
	return State{
		Search:   map[string]string{},
		Status:   StatusAll,
		Page:     1,
		PageSize: DefaultPageSize,
	}
}

func (s State) withDefaults() State {
	if s.Search == nil {
		s.Search = map[string]string{}
	}
	if s.Status == "" {
		s.Status = StatusAll
	}
	if s.Page < 1 {
		s.Page = 1
	}
	if !slices.Contains(PageSizes, s.PageSize) {
		s.PageSize = DefaultPageSize
	}
	return s
}

// SearchField is one searchable column: its form-field name and how to read
// the matchable text out of a record.
type SearchField[T any] struct {
	Name  string
	Value func(T) string
}

// Pipeline turns a full fetched collection plus a State into the rows one
// screen renders. It is the single transition function shared by every index
// screen: sort by createdAt descending, AND-composed case-insensitive
// substring search, exact status match, clamped pagination.
type Pipeline[T any] struct {
	Fields    []SearchField[T]
	Status    func(T) string // nil when the entity has no status column
	CreatedAt func(T) time.Time
}

// Result is the render-ready output of one Apply: the visible page slice and
// the pagination facts the template shows ("Showing From to To of Total").
type Result[T any] struct {
	Rows       []T
	Page       int
	TotalPages int
	Total      int
	From       int
	To         int
}

// Sort returns a copy ordered by createdAt descending. The sort is stable and
// total: records with a missing or unparseable createdAt carry the zero time
// and end up last.
func (p Pipeline[T]) Sort(items []T) []T {
	out := slices.Clone(items)
	sort.SliceStable(out, func(i, j int) bool {
		return p.CreatedAt(out[i]).After(p.CreatedAt(out[j]))
	})
	return out
}

// Filter returns the sorted records matching the state's search terms and
// status filter, un-paginated. Exports run over exactly this slice.
func (p Pipeline[T]) Filter(items []T, st State) []T {
	st = st.withDefaults()
	sorted := p.Sort(items)
	filtered := make([]T, 0, len(sorted))
	for _, item := range sorted {
		if p.matches(item, st) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// Apply runs the full pipeline and clamps the page into [1, TotalPages].
// TotalPages is at least 1 even for an empty collection; From and To are 0
// when there are no matching rows.
func (p Pipeline[T]) Apply(items []T, st State) Result[T] {
	st = st.withDefaults()
	filtered := p.Filter(items, st)

	total := len(filtered)
	totalPages := (total + st.PageSize - 1) / st.PageSize
	if totalPages < 1 {
		totalPages = 1
	}
	page := st.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * st.PageSize
	end := start + st.PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	from, to := 0, 0
	if total > 0 {
		from = start + 1
		to = end
	}

	return Result[T]{
		Rows:       filtered[start:end],
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
		From:       from,
		To:         to,
	}
}

// matches is a logical AND of the per-field substring checks and the status
// filter. An empty search term always matches; status "all" always matches.
func (p Pipeline[T]) matches(item T, st State) bool {
	for _, field := range p.Fields {
		term := strings.TrimSpace(st.Search[field.Name])
		if term == "" {
			continue
		}
		if !strings.Contains(strings.ToLower(field.Value(item)), strings.ToLower(term)) {
			return false
		}
	}
	if p.Status != nil && st.Status != StatusAll {
		if p.Status(item) != st.Status {
			return false
		}
	}
	return true
}
