// Package viewmodel carries render-ready structs from controllers to views.
package viewmodel

import (
	"fmt"

	"github.com/streamvid/adminweb/internal/pkg/listing"
)

// ListMeta is everything an index template needs around the table itself:
// pagination facts, the active search terms and the page-size selector.
type ListMeta struct {
	Page       int
	TotalPages int
	Total      int
	From       int
	To         int
	PageSize   int
	Pages      []int
	Search     map[string]string
	Status     string
}

func NewListMeta[T any](res listing.Result[T], st listing.State) ListMeta {
	pages := make([]int, 0, res.TotalPages)
	for i := 1; i <= res.TotalPages; i++ {
		pages = append(pages, i)
	}
	search := st.Search
	if search == nil {
		search = map[string]string{}
	}
	status := st.Status
	if status == "" {
		status = listing.StatusAll
	}
	return ListMeta{
		Page:       res.Page,
		TotalPages: res.TotalPages,
		Total:      res.Total,
		From:       res.From,
		To:         res.To,
		PageSize:   st.PageSize,
		Pages:      pages,
		Search:     search,
		Status:     status,
	}
}

// RangeText renders the "Showing X to Y of Z" line under the table.
func (m ListMeta) RangeText() string {
	return fmt.Sprintf("Showing %d to %d of %d", m.From, m.To, m.Total)
}

// PageSizes exposes the selectable page sizes to templates.
func (m ListMeta) PageSizes() []int {
	return listing.PageSizes
}
