package dashboard

import "sort"

// PageSize is the fixed number of rows per ledger page.
const PageSize = 5

// FilterAll selects every asset type.
const FilterAll = "all"

// ViewState holds the filter, sort and page parameters that govern which
// slice of the ledger is displayed. It is a plain value owned by whatever
// drives the UI loop; ComputeView never mutates it. The page must be reset
// to 1 by the owner whenever the filter changes or the ledger reloads.
type ViewState struct {
	FilterType string
	SortDesc   bool
	Page       int // 1-indexed
}

// NewViewState returns the initial dashboard state: all types, newest
// purchases first, first page.
func NewViewState() ViewState {
	return ViewState{
		FilterType: FilterAll,
		SortDesc:   true,
		Page:       1,
	}
}

// View is the derived display state for one render pass.
type View struct {
	Page       []AssetRecord // the visible rows
	TotalCount int           // size of the filtered set, across all pages
	TotalValue float64       // sum over the filtered set, independent of paging
}

// ComputeView derives the visible page, the filtered row count and the
// aggregate value from a snapshot of the ledger.
//
// The pipeline is filter, then a stable sort by buy date (ties keep their
// input order), then the aggregate over the whole filtered set, then
// pagination. The total is computed before slicing so it never depends on
// which page is visible; a page past the end yields an empty slice, not an
// error.
func ComputeView(records []AssetRecord, state ViewState) View {
	filtered := make([]AssetRecord, 0, len(records))
	for _, r := range records {
		if state.FilterType == FilterAll || r.AssetType == state.FilterType {
			filtered = append(filtered, r)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if state.SortDesc {
			return filtered[i].BuyDate.After(filtered[j].BuyDate)
		}
		return filtered[i].BuyDate.Before(filtered[j].BuyDate)
	})

	var total float64
	for _, r := range filtered {
		total += r.Amount * NormalizePrice(r.AssetType, r.BuyPrice)
	}

	page := []AssetRecord{}
	start := (state.Page - 1) * PageSize
	if start >= 0 && start < len(filtered) {
		end := min(start+PageSize, len(filtered))
		page = filtered[start:end]
	}

	return View{
		Page:       page,
		TotalCount: len(filtered),
		TotalValue: total,
	}
}

// PageCount returns how many pages the filtered set spans.
func PageCount(totalCount int) int {
	return (totalCount + PageSize - 1) / PageSize
}
