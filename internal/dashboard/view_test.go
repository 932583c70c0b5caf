package dashboard_test

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/hyunjkang/invest-manager/internal/dashboard"
)

func day(n int) time.Time {
	return time.Date(2025, 1, n, 0, 0, 0, 0, time.UTC)
}

// TestComputeView_Filter tests the filter stage of the view pipeline.
//
// WHY: the type filter drives both the visible rows and the displayed total.
// A filter that leaks other types would silently misreport the investment sum.
func TestComputeView_Filter(t *testing.T) {
	records := []dashboard.AssetRecord{
		{ID: "1", AssetType: "USD", Amount: 1, BuyPrice: 100, BuyDate: day(1)},
		{ID: "2", AssetType: "JPY", Amount: 1, BuyPrice: 100, BuyDate: day(2)},
		{ID: "3", AssetType: "USD", Amount: 1, BuyPrice: 100, BuyDate: day(3)},
	}

	t.Run("filter all returns the full collection", func(t *testing.T) {
		state := dashboard.NewViewState()

		view := dashboard.ComputeView(records, state)

		if view.TotalCount != 3 {
			t.Errorf("Expected total count 3, got %d", view.TotalCount)
		}
	})

	t.Run("specific type returns only matching records", func(t *testing.T) {
		state := dashboard.NewViewState()
		state.FilterType = "USD"

		view := dashboard.ComputeView(records, state)

		if view.TotalCount != 2 {
			t.Errorf("Expected total count 2, got %d", view.TotalCount)
		}
		for _, r := range view.Page {
			if r.AssetType != "USD" {
				t.Errorf("Expected only USD records, got %s", r.AssetType)
			}
		}
	})
}

// TestComputeView_Sort tests ordering and stability of the sort stage.
//
// WHY: the sort must be stable so records bought on the same day keep their
// server order; a flaky order would make rows jump between renders.
func TestComputeView_Sort(t *testing.T) {
	t.Run("descending puts newest purchase first", func(t *testing.T) {
		records := []dashboard.AssetRecord{
			{ID: "old", AssetType: "USD", BuyDate: day(1)},
			{ID: "new", AssetType: "USD", BuyDate: day(20)},
			{ID: "mid", AssetType: "USD", BuyDate: day(10)},
		}
		state := dashboard.NewViewState()

		view := dashboard.ComputeView(records, state)

		for i, want := range []string{"new", "mid", "old"} {
			if view.Page[i].ID != want {
				t.Errorf("Position %d: expected %s, got %s", i, want, view.Page[i].ID)
			}
		}
	})

	t.Run("ascending puts oldest purchase first", func(t *testing.T) {
		records := []dashboard.AssetRecord{
			{ID: "new", AssetType: "USD", BuyDate: day(20)},
			{ID: "old", AssetType: "USD", BuyDate: day(1)},
		}
		state := dashboard.NewViewState()
		state.SortDesc = false

		view := dashboard.ComputeView(records, state)

		if view.Page[0].ID != "old" || view.Page[1].ID != "new" {
			t.Errorf("Expected [old new], got [%s %s]", view.Page[0].ID, view.Page[1].ID)
		}
	})

	t.Run("equal dates keep input order in both directions", func(t *testing.T) {
		records := []dashboard.AssetRecord{
			{ID: "first", AssetType: "USD", BuyDate: day(5)},
			{ID: "second", AssetType: "USD", BuyDate: day(5)},
			{ID: "third", AssetType: "USD", BuyDate: day(5)},
		}

		for _, sortDesc := range []bool{true, false} {
			state := dashboard.NewViewState()
			state.SortDesc = sortDesc

			view := dashboard.ComputeView(records, state)

			for i, want := range []string{"first", "second", "third"} {
				if view.Page[i].ID != want {
					t.Errorf("sortDesc=%v position %d: expected %s, got %s", sortDesc, i, want, view.Page[i].ID)
				}
			}
		}
	})
}

// TestComputeView_Pagination tests the paging stage.
//
// WHY: page math is off-by-one territory, and a page past the end must come
// back empty instead of failing or wrapping around.
func TestComputeView_Pagination(t *testing.T) {
	records := make([]dashboard.AssetRecord, 12)
	for i := range records {
		records[i] = dashboard.AssetRecord{
			ID:        fmt.Sprintf("a%d", i),
			AssetType: "USD",
			Amount:    1,
			BuyPrice:  10,
			BuyDate:   day(1), // equal dates so pages follow input order
		}
	}

	t.Run("12 records split 5/5/2 across pages", func(t *testing.T) {
		expected := map[int]int{1: 5, 2: 5, 3: 2, 4: 0}

		for page, wantLen := range expected {
			state := dashboard.NewViewState()
			state.Page = page

			view := dashboard.ComputeView(records, state)

			if len(view.Page) != wantLen {
				t.Errorf("Page %d: expected %d records, got %d", page, wantLen, len(view.Page))
			}
			if view.TotalCount != 12 {
				t.Errorf("Page %d: expected total count 12, got %d", page, view.TotalCount)
			}
		}
	})

	t.Run("total value is independent of the current page", func(t *testing.T) {
		var totals []float64
		for page := 1; page <= 4; page++ {
			state := dashboard.NewViewState()
			state.Page = page
			totals = append(totals, dashboard.ComputeView(records, state).TotalValue)
		}

		for i, total := range totals {
			if total != 120 {
				t.Errorf("Page %d: expected total 120, got %v", i+1, total)
			}
		}
	})

	t.Run("page count covers a partial last page", func(t *testing.T) {
		if got := dashboard.PageCount(12); got != 3 {
			t.Errorf("Expected 3 pages for 12 records, got %d", got)
		}
		if got := dashboard.PageCount(10); got != 2 {
			t.Errorf("Expected 2 pages for 10 records, got %d", got)
		}
		if got := dashboard.PageCount(0); got != 0 {
			t.Errorf("Expected 0 pages for 0 records, got %d", got)
		}
	})
}

// TestComputeView_TotalValue tests the aggregate over the filtered set.
//
// WHY: this is the headline number on the dashboard. It must cover the whole
// filtered set (not just the visible page) and apply price normalization.
func TestComputeView_TotalValue(t *testing.T) {
	t.Run("mixed USD and JPY holdings", func(t *testing.T) {
		records := []dashboard.AssetRecord{
			{ID: "1", AssetType: "USD", Amount: 10, BuyPrice: 100.5, BuyDate: day(1)},
			{ID: "2", AssetType: "JPY", Amount: 1000, BuyPrice: 15000, BuyDate: day(2)},
		}
		state := dashboard.NewViewState()

		view := dashboard.ComputeView(records, state)

		// 10*100.5 + 1000*(15000/100) = 1005 + 150000
		if math.Abs(view.TotalValue-151005) > 1e-9 {
			t.Errorf("Expected total value 151005, got %v", view.TotalValue)
		}
	})

	t.Run("empty collection yields the empty view", func(t *testing.T) {
		view := dashboard.ComputeView(nil, dashboard.NewViewState())

		if len(view.Page) != 0 {
			t.Errorf("Expected empty page, got %d records", len(view.Page))
		}
		if view.TotalCount != 0 {
			t.Errorf("Expected total count 0, got %d", view.TotalCount)
		}
		if view.TotalValue != 0 {
			t.Errorf("Expected total value 0, got %v", view.TotalValue)
		}
	})

	t.Run("filter restricts the total to matching records", func(t *testing.T) {
		records := []dashboard.AssetRecord{
			{ID: "1", AssetType: "USD", Amount: 10, BuyPrice: 100, BuyDate: day(1)},
			{ID: "2", AssetType: "JPY", Amount: 100, BuyPrice: 1000, BuyDate: day(2)},
		}
		state := dashboard.NewViewState()
		state.FilterType = "JPY"

		view := dashboard.ComputeView(records, state)

		if view.TotalValue != 1000 {
			t.Errorf("Expected total value 1000, got %v", view.TotalValue)
		}
	})
}
