package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/hyunjkang/invest-manager/internal/apperrors"
	"github.com/hyunjkang/invest-manager/internal/config"
	"github.com/hyunjkang/invest-manager/internal/dashboard"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	client := dashboard.NewClient(cfg.Client.BaseURL)
	coordinator := dashboard.NewCoordinator(client)
	state := dashboard.NewViewState()

	ctx := context.Background()

	if err := coordinator.LoadAll(ctx); err != nil {
		fmt.Println(notice(err))
	}

	render(coordinator, state)
	fmt.Println(`commands: filter <type|all> | sort | page <n> | add <type> <amount> <price> [date] [name] | del <id> | reload | quit`)

	scanner := bufio.NewScanner(os.Stdin)
	for prompt(); scanner.Scan(); prompt() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "quit", "q", "exit":
			return

		case "filter":
			if len(fields) < 2 {
				fmt.Println("usage: filter <type|all>")
				continue
			}
			state.FilterType = fields[1]
			state.Page = 1

		case "sort":
			state.SortDesc = !state.SortDesc

		case "page":
			if len(fields) < 2 {
				fmt.Println("usage: page <n>")
				continue
			}
			n, err := strconv.Atoi(fields[1])
			if err != nil || n < 1 {
				fmt.Println("page must be a positive number")
				continue
			}
			state.Page = n

		case "add":
			if len(fields) < 4 {
				fmt.Println("usage: add <type> <amount> <price> [date] [name]")
				continue
			}
			input := dashboard.CreateInput{AssetType: fields[1]}
			// Coerce the way the web form did: integer amount, float price.
			// Bad numbers become zero and travel to the server as such.
			input.Amount, _ = strconv.ParseInt(fields[2], 10, 64)
			input.BuyPrice, _ = strconv.ParseFloat(fields[3], 64)
			if len(fields) > 4 {
				input.BuyDate = fields[4]
			}
			if len(fields) > 5 {
				input.Name = strings.Join(fields[5:], " ")
			}

			if err := coordinator.Create(ctx, input); err != nil {
				fmt.Println(notice(err))
			}
			state.Page = 1

		case "del":
			if len(fields) < 2 {
				fmt.Println("usage: del <id>")
				continue
			}
			if err := coordinator.Remove(ctx, fields[1]); err != nil {
				fmt.Println(notice(err))
			}
			state.Page = 1

		case "reload":
			if err := coordinator.LoadAll(ctx); err != nil {
				fmt.Println(notice(err))
			}
			state.Page = 1

		default:
			fmt.Printf("unknown command: %s\n", fields[0])
			continue
		}

		render(coordinator, state)
	}
}

func prompt() {
	fmt.Print("> ")
}

// notice converts boundary errors into the short human-readable notices the
// dashboard shows instead of raw failures.
func notice(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrLedgerUnavailable):
		return "Could not load assets."
	case errors.Is(err, apperrors.ErrSummaryUnavailable):
		return "Could not load portfolio valuation."
	default:
		return fmt.Sprintf("Request failed: %v", err)
	}
}

func render(coordinator *dashboard.Coordinator, state dashboard.ViewState) {
	renderLedger(coordinator, state)
	renderPortfolio(coordinator)
}

func renderLedger(coordinator *dashboard.Coordinator, state dashboard.ViewState) {
	records := coordinator.Store().Records()

	fmt.Println()
	fmt.Println("== Assets ==")

	if len(records) == 0 {
		fmt.Println("No holdings registered.")
		return
	}

	view := dashboard.ComputeView(records, state)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	arrow := "v"
	if !state.SortDesc {
		arrow = "^"
	}
	fmt.Fprintf(w, "TYPE\tAMOUNT\tBUY PRICE\tBUY DATE %s\tVALUE (KRW)\tID\n", arrow)

	for _, r := range view.Page {
		price := dashboard.NormalizePrice(r.AssetType, r.BuyPrice)
		value := price * r.Amount
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.AssetType,
			dashboard.FormatKRW(r.Amount),
			dashboard.FormatUnitPrice(price),
			dashboard.FormatDate(r.BuyDate),
			dashboard.FormatKRW(value),
			r.ID,
		)
	}
	fmt.Fprintf(w, "TOTAL\t\t\t\t%s\t\n", dashboard.FormatKRW(view.TotalValue))
	w.Flush()

	fmt.Printf("page %d of %d (%d assets, filter: %s)\n",
		state.Page, dashboard.PageCount(view.TotalCount), view.TotalCount, state.FilterType)
}

func renderPortfolio(coordinator *dashboard.Coordinator) {
	fmt.Println()
	fmt.Println("== Portfolio (current value) ==")

	summary, available := coordinator.Summary()
	if !available {
		fmt.Println("Portfolio valuation unavailable.")
		return
	}
	if !summary.HasAssets() {
		fmt.Println("No assets.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "TYPE\tAMOUNT\tRATE/UNIT PRICE\tVALUE (KRW)\n")
	for _, a := range summary.Assets {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			a.Type,
			dashboard.FormatOptionalKRW(a.Amount),
			dashboard.FormatOptionalKRW(a.ExchangeRate),
			dashboard.FormatOptionalKRW(a.CurrentValueKRW),
		)
	}
	fmt.Fprintf(w, "TOTAL\t\t\t%s\n", dashboard.FormatOptionalKRW(summary.TotalKRW))
	w.Flush()
}
