/*
main.go - Command-line lease calculator

PURPOSE:
  Computes a single lease without running the HTTP server. Reads a lease
  definition from a JSON file or a named demo scenario, prints a summary
  to stdout, and writes the full multi-sheet workbook to disk.

COMMAND-LINE FLAGS:
  -params  Path to a lease definition JSON file (same shape as the
           POST /api/compute request body)
  -preset  Demo scenario ID instead of a file (see -list)
  -list    List available demo scenarios and exit
  -out     Output workbook path (default: lease_schedule.xlsx)

  Exactly one of -params or -preset is required.

OUTPUT:
  A summary report on stdout (inputs, initial recognition, lifetime
  totals, deposit and lock-in when present, journal balance status)
  and an XLSX workbook with the schedule, journal, and deposit tables.

EXAMPLES:
  # Compute a lease from a definition file
  ./leasecalc -params=office.json

  # Compute a demo scenario into a custom workbook path
  ./leasecalc -preset=deposited-warehouse -out=warehouse.xlsx

  # See which scenarios exist
  ./leasecalc -list

EXIT CODES:
  0 on success, 1 on any error (bad flags, unreadable file, invalid
  parameters, workbook write failure). A journal imbalance is printed
  as a warning but does not fail the run.

SEE ALSO:
  - lease/engine.go: Computation pipeline
  - factory/presets.go: Demo scenario catalog
  - export/xlsx.go: Workbook rendering
*/
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/meridian/lease-engine/export"
	"github.com/meridian/lease-engine/factory"
	"github.com/meridian/lease-engine/lease"
)

func main() {
	// Flags
	paramsPath := flag.String("params", "", "Path to a lease definition JSON file")
	presetID := flag.String("preset", "", "Demo scenario ID (see -list)")
	listPresets := flag.Bool("list", false, "List available demo scenarios and exit")
	out := flag.String("out", export.DefaultWorkbookName, "Output workbook path")
	flag.Parse()

	if *listPresets {
		fmt.Println("Available scenarios:")
		for _, p := range factory.Presets() {
			fmt.Printf("  %-22s %s\n", p.ID, p.Description)
		}
		return
	}

	name, lj, err := loadDefinition(*paramsPath, *presetID)
	if err != nil {
		log.Fatalf("Failed to load lease definition: %v", err)
	}

	params, err := factory.NewLeaseFactory().FromJSON(lj)
	if err != nil {
		log.Fatalf("Invalid lease definition: %v", err)
	}
	if name == "" {
		name = fmt.Sprintf("%d-year lease", params.TermYears)
	}

	result, err := lease.Compute(params)
	if err != nil {
		log.Fatalf("Computation failed: %v", err)
	}

	printSummary(name, result)

	wb, err := export.Workbook(name, result)
	if err != nil {
		log.Fatalf("Failed to render workbook: %v", err)
	}
	defer wb.Close()

	if err := wb.SaveAs(*out); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}
	fmt.Printf("\nWorkbook written to %s\n", *out)
}

// loadDefinition resolves the lease definition from either a JSON file or
// a demo scenario, along with the run name (empty for unnamed files).
func loadDefinition(paramsPath, presetID string) (string, factory.LeaseJSON, error) {
	var lj factory.LeaseJSON

	switch {
	case paramsPath != "" && presetID != "":
		return "", lj, errors.New("-params and -preset are mutually exclusive")

	case presetID != "":
		preset, ok := factory.PresetByID(presetID)
		if !ok {
			return "", lj, fmt.Errorf("unknown scenario %q (try -list)", presetID)
		}
		if err := json.Unmarshal([]byte(preset.JSON), &lj); err != nil {
			return "", lj, fmt.Errorf("malformed preset definition: %w", err)
		}
		return preset.Name, lj, nil

	case paramsPath != "":
		data, err := os.ReadFile(paramsPath)
		if err != nil {
			return "", lj, err
		}
		if err := json.Unmarshal(data, &lj); err != nil {
			return "", lj, fmt.Errorf("malformed lease definition: %w", err)
		}
		return lj.Name, lj, nil

	default:
		return "", lj, errors.New("one of -params or -preset is required")
	}
}

// printSummary writes the human-readable report for one computed lease.
func printSummary(name string, result *lease.Result) {
	p := result.Parameters
	unit := strings.ToLower(lease.PeriodUnit(p.PaymentFrequency))

	fmt.Println("================================================================================")
	fmt.Printf("  LEASE AMORTIZATION SUMMARY - %s\n", name)
	fmt.Println("================================================================================")

	fmt.Println("\nINPUTS")
	fmt.Printf("  Payment:             %14s per %s\n", p.PaymentAmount.StringFixed(), unit)
	fmt.Printf("  Discount rate:       %13.2f%% per year\n", p.AnnualDiscountRatePercent)
	fmt.Printf("  Term:                %14d years (%d periods)\n", p.TermYears, len(result.Schedule))
	if p.PaymentTiming == lease.TimingBeginningOfPeriod {
		fmt.Println("  Timing:              beginning of period (annuity due)")
	}
	if e := p.Escalation; e != nil {
		fmt.Printf("  Escalation:          %.2f%% %s, starting after year %d\n",
			e.RatePercent, strings.ReplaceAll(string(e.Frequency), "_", " "), e.StartAfterYears)
	}

	fmt.Println("\nINITIAL RECOGNITION")
	fmt.Printf("  Present value:       %14s\n", result.PresentValue.StringFixed())
	fmt.Printf("  Depreciation:        %14s per %s\n", result.DepreciationPerPeriod.StringFixed(), unit)

	fmt.Println("\nLIFETIME TOTALS")
	fmt.Printf("  Interest expense:    %14s\n", result.TotalInterest.StringFixed())
	fmt.Printf("  Depreciation:        %14s\n", result.TotalDepreciation.StringFixed())
	fmt.Printf("  Payments:            %14s\n", result.TotalPayments.StringFixed())
	last := result.Schedule[len(result.Schedule)-1]
	fmt.Printf("  Closing liability:   %14s (after final period)\n", last.ClosingLiability.StringFixed())

	if d := result.Deposit; d != nil {
		fmt.Println("\nSECURITY DEPOSIT")
		fmt.Printf("  Nominal amount:      %14s\n", d.Amount.StringFixed())
		fmt.Printf("  Present value:       %14s\n", d.PresentValue.StringFixed())
		fmt.Printf("  Discount difference: %14s (added to ROU cost)\n", d.DiscountDifference.StringFixed())
	}

	if l := result.LockIn; l != nil {
		fmt.Println("\nLOCK-IN COMMITMENT")
		fmt.Printf("  Locked:              %14d years (%d periods)\n", l.LockInYears, l.LockedPeriods)
		fmt.Printf("  Committed payments:  %14s\n", l.LockedPayments.StringFixed())
		fmt.Printf("  Remaining term:      %14d years\n", l.RemainingTermYears)
	}

	fmt.Println("\nJOURNAL")
	fmt.Printf("  Entries:             %14d lines\n", len(result.Journal))
	if result.Balanced() {
		fmt.Println("  Balance check:       balanced")
	} else {
		fmt.Printf("  Balance check:       WARNING - %v\n", result.Imbalance)
	}
}
