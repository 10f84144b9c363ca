// Command yearsheet renders a year of daily values as a contribution-style
// calendar heatmap, with an optional weekly load chart underneath.
//
// Values come from a text file (-source), a SQLite database (-db), or are
// generated when neither is given. Output is an HTML page by default, or
// static PNGs with -format png.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/banshee-data/yearsheet/internal/render"
	"github.com/banshee-data/yearsheet/internal/source"
	"github.com/banshee-data/yearsheet/internal/yearsheet"
)

type options struct {
	sourcePath string
	dbPath     string
	query      string
	year       int
	bare       bool
	output     string
	format     string
	seed       uint64
}

func main() {
	var opts options
	flag.StringVar(&opts.sourcePath, "source", "", "text file containing 365 or 366 values")
	flag.StringVar(&opts.dbPath, "db", "", "SQLite database to read values from")
	flag.StringVar(&opts.query, "query", source.DefaultQuery, "query returning one value per day, in day order")
	flag.IntVar(&opts.year, "year", 0, "year the data belongs to (inferred from the value count when omitted)")
	flag.BoolVar(&opts.bare, "bare", false, "render the year sheet only, without the week load chart")
	flag.StringVar(&opts.output, "o", "", "output file (default sheet.html or sheet.png)")
	flag.StringVar(&opts.format, "format", "html", "output format: html or png")
	flag.Uint64Var(&opts.seed, "seed", 1, "seed for generated data")
	flag.Parse()

	if err := run(opts); err != nil {
		log.Fatalf("yearsheet: %v", err)
	}
}

func run(opts options) error {
	values, err := loadValues(opts)
	if err != nil {
		return err
	}

	year := opts.year
	if year == 0 {
		year = inferYear(len(values))
	}

	grid, err := yearsheet.Layout(values, year)
	if err != nil {
		return err
	}

	switch opts.format {
	case "html":
		out := opts.output
		if out == "" {
			out = "sheet.html"
		}
		if err := render.SaveHTML(out, grid, opts.bare); err != nil {
			return err
		}
		log.Printf("wrote %s", out)
	case "png":
		out := opts.output
		if out == "" {
			out = "sheet.png"
		}
		files, err := render.SavePNG(out, grid, opts.bare)
		if err != nil {
			return err
		}
		for _, f := range files {
			log.Printf("wrote %s", f)
		}
	default:
		return fmt.Errorf("unknown format %q (want html or png)", opts.format)
	}
	return nil
}

// loadValues picks the value source: file, database, or generated data.
// Generated data covers the full year, including leap day when -year asks
// for one.
func loadValues(opts options) ([]float64, error) {
	switch {
	case opts.sourcePath != "" && opts.dbPath != "":
		return nil, errors.New("-source and -db are mutually exclusive")
	case opts.sourcePath != "":
		return source.ParseFile(opts.sourcePath)
	case opts.dbPath != "":
		return source.ReadDB(opts.dbPath, opts.query)
	default:
		days := 365
		if opts.year != 0 && yearsheet.IsLeapYear(opts.year) {
			days = 366
		}
		return source.Random(days, opts.seed), nil
	}
}

// inferYear picks a representative year for unlabelled data: 2021 for 365
// values, 2020 for a leap-sized series. Layout still validates the count.
func inferYear(count int) int {
	if count == 366 {
		return 2020
	}
	return 2021
}
