// Evapotranspiration
// Calculation of reference evapotranspiration through the Penman-Monteith method
package main

import (
	"bytes"
	"fmt"
	"os"
	"os/signal"

	"github.com/Susanreefman/evapotranspiration/evapotranspiration"
	"github.com/akamensky/argparse"
	"github.com/hhkbp2/go-logging"
)

func main() {
	// Command line arguments
	parser := argparse.NewParser("Evapotranspiration", "Calculation of reference evapotranspiration through penman-monteith method")

	file := parser.String("f", "file", &argparse.Options{
		Required: true,
		Help:     "The location and name to meteorological data in CSV format"})

	result := parser.String("r", "result", &argparse.Options{
		Required: true,
		Help:     "The location and name result file in CSV format"})

	logLevel := parser.Selector("", "log", []string{"DEBUG", "INFO", "WARN", "ERROR", "CRITICAL"}, &argparse.Options{
		Default: "INFO",
		Help:    "Log level"})

	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(1)
	}

	// Log level
	logger := logging.GetLogger("evapotranspiration")
	if *logLevel == "DEBUG" {
		logger.SetLevel(logging.LevelDebug)
	} else if *logLevel == "INFO" {
		logger.SetLevel(logging.LevelInfo)
	} else if *logLevel == "WARN" {
		logger.SetLevel(logging.LevelWarn)
	} else if *logLevel == "ERROR" {
		logger.SetLevel(logging.LevelError)
	} else if *logLevel == "CRITICAL" {
		logger.SetLevel(logging.LevelCritical)
	}

	// User initiated termination
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		<-interrupt
		fmt.Fprintln(os.Stderr, "\nScript terminated by the user.")
		os.Exit(1)
	}()

	// Parse and read file to weather table
	f, err := os.Open(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "File '%s' not found.\n", *file)
		os.Exit(1)
	}
	df, err := evapotranspiration.FromCSV(f)
	f.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "An error occurred while reading the file: %v\n", err)
		os.Exit(1)
	}
	logger.Infof("read %d records from %s", len(df.Rows), *file)

	// For each date calculate evapotranspiration
	calib := evapotranspiration.LoadCalibration()
	res := df.CalcET0(calib)

	if rows := res.NonFiniteRows(); len(rows) > 0 {
		logger.Warnf("non-finite ET0 in %d row(s): %v", len(rows), rows)
	}

	summary := res.Summary()
	logger.Infof("ET0 min/mean/max = %.1f/%.1f/%.1f mm/day over %d record(s)",
		summary.Min, summary.Mean, summary.Max, summary.Finite)

	// Save to csv
	var buf *bytes.Buffer = bytes.NewBuffer([]byte{})
	res.ToCSV(buf)

	err = os.WriteFile(*result, buf.Bytes(), os.ModePerm)
	if err != nil {
		fmt.Fprintf(os.Stderr, "An error occurred while writing the result: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Results saved in \"%s\"\n", *result)
}
