// Package main is an interactive demonstration of the navhist engine.
// It simulates a small workspace of documents and renders the jump
// list, change list, and marks live while you navigate.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/dshills/navhist"
)

func main() {
	os.Exit(run())
}

func run() int {
	var capacity int
	var logLevel string
	var showHelp bool

	flag.IntVar(&capacity, "capacity", navhist.DefaultHistoryCapacity, "History capacity per list")
	flag.StringVar(&logLevel, "log-level", "error", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showHelp, "help", false, "Show help")
	flag.Parse()

	if showHelp {
		printUsage()
		return 0
	}

	logger := navhist.NewLogger(navhist.LoggerConfig{
		Level:  navhist.ParseLogLevel(logLevel),
		Output: os.Stderr,
		Prefix: "navdemo",
	})

	mgr := navhist.NewManager(
		navhist.WithHistoryCapacity(capacity),
		navhist.WithLogger(logger),
	)

	demo, err := newDemo(mgr, rand.New(rand.NewSource(1)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}

	if err := demo.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func printUsage() {
	fmt.Println("navdemo - interactive navigation-history demo")
	fmt.Println()
	fmt.Println("Usage: navdemo [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Keys:")
	fmt.Println("  j / k        move down / up (fine motion, not recorded)")
	fmt.Println("  J            jump to a random line (jump-class)")
	fmt.Println("  1 2 3        switch document (jump-class)")
	fmt.Println("  e            insert a line at the cursor (edit)")
	fmt.Println("  d            delete three lines at the cursor (edit)")
	fmt.Println("  o / i        jump older / jump newer")
	fmt.Println("  ; / ,        change older / change newer")
	fmt.Println("  m<char>      set mark")
	fmt.Println("  '<char>      go to mark (jump-class)")
	fmt.Println("  q / Esc      quit")
}
