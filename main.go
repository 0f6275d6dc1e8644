package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"goditor/application"
	"goditor/config"
	"goditor/editor"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
)

var (
	configDir = flag.String("config", config.DefaultDir(), "directory holding config.json")
	logFile   = flag.String("log", filepath.Join(os.TempDir(), "goditor.log"), "file the editor logs to")
)

func NewLogger(path string) *log.Logger {
	// Open a file for logging
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Fatal(err)
	}

	return log.New(file, "", log.LstdFlags|log.Lshortfile)
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [file]\n", filepath.Base(os.Args[0]))
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() > 1 {
		usage()
		os.Exit(2)
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "goditor needs a terminal")
		os.Exit(1)
	}

	log := NewLogger(*logFile)
	cfg := config.NewConfig(log, *configDir)
	if err := cfg.Init(); err != nil {
		// the embedded defaults are still usable
		log.Printf("Using default config: %v", err)
	}
	defer cfg.Cleanup()

	// Initialize screen
	s, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("%+v", err)
	}
	if err := s.Init(); err != nil {
		log.Fatalf("%+v", err)
	}
	s.EnableMouse()
	s.EnablePaste()
	s.Clear()

	app := application.New(log, s, cfg.EditorConfig, editor.NewSystemClipboard(log))
	if err := cfg.Watch(app.ConfigChanged); err != nil {
		log.Printf("Config changes will not be picked up: %v", err)
	}

	// You have to catch panics in a defer, clean up, and
	// re-raise them - otherwise your application can
	// die without leaving any diagnostic trace.
	defer quit(s)

	if file := flag.Arg(0); file != "" {
		if err := app.Editor().OpenPath(file); err != nil {
			app.Draw()
			app.Editor().ReportError(err)
		}
	} else {
		log.Print("Started without a file")
	}

	app.Run()
}

func quit(s tcell.Screen) {
	maybePanic := recover()
	s.Fini()
	if maybePanic != nil {
		panic(maybePanic)
	}
}
