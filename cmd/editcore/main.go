// Package main renders a file through the editcore layout pipeline: it
// opens the file in a session, soft wraps it at the requested width, and
// prints the resulting visual rows. Useful for eyeballing wrap and inlay
// behavior without a host editor.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dshills/editcore/editor"
	"github.com/dshills/editcore/layout"
	"github.com/dshills/editcore/text"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath string
		wrapWidth  int
		tabWidth   int
		debug      bool
	)
	flag.StringVar(&configPath, "config", "", "Path to a TOML settings file")
	flag.IntVar(&wrapWidth, "wrap", 0, "Soft wrap width in columns (overrides settings)")
	flag.IntVar(&tabWidth, "tab", 0, "Tab width in columns (overrides settings)")
	flag.BoolVar(&debug, "debug", false, "Log state events to stderr")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: editcore [options] <file>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		return 2
	}

	settings, err := loadSettings(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if wrapWidth > 0 {
		settings.MaxColumnCount = wrapWidth
	}
	if tabWidth > 0 {
		settings.TabColumnCount = tabWidth
	}

	logger := zerolog.Nop()
	if debug {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	state := editor.New(editor.WithLogger(logger), editor.WithSettings(settings))
	document := state.CreateDocument(text.FromString(strings.TrimSuffix(string(data), "\n")))
	session, err := state.CreateSession(document)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	render(state.Layout(session), settings.TabColumnCount)
	return 0
}

func loadSettings(path string) (editor.Settings, error) {
	if path == "" {
		return editor.DefaultSettings(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return editor.Settings{}, err
	}
	defer f.Close()
	return editor.LoadSettings(f)
}

func render(lay layout.Layout, tabColumnCount int) {
	fmt.Printf("%d lines, width %d columns, height %g rows\n\n", lay.LineCount(), lay.Width(), lay.Height())
	elements := lay.BlockElements(0, lay.LineCount())
	for {
		element, ok := elements.Next()
		if !ok {
			return
		}
		if element.Kind == layout.BlockElementWidget {
			fmt.Printf("      [block widget %d]\n", element.Widget.ID)
			continue
		}
		renderLine(element.LineIndex, element.Line)
	}
}

func renderLine(index int, line layout.Line) {
	var row strings.Builder
	prefix := fmt.Sprintf("%4d  ", index+1)
	row.WriteString(prefix)
	elements := line.WrappedElements()
	for {
		element, ok := elements.Next()
		if !ok {
			break
		}
		switch element.Kind {
		case layout.ElementText:
			row.WriteString(element.Text)
		case layout.ElementWidget:
			row.WriteString(strings.Repeat("·", element.Widget.ColumnCount))
		case layout.ElementWrap:
			fmt.Println(row.String())
			row.Reset()
			row.WriteString("      ")
			row.WriteString(strings.Repeat(" ", line.WrapIndentationWidth))
		}
	}
	fmt.Println(row.String())
}
