// FILE: cmd/main.go
// Demo: load a layered ini document and inspect or convert it.
//
//	go run ./cmd defaults.ini user.ini
//	go run ./cmd -format toml settings.ini
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"inifile"
)

func main() {
	format := flag.String("format", "list", "output format: list, ini, toml, yaml, json")
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		log.Fatal("usage: cmd [-format f] base.ini [overlay.ini ...]")
	}

	builder := inifile.NewBuilder().WithFile(files[0])
	if len(files) > 1 {
		builder.WithOverlay(files[1:]...)
	}

	doc, err := builder.Build()
	if err != nil {
		if !errors.Is(err, inifile.ErrNotFound) {
			log.Fatalf("load failed: %v", err)
		}
		log.Printf("base file missing, continuing with overlays: %v", err)
		err = nil
	}

	switch *format {
	case "list":
		for _, s := range doc.Sections() {
			fmt.Printf("[%s]\n", s.Name())
			if lines, ok := s.Lines(false); ok {
				for _, line := range lines {
					fmt.Printf("  | %s\n", line)
				}
				continue
			}
			for _, key := range s.Keys() {
				value, _ := s.Get(key)
				fmt.Printf("  %s = %s\n", key, value)
			}
		}
	case "ini":
		if _, err := doc.WriteTo(os.Stdout); err != nil {
			log.Fatalf("write failed: %v", err)
		}
	case "toml":
		err = doc.EncodeTOML(os.Stdout)
	case "yaml":
		err = doc.EncodeYAML(os.Stdout)
	case "json":
		err = doc.EncodeJSON(os.Stdout)
	default:
		log.Fatalf("unknown format %q", *format)
	}
	if err != nil {
		log.Fatalf("encode failed: %v", err)
	}
}
