// Command gentables writes the compiled-in analysis tables of
// internal/tables. It is run by go generate:
//
//	go run ./cmd/gentables -o internal/tables/zconsts.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"

	"github.com/tphakala/go-sbc/internal/tables"
)

// table describes one generated variable.
type table struct {
	name     string
	subbands int
	odd      bool
}

var generated = []table{
	{"Analysis4Odd", 4, true},
	{"Analysis4Even", 4, false},
	{"Analysis8Odd", 8, true},
	{"Analysis8Even", 8, false},
}

func main() {
	out := flag.String("o", "zconsts.go", "Output file")
	flag.Parse()

	src, err := render()
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatal(err)
	}
}

// render returns the formatted source of zconsts.go.
func render() ([]byte, error) {
	var b bytes.Buffer
	b.WriteString("// Code generated by gentables; DO NOT EDIT.\n\npackage tables\n")

	for _, t := range generated {
		m := t.subbands
		values := tables.Build(m, t.odd)

		placement := "group-aligned windows\n// (blocks 1 and 3 of each call)."
		if t.odd {
			placement = "windows starting mid-group\n// (blocks 0 and 2 of each call)."
		}
		fmt.Fprintf(&b, "\n// %s is the %d-band table for %s\n", t.name, m, placement)
		fmt.Fprintf(&b, "var %s = [Len%d]int16{\n", t.name, m)

		// one row per hop, then the modulation block in rows of the same width
		row := 2 * m
		for i := 0; i < len(values); i += row {
			if i == tables.TapCount(m) {
				b.WriteString("\t// modulation\n")
			}
			fields := make([]string, 0, row)
			for _, v := range values[i : i+row] {
				fields = append(fields, fmt.Sprint(v))
			}
			fmt.Fprintf(&b, "\t%s,\n", strings.Join(fields, ", "))
		}
		b.WriteString("}\n")
	}

	return format.Source(b.Bytes())
}
