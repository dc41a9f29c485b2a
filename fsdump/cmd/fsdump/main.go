// fsdump dumps the fields of a binary file according to a TOML layout
// description
//
//	fsdump -layout header.toml data.bin
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/thoo0224/readext"
	"github.com/thoo0224/readext/bytereader"
	"github.com/thoo0224/readext/fsdump"
)

var layoutPath = flag.String("layout", "", "path to the TOML layout file")

func main() {
	flag.Parse()

	if *layoutPath == "" || flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: fsdump -layout <layout.toml> <file>")
		os.Exit(2)
	}

	layout, err := fsdump.LoadLayout(*layoutPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	file := flag.Arg(0)
	source, err := bytereader.NewMemoryMappedReader(file)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer source.Unmap()

	values, err := fsdump.Dump(readext.NewReader(source), layout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("File   = %v\n", file)
	fmt.Printf("Size   = %v bytes\n", source.Len())
	fmt.Printf("Fields = %v\n\n", len(values))

	for _, v := range values {
		switch data := v.Data.(type) {
		case []int32:
			fmt.Printf("%-20v [%v] %v entries %v\n", v.Name, v.Kind, len(data), data)
		case []string:
			fmt.Printf("%-20v [%v] %v entries %q\n", v.Name, v.Kind, len(data), data)
		case string:
			fmt.Printf("%-20v [%v] %q\n", v.Name, v.Kind, data)
		default:
			fmt.Printf("%-20v [%v] %v\n", v.Name, v.Kind, data)
		}
	}

	fmt.Printf("\n%v of %v bytes consumed\n", source.Pos(), source.Len())
}
