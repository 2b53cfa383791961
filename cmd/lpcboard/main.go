// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"maps"
	"os"
	"slices"

	"github.com/ezrec/lpcboard/board"
	"github.com/ezrec/lpcboard/boarddef"
)

func main() {
	var name string
	var deffile string
	var firmware string
	var input string
	var output string
	var verbose bool

	flag.StringVar(&name, "m", "lpc2119", "Board to bring up")
	flag.StringVar(&deffile, "b", "", ".board definition file to use")
	flag.StringVar(&firmware, "f", "", "Firmware image to load")
	flag.StringVar(&input, "i", "", "Serial input")
	flag.StringVar(&output, "o", "-", "Serial output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	catalog := board.NewCatalog()
	err := board.RegisterBuiltin(catalog)
	if err != nil {
		log.Fatal(err)
	}

	// A definition file registers (and selects) a board variant.
	if len(deffile) != 0 {
		src, err := os.ReadFile(deffile)
		if err != nil {
			log.Fatalf("%v: %v", deffile, err)
		}
		def, err := boarddef.Parse(deffile, src)
		if err != nil {
			log.Fatalf("%v: %v", deffile, err)
		}
		err = catalog.RegisterDefinition(def)
		if err != nil {
			log.Fatalf("%v: %v", deffile, err)
		}
		name = def.Name
	}

	var opts board.Options

	if len(firmware) != 0 {
		image, err := os.ReadFile(firmware)
		if err != nil {
			log.Fatalf("%v: %v", firmware, err)
		}
		opts.Firmware = image
	}

	if input == "-" {
		opts.SerialInput = os.Stdin
	} else if len(input) != 0 {
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
		opts.SerialInput = inf
	}

	if output == "-" {
		opts.SerialOutput = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		opts.SerialOutput = ouf
	}

	bd, err := catalog.BringUp(name, opts)
	if err != nil {
		// Bring-up is all-or-nothing; a misconfigured topology refuses
		// to start the session.
		log.Fatalf("%v: %v", name, err)
	}

	err = bd.FeedSerial()
	if err != nil {
		log.Fatalf("%v: %v", name, err)
	}

	if verbose {
		defines := map[string]string{}
		for key, value := range bd.Defines() {
			defines[key] = value
		}
		for _, key := range slices.Sorted(maps.Keys(defines)) {
			log.Printf("%v=%v", key, defines[key])
		}
		for base, region := range bd.Space.Regions() {
			log.Printf("%08x: %v (%v bytes)", base, region.Name(), region.Size())
		}
		log.Printf("cpu: %v", bd.Cpu)
	}
}
