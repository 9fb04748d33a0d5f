// Copyright 2025, The oct8 authors

package main

import (
	"flag"
	"log"
	"os"

	"github.com/oct8vm/oct8/emulator"
)

func main() {
	var compile string
	var load string
	var save bool
	var output string
	var verbose bool

	flag.StringVar(&compile, "c", "", ".o8 assembly file to compile")
	flag.StringVar(&load, "l", "", "binary text image to load")
	flag.BoolVar(&save, "s", false, "Save assembled image, do not execute")
	flag.StringVar(&output, "o", "-", "Program output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose

	switch {
	case len(compile) != 0:
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		err = emu.Assemble(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
	case len(load) != 0:
		inf, err := os.Open(load)
		if err != nil {
			log.Fatalf("%v: %v", load, err)
		}
		defer inf.Close()

		err = emu.LoadImage(inf)
		if err != nil {
			log.Fatalf("%v: %v", load, err)
		}
	default:
		log.Fatalf("%v: One of -c or -l is required", os.Args[0])
	}

	if output == "-" {
		emu.Console.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		emu.Console.Output = ouf
	}

	if save {
		err := emu.SaveImage(emu.Console.Output)
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	err := emu.Reset()
	if err != nil {
		log.Fatal(err)
	}

	for done, err := emu.Tick(); !done; done, err = emu.Tick() {
		if err != nil {
			log.Fatal(err)
		}
	}
}
