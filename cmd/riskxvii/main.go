// Command riskxvii loads a RISKXVII image and runs it to completion,
// translating the engine's terminal outcome into a process exit code.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/enesgide/RISKXVII-Virtual-Machine/pkg/loader"
	"github.com/enesgide/RISKXVII-Virtual-Machine/pkg/vm"
)

func main() {
	log.SetFlags(0)

	var trace bool

	root := &cobra.Command{
		Use:          "riskxvii <image-path>",
		Short:        "Run a RISKXVII binary image",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := run(args[0], trace)
			if err != nil {
				return err
			}
			os.Exit(code)
			return nil
		},
	}
	root.Flags().BoolVar(&trace, "trace", false, "write an instruction trace to stderr")

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

// run loads path and executes it, returning the process exit code to
// use: 0 on halt, 1 on any other terminal outcome or startup failure.
func run(path string, trace bool) (int, error) {
	fp, err := os.Open(path)
	if err != nil {
		return 1, fmt.Errorf("opening image: %w", err)
	}
	defer fp.Close()

	instrMem, dataMem, err := loader.Load(fp)
	if err != nil {
		return 1, err
	}

	m := vm.NewMachine()
	m.InstrMem = instrMem
	m.DataMem = dataMem

	for {
		if trace && m.PC < vm.InstrMemSize {
			word := m.InstrMem[m.PC/4]
			log.Printf("pc=0x%08x word=0x%08x  %s", m.PC, word, vm.Disassemble(word))
		}
		switch vm.Step(m) {
		case vm.Halted:
			return 0, nil
		case vm.Running:
			continue
		default:
			return 1, nil
		}
	}
}
