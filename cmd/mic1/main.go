package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/microprog/mic1/pkg/cpu"
	"github.com/microprog/mic1/pkg/frontpanel"
	"github.com/microprog/mic1/pkg/micro"
	"github.com/microprog/mic1/pkg/trace"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mic1",
		Short: "Mic-1 microarchitecture emulator — single-step a microprogrammed stack machine",
	}

	// run command
	var romPath string
	var cycles int
	var noPause bool
	var tracePath string
	var memSize int

	runCmd := &cobra.Command{
		Use:   "run [program image]",
		Short: "Load a control ROM and program image and step the datapath",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := micro.LoadStore(romPath)
			if err != nil {
				if !errors.Is(err, micro.ErrMissingROM) {
					return err
				}
				fmt.Fprintf(os.Stderr, "warning: %s missing, control store is all zeros\n", romPath)
			}

			mem := cpu.NewMemory(memSize)
			if err := cpu.LoadImage(mem, args[0]); err != nil {
				if !errors.Is(err, cpu.ErrMissingImage) {
					return err
				}
				fmt.Fprintf(os.Stderr, "warning: %s missing, memory is all zeros\n", args[0])
			}

			m := cpu.NewMachine(mem, store)
			panel := frontpanel.New()

			var rec *trace.Recorder
			if tracePath != "" {
				rec = trace.NewRecorder()
			}

			for cycle := 0; cycles == 0 || cycle < cycles; cycle++ {
				fmt.Println(panel.Render(m))
				if !noPause {
					_, quit, err := frontpanel.WaitKey()
					if err != nil {
						return fmt.Errorf("read keystroke: %w", err)
					}
					if quit {
						break
					}
				}
				m.Step()
				if rec != nil {
					rec.Record(cycle, m)
				}
			}

			if rec != nil {
				f, err := os.Create(tracePath)
				if err != nil {
					return err
				}
				defer f.Close()
				if err := rec.WriteJSON(f); err != nil {
					return err
				}
				fmt.Fprintf(os.Stderr, "trace: %d cycles written to %s\n", rec.Len(), tracePath)
			}
			return nil
		},
	}
	runCmd.Flags().StringVar(&romPath, "rom", "microprog.rom", "Control store ROM file")
	runCmd.Flags().IntVar(&cycles, "cycles", 0, "Stop after N cycles (0 = run until quit)")
	runCmd.Flags().BoolVar(&noPause, "no-pause", false, "Do not wait for a keystroke between cycles")
	runCmd.Flags().StringVar(&tracePath, "trace", "", "Write a JSON cycle trace to this file")
	runCmd.Flags().IntVar(&memSize, "mem", cpu.DefaultMemorySize, "Main memory size in bytes")

	// audit command
	var auditRom string

	auditCmd := &cobra.Command{
		Use:   "audit",
		Short: "Statically check a control ROM for undefined field values",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := micro.LoadStore(auditRom)
			if err != nil {
				return err
			}

			findings := micro.Audit(store)
			if len(findings) == 0 {
				fmt.Println("No findings.")
				return nil
			}
			for _, f := range findings {
				fmt.Println(f)
			}
			return fmt.Errorf("%d suspicious control store entries", len(findings))
		},
	}
	auditCmd.Flags().StringVar(&auditRom, "rom", "microprog.rom", "Control store ROM file")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(auditCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
