// Command go6502 loads a raw binary image onto a flat RAM bus, sets
// the reset vector (to the load address unless -reset gives another),
// and runs the CPU until it
// halts on an invalid opcode or the process is interrupted.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"gopkg.in/urfave/cli.v2"

	"github.com/sixtyfiveohtwo/go6502/bus"
	"github.com/sixtyfiveohtwo/go6502/cpu"
	"github.com/sixtyfiveohtwo/go6502/memory"
)

func main() {
	app := &cli.App{
		Name:    "go6502",
		Usage:   "run a 6502 program image against an emulated bus",
		Version: "v0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "image",
				Aliases: []string{"i"},
				Usage:   "path to the raw binary program image",
			},
			&cli.UintFlag{
				Name:    "load",
				Aliases: []string{"l"},
				Usage:   "address to load the image at",
				Value:   0x8000,
			},
			&cli.UintFlag{
				Name:  "reset",
				Usage: "address to set the reset vector to; 0 leaves it pointed at the image load address",
			},
			&cli.Float64Flag{
				Name:    "clock",
				Aliases: []string{"hz"},
				Usage:   "clock rate in Hz to pace execution at; 0 runs unpaced",
				Value:   1_000_000,
			},
			&cli.BoolFlag{
				Name:  "dump",
				Usage: "print a register snapshot after the run halts",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("go6502: %v", err)
	}
}

func run(c *cli.Context) error {
	image := c.String("image")
	if image == "" {
		return cli.Exit("go6502: -image is required", 1)
	}
	load := uint16(c.Uint("load"))
	reset := uint16(c.Uint("reset"))
	if reset == 0 {
		reset = load
	}
	clockHz := c.Float64("clock")

	prog, err := os.ReadFile(image)
	if err != nil {
		return cli.Exit(err, 1)
	}

	ram, err := memory.NewRAM(0x0000, 0xFFFF)
	if err != nil {
		return cli.Exit(err, 1)
	}
	if err := ram.Load(load, prog); err != nil {
		return cli.Exit(err, 1)
	}
	if err := ram.Load(cpu.ResetVector, []uint8{uint8(reset & 0xFF), uint8(reset >> 8)}); err != nil {
		return cli.Exit(err, 1)
	}

	b := bus.New()
	b.Connect(ram)
	chip := cpu.New(b, clockHz)
	chip.Reset()

	log.Printf("loaded %d bytes at %#04x, reset vector %#04x, clock %.0f Hz", len(prog), load, reset, clockHz)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := chip.Run(ctx); err != nil && err != context.Canceled {
		if c.Bool("dump") {
			log.Print(chip)
		}
		return cli.Exit(err, 1)
	}

	if c.Bool("dump") {
		log.Print(chip)
	}
	return nil
}
