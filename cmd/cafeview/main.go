// Command cafeview boots the kernel's display sequence against an in-memory
// text buffer and shows the result on the host.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cafeos/cafeos/internal/kmain"
	"github.com/cafeos/cafeos/internal/preview"
	"github.com/cafeos/cafeos/internal/vga"
)

type config struct {
	mode   string
	output string
	clip   bool
	scale  int
	trace  bool
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{}
	flagSet := flag.NewFlagSet(args[0], flag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&cfg.mode, "mode", "ansi", "output mode: ansi, png or window")
	flagSet.StringVar(&cfg.output, "o", "", "output file for png mode (default stdout)")
	flagSet.BoolVar(&cfg.clip, "clip", false, "stop the banner at the end of its row")
	flagSet.IntVar(&cfg.scale, "scale", 1, "pixel scale for png and window modes")
	flagSet.BoolVar(&cfg.trace, "trace", false, "log boot stage transitions")
	if err := flagSet.Parse(args[1:]); err != nil {
		return nil, err
	}

	switch cfg.mode {
	case "ansi", "png", "window":
	default:
		return nil, fmt.Errorf("unknown mode %q", cfg.mode)
	}
	if cfg.scale < 1 {
		return nil, fmt.Errorf("scale must be at least 1, got %d", cfg.scale)
	}
	return cfg, nil
}

func boot(cfg *config) *vga.Buffer {
	opts := kmain.Options{ClipMessage: cfg.clip}
	if cfg.trace {
		opts.Trace = func(s kmain.Stage) { log.Printf("stage %s", s) }
	}

	var b vga.Buffer
	kmain.Prepare(&b, opts)
	return &b
}

func run(cfg *config, stdout io.Writer) error {
	page := boot(cfg).Page()

	switch cfg.mode {
	case "ansi":
		a, cols := preview.ForTerminal(int(os.Stdout.Fd()))
		if cols > 0 && cols < vga.Width {
			log.Printf("terminal is %d columns wide, rows will wrap", cols)
		}
		return a.Render(stdout, page)
	case "png":
		if cfg.output == "" {
			return preview.PNG(stdout, page, cfg.scale)
		}
		f, err := os.Create(cfg.output)
		if err != nil {
			return fmt.Errorf("create %s: %w", cfg.output, err)
		}
		if err := preview.PNG(f, page, cfg.scale); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	case "window":
		return preview.Window("CafeOS", page, cfg.scale)
	}
	return nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("cafeview: ")

	cfg, err := parseFlags(os.Args, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Print(err)
		os.Exit(2)
	}

	if err := run(cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
