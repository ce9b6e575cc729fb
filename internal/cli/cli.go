// Package cli implements the lizard command: decompress a mozLz4 file into a plain file.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/arnau/lizard"
)

// Version is set at build time with -ldflags "-X github.com/arnau/lizard/internal/cli.Version=...".
var Version = "dev"

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

const usage = `Usage: lizard [flags] <input> <output>

Decompresses a Mozilla-flavoured LZ4 file (mozLz40 header) into output.

Flags:
`

// Run executes the command with args (without the program name) and returns the exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet()
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return ExitOK
		}
		return ExitUsage
	}

	if v, _ := fs.GetBool("version"); v {
		fmt.Fprintf(stdout, "lizard %s\n", Version)
		return ExitOK
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return ExitUsage
	}

	cfg, err := LoadConfig(fs)
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return ExitError
	}

	log, closeLog, err := NewLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return ExitError
	}
	defer closeLog()

	if err := DecompressFile(cfg, fs.Arg(0), fs.Arg(1), log); err != nil {
		log.WithError(err).Error("decompression failed")
		// Errors must reach the user even when logging is redirected or silenced.
		if cfg.LogFile != "" || !log.IsLevelEnabled(logrus.ErrorLevel) {
			fmt.Fprintf(stderr, "ERROR: %v\n", err)
		}
		return ExitError
	}

	return ExitOK
}

// DecompressFile decompresses the mozLz4 file at input and writes the result to output.
// Nothing is written when decoding fails.
func DecompressFile(cfg *Config, input, output string, log *logrus.Logger) error {
	entry := log.WithFields(logrus.Fields{"input": input, "output": output})

	if !cfg.Force {
		if _, err := os.Stat(output); err == nil {
			return errors.Errorf("output file %s already exists (use --force to overwrite)", output)
		}
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return errors.Wrap(err, "couldn't read input file")
	}
	entry.WithField("compressed_bytes", len(data)).Debug("read input")

	if c, err := lizard.ParseContainer(data); err == nil {
		entry.WithField("declared_size", c.DeclaredSize).Debug("parsed header")
	}

	out, err := lizard.Decompress(data, cfg.Options())
	if err != nil {
		return errors.Wrap(err, "couldn't decompress input file")
	}

	if err := os.WriteFile(output, out, 0644); err != nil {
		return errors.Wrap(err, "couldn't write output file")
	}

	entry.WithFields(logrus.Fields{
		"compressed_bytes":   len(data),
		"decompressed_bytes": len(out),
	}).Info("decompressed")

	return nil
}
