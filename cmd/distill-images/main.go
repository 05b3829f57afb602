// Command distill-images copies every Nth file from a set of folders into
// an output folder, e.g. to pull a manageable sample out of a large photo
// dump.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"

	"github.com/holybiber/image-tools/internal/config"
	"github.com/holybiber/image-tools/internal/distill"
	"github.com/holybiber/image-tools/internal/logging"
)

var version = "1.0.0"

// folderList collects repeated --input-folders flags.
type folderList []string

func (f *folderList) String() string { return strings.Join(*f, ",") }

func (f *folderList) Set(s string) error {
	*f = append(*f, s)
	return nil
}

func main() {
	os.Exit(run())
}

func run() int {
	fs := flag.NewFlagSet("distill-images", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs) }

	var folders folderList
	var noColor, forceColor, showVersion bool
	fs.Var(&folders, "input-folders", "Input folder (repeat the flag for several)")
	n := fs.Int("n", 0, "Take every nth file")
	offset := fs.Int("o", 0, "Index of the first file taken (default 0)")
	output := fs.String("output-folder", "", "Folder where selected files are copied")
	fs.BoolVar(&noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&showVersion, "V", false, "Same as --version")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return 1
	}
	if showVersion {
		fmt.Fprintln(os.Stdout, "distill-images v"+version)
		return 0
	}

	opts := distill.Options{
		InputFolders: folders,
		N:            *n,
		Offset:       *offset,
		OutputFolder: *output,
	}
	if err := opts.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "distill-images: %v\n", err)
		return 1
	}

	// The sampler shares the organizer's logger; only the color mode is
	// relevant here.
	cfg := config.DefaultConfig()
	if noColor {
		cfg.ColorMode = config.ColorNever
	} else if forceColor {
		cfg.ColorMode = config.ColorAlways
	}
	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "distill-images: %v\n", err)
		return 1
	}
	defer log.Close()

	copied, err := distill.Run(afero.NewOsFs(), opts, log)
	if err != nil {
		log.Error("%v", err)
		return 1
	}
	log.Success("Copied %d files to %s", copied, opts.OutputFolder)
	return 0
}

// printUsage writes the help text to stderr.
func printUsage(fs *flag.FlagSet) {
	fmt.Fprintln(os.Stderr, "distill-images v"+version+" — copy every nth file from folders into an output folder")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "  distill-images --input-folders <path> [--input-folders <path>...] -n <int> [-o <int>] --output-folder <path>")
	fmt.Fprintln(os.Stderr)
	fs.PrintDefaults()
}
