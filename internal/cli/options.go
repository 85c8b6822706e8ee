// internal/cli/options.go
package cli

import (
	"flag"
	"fmt"
	"io"
	"math"

	"varanno/internal/cliutil"
	"varanno/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	EvidenceFiles []string

	// Annotation
	Window   int
	MinGQX   float64
	MaxDepth int
	MaxSB    float64

	// Output
	Output string // text|json|jsonl
	Header bool   // true unless --no-header

	// Misc
	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}
		fmt.Fprintf(out, "%s – streaming per-position variant-site annotation\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s [options] evidence.tsv[.gz] [more.tsv ...]\n", name)
		fmt.Fprintf(out, "  %s [options] -            # read evidence from STDIN\n", name)

		printDefaults(out, def)
	}
	return fs
}

func printDefaults(out io.Writer, def func(string) string) {
	fmt.Fprintln(out, "\nInput:")
	fmt.Fprintln(out, "  -i, --input file            Evidence TSV (repeatable) or '-' for STDIN")

	fmt.Fprintln(out, "\nAnnotation:")
	fmt.Fprintf(out, "  -w, --window int            Positions a site may trail the head before calling [%s]\n", def("window"))
	fmt.Fprintf(out, "      --min-gqx float         LowGQX below this site quality (0=off) [%s]\n", def("min-gqx"))
	fmt.Fprintf(out, "      --max-depth int         HighDepth above this depth (0=off) [%s]\n", def("max-depth"))
	fmt.Fprintf(out, "      --max-sb float          HighSNVSB above this strand bias (0=off) [%s]\n", def("max-sb"))

	fmt.Fprintln(out, "\nOutput:")
	fmt.Fprintf(out, "  -o, --output string         Output: text | json | jsonl [%s]\n", def("output"))
	fmt.Fprintf(out, "      --no-header             Suppress header line [%s]\n", def("no-header"))

	fmt.Fprintln(out, "\nMiscellaneous:")
	fmt.Fprintf(out, "  -q, --quiet                 Suppress non-essential warnings [%s]\n", def("quiet"))
	fmt.Fprintln(out, "      --examples              Show quickstart examples and exit")
	fmt.Fprintln(out, "  -v, --version               Print version and exit")
	fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
}

// sliceValue appends each value to a *[]string (for --input/-i).
type sliceValue struct{ dst *[]string }

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return fmt.Sprint(*s.dst)
}
func (s *sliceValue) Set(v string) error {
	*s.dst = append(*s.dst, v)
	return nil
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool
	var noHeader bool
	var showExamples bool

	in := &sliceValue{dst: &opt.EvidenceFiles}
	fs.Var(in, "input", "evidence TSV file (repeatable) or '-'")
	fs.Var(in, "i", "alias of --input")

	fs.IntVar(&opt.Window, "window", 16, "call/evict lag behind the stream head [16]")
	fs.IntVar(&opt.Window, "w", 16, "alias of --window")
	fs.Float64Var(&opt.MinGQX, "min-gqx", 30, "LowGQX threshold (0=off) [30]")
	fs.IntVar(&opt.MaxDepth, "max-depth", 0, "HighDepth threshold (0=off) [0]")
	fs.Float64Var(&opt.MaxSB, "max-sb", 0, "HighSNVSB threshold (0=off) [0]")

	fs.StringVar(&opt.Output, "output", "text", "output: text | json | jsonl [text]")
	fs.StringVar(&opt.Output, "o", "text", "alias of --output")
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line [false]")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&opt.Version, "v", false, "alias of --version")
	fs.BoolVar(&help, "h", false, "show this help [false]")
	fs.BoolVar(&showExamples, "examples", false, "show quickstart examples and exit [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if showExamples {
		return opt, ErrPrintedAndExitOK
	}
	if help {
		return opt, flag.ErrHelp
	}
	opt.Header = !noHeader
	if opt.Version {
		return opt, nil
	}

	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return opt, err
		}
		opt.EvidenceFiles = append(opt.EvidenceFiles, exp...)
	}
	return opt, validate(&opt)
}

func validate(o *Options) error {
	if len(o.EvidenceFiles) == 0 {
		return fmt.Errorf("no evidence input; pass file(s) or '-' for STDIN")
	}
	switch o.Output {
	case "text", "json", "jsonl":
	default:
		return fmt.Errorf("invalid --output %q (want text, json or jsonl)", o.Output)
	}
	if o.Window < 0 {
		return fmt.Errorf("--window must be >= 0")
	}
	if o.MinGQX < 0 || o.MaxSB < 0 || o.MaxDepth < 0 {
		return fmt.Errorf("filter thresholds must be >= 0")
	}
	if int64(o.MaxDepth) > math.MaxUint32 {
		return fmt.Errorf("--max-depth %d out of range (max %d)", o.MaxDepth, uint32(math.MaxUint32))
	}
	return nil
}
