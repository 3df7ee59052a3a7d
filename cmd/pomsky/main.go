// Command pomsky compiles a pomsky-language pattern to a target regex
// flavor's syntax.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	osc52 "github.com/aymanbagabas/go-osc52/v2"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	pomsky "github.com/pomsky-lang/pomsky-go"
	"github.com/pomsky-lang/pomsky-go/internal/diag"
	"github.com/pomsky-lang/pomsky-go/internal/flavor"

	// Import flavors to register them via init().
	_ "github.com/pomsky-lang/pomsky-go/internal/flavor/dotnet"
	_ "github.com/pomsky-lang/pomsky-go/internal/flavor/java"
	_ "github.com/pomsky-lang/pomsky-go/internal/flavor/javascript"
	_ "github.com/pomsky-lang/pomsky-go/internal/flavor/pcre"
	_ "github.com/pomsky-lang/pomsky-go/internal/flavor/python"
	_ "github.com/pomsky-lang/pomsky-go/internal/flavor/ruby"
	_ "github.com/pomsky-lang/pomsky-go/internal/flavor/rust"
)

var version = "0.1.0"

func main() {
	var stdin io.Reader
	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeCharDevice) == 0 {
		stdin = os.Stdin
	}
	if err := run(os.Args, stdin, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var (
		flavorName     string
		pathFlag       string
		maxRangeDigits uint16
		noNewline      bool
		copyResult     bool
	)

	cmd := &cobra.Command{
		Use:           "pomsky [pattern]",
		Short:         "Compile a pomsky pattern to a regular expression",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, posArgs []string) error {
			f, ok := flavor.Get(flavorName)
			if !ok {
				fmt.Fprintf(stderr, "Error: unknown flavor '%s'\n", flavorName)
				fmt.Fprintf(stderr, "Available flavors: %s\n", strings.Join(flavor.List(), ", "))
				return fmt.Errorf("unknown flavor: %s", flavorName)
			}

			pattern, err := readPattern(posArgs, pathFlag, stdin)
			if err != nil {
				fmt.Fprintf(stderr, "Error: %v\n", err)
				return err
			}

			out, bag, err := pomsky.ParseAndCompile(pattern, pomsky.ParseOptions{}, pomsky.CompileOptions{Flavor: f, MaxRangeDigits: maxRangeDigits})
			if bag != nil && len(bag.All()) > 0 {
				diag.NewRenderer(stderr, pattern).Render(stderr, bag)
			}
			if err != nil {
				fmt.Fprintf(stderr, "Error: %v\n", err)
				return err
			}
			if bag != nil && bag.HasErrors() {
				return fmt.Errorf("compile error")
			}

			if noNewline {
				fmt.Fprint(stdout, out)
			} else {
				fmt.Fprintln(stdout, out)
			}

			if copyResult {
				if tty, ok := stderr.(interface{ Fd() uintptr }); ok && isatty.IsTerminal(tty.Fd()) {
					osc52.New(out).WriteTo(stderr)
				}
			}
			return nil
		},
	}
	cmd.SetArgs(args[1:])
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	var flags *pflag.FlagSet = cmd.Flags()
	flags.StringVarP(&flavorName, "flavor", "f", "pcre", fmt.Sprintf("regex flavor (%s)", strings.Join(flavor.List(), ", ")))
	flags.StringVar(&pathFlag, "path", "", "read the pattern from FILE instead of an argument or stdin")
	flags.Uint16Var(&maxRangeDigits, "max-range-digits", 0, "cap range expressions to this many digits (0 uses the default of 6)")
	flags.BoolVarP(&noNewline, "no-new-line", "n", false, "don't print a trailing newline after the compiled regex")
	flags.BoolVar(&copyResult, "copy", false, "also copy the compiled regex to the terminal's clipboard via OSC 52")

	return cmd.Execute()
}

// readPattern reads the pattern from the positional argument if present,
// then --path, then falls back to stdin.
func readPattern(posArgs []string, path string, stdin io.Reader) (string, error) {
	if len(posArgs) > 0 {
		return posArgs[0], nil
	}
	if path != "" {
		input, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}
		return strings.TrimSpace(string(input)), nil
	}
	if stdin != nil {
		input, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read from stdin: %w", err)
		}
		return strings.TrimSpace(string(input)), nil
	}
	return "", fmt.Errorf("no pattern provided (pass it as an argument, --path FILE, or pipe it on stdin)")
}
