package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chrisuehlinger/hiccup/convert"
	"github.com/chrisuehlinger/hiccup/printer"
	"github.com/chrisuehlinger/hiccup/ui"
)

func main() {
	args := os.Args[1:]

	// Batch mode for scripts and tests: convert stdin, print to stdout.
	if len(args) > 0 && args[0] == "--stdin" {
		if err := runStdin(args[1:]); err != nil {
			fmt.Fprintln(os.Stderr, "hiccup:", err)
			os.Exit(1)
		}
		return
	}

	fmt.Println("Hiccup - HTML to element calls")

	shell := ui.NewShell()

	// A file argument preloads the input pane.
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "hiccup:", err)
			os.Exit(1)
		}
		shell.SetInput(string(data))
	}

	shell.Run()
}

func runStdin(args []string) error {
	var opts convert.Options
	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "--ns="):
			opts.Namespace = strings.TrimPrefix(arg, "--ns=")
		case arg == "--keep-empty-attrs":
			opts.KeepEmptyAttrs = true
		default:
			return fmt.Errorf("unknown flag %q", arg)
		}
	}

	src, err := io.ReadAll(os.Stdin)
	if err != nil {
		return err
	}

	res, err := convert.FromString(string(src), opts)
	if err != nil {
		return err
	}

	out := printer.SprintResult(res)
	if out != "" {
		fmt.Println(out)
	}
	return nil
}
