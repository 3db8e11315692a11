// Command ucumsh is a REPL over the UCUM expression evaluator: read a
// line, evaluate it, print the result, loop until EOF.
//
// Two leading-colon directives sit alongside plain expressions:
//
//	:ctx name fmt   registers a named display Context (fmt is a Go fmt
//	                string, %[1]f for the magnitude and %[2]s for the unit)
//	:use name       switches subsequent output to a registered Context
//
// With no active Context, a result prints as "<mag> <unit>" plus, when the
// reduced unit matches a familiar composite, its dimension in parens.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/imhotep-nb/ucum"
)

var rootCmd = &cobra.Command{
	Use:   "ucumsh",
	Short: "Evaluate UCUM unit expressions interactively",
	Long: `ucumsh is a REPL for the UCUM unit algebra and expression evaluator.

Each line is evaluated as an expression over dimensioned quantities, e.g.:

	1 kg.m/s2 + 5 N
	1 kg.m/s2 * 2 s/m

A parse error or dimensional mismatch is reported on the line it occurred;
the loop continues. End input with EOF (Ctrl-D) to exit.

Two directives manage display contexts:

	:ctx name fmt   define a named Context, e.g. :ctx pressure %.2[1]f %[2]s
	:use name       format subsequent results through that Context`,
	RunE: runRepl,
}

func runRepl(cmd *cobra.Command, args []string) error {
	scanner := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()
	var active *ucum.Context

	for {
		fmt.Fprint(out, "ucum> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := scanner.Text()
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ":") {
			if err := runDirective(line, &active); err != nil {
				fmt.Fprintln(out, "error:", err)
			}
			continue
		}

		q, err := ucum.EvaluateExpression(line)
		if err != nil {
			fmt.Fprintln(out, "error:", err)
			continue
		}
		printResult(out, q, active)
	}
}

// runDirective handles a leading-colon REPL command. ":ctx name fmt"
// registers a Context and makes it active; ":use name" points active at a
// registered Context for subsequent output.
func runDirective(line string, active **ucum.Context) error {
	fields := strings.SplitN(strings.TrimPrefix(line, ":"), " ", 3)
	switch fields[0] {
	case "ctx":
		if len(fields) != 3 {
			return fmt.Errorf("usage: :ctx name fmt")
		}
		ctx, err := ucum.DefineContext(fields[1], fields[2])
		if err != nil {
			return err
		}
		*active = ctx
		return nil
	case "use":
		if len(fields) != 2 {
			return fmt.Errorf("usage: :use name")
		}
		ctx := ucum.Ctx(fields[1])
		if ctx == nil {
			return fmt.Errorf("no such context: %s", fields[1])
		}
		*active = ctx
		return nil
	default:
		return fmt.Errorf("unknown directive: %s", fields[0])
	}
}

func printResult(out io.Writer, q ucum.Quantity, active *ucum.Context) {
	if active != nil {
		fmt.Fprintln(out, active.FormatContext(q))
		return
	}
	line := ucum.FormatQuantity(q)
	if dim := ucum.Dimension(q.Term); dim != "" {
		line = fmt.Sprintf("%s (%s)", line, dim)
	}
	fmt.Fprintln(out, line)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
