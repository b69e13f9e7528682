package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zephyrtronium/calc"
)

// errEval is returned from non-interactive modes when any expression fails.
// The failures themselves have already been printed.
var errEval = errors.New("evaluation failed")

// app holds the state shared by the commands.
type app struct {
	v    *viper.Viper
	log  *logrus.Logger
	hist *history
	in   io.Reader
	out  io.Writer
	echo bool
}

// newRootCmd creates the root command
func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	a := &app{v: viper.New(), log: newLogger(), in: in, out: out}
	var (
		cfgFile, inname string
		loop            bool
	)
	rootCmd := &cobra.Command{
		Use:   "calc [expression...]",
		Short: "Evaluate arithmetic expressions",
		Long: `Evaluate arithmetic expressions with + - * / ^, parentheses, and the
functions ` + strings.Join(calc.Funcs(), ", ") + `.

Arguments are joined with spaces and evaluated as one expression; use -- before
an expression that starts with a minus sign. Without arguments, calc evaluates
each line of --in, prompts repeatedly with --loop, or prompts once.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.configure(cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case len(args) > 0:
				return a.runArgs(args)
			case inname != "":
				return a.runFile(inname)
			default:
				return a.runPrompt(loop)
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default $XDG_CONFIG_HOME/calc/calc.yaml)")
	flags.String("history", "", "history file, empty to disable (default $HOME/.calc_history)")
	flags.String("log-level", "", "log level (default warn)")
	flags.String("prompt", "", "interactive prompt label (default calc)")
	a.v.BindPFlag("history", flags.Lookup("history"))
	a.v.BindPFlag("log_level", flags.Lookup("log-level"))
	a.v.BindPFlag("prompt", flags.Lookup("prompt"))

	rootCmd.Flags().StringVar(&inname, "in", "", "evaluate each line of a file (- for stdin)")
	rootCmd.Flags().BoolVarP(&loop, "loop", "l", false, "prompt repeatedly until EOF, exit, or quit")
	rootCmd.Flags().BoolVar(&a.echo, "echo", false, "print the postfix form of each expression")

	rootCmd.AddCommand(
		newFuncsCmd(a),
		newHistoryCmd(a),
	)
	return rootCmd
}

func newFuncsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "funcs",
		Short: "List the functions expressions may call",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range calc.Funcs() {
				fmt.Fprintln(a.out, name)
			}
			return nil
		},
	}
}

func newHistoryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Print the expression history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.hist.WriteTo(a.out); err != nil {
				return fmt.Errorf("reading history: %w", err)
			}
			return nil
		},
	}
}

// evaluate records src in the history and prints its result or error. The
// result reports whether evaluation succeeded.
func (a *app) evaluate(src string) bool {
	src = strings.TrimSpace(src)
	a.hist.Append(src)
	e, err := calc.Parse(src)
	if err == nil {
		a.log.WithFields(logrus.Fields{"input": src, "postfix": e.String()}).Debug("parsed")
		if a.echo {
			fmt.Fprintf(a.out, "%v : ", e)
		}
		var r float64
		r, err = e.Eval()
		if err == nil {
			fmt.Fprintln(a.out, calc.Format(r))
			return true
		}
	}
	a.log.WithFields(logrus.Fields{"input": src, "error": err}).Debug("evaluation failed")
	fmt.Fprintln(a.out, "error:", err)
	return false
}

func (a *app) runArgs(args []string) error {
	if !a.evaluate(strings.Join(args, " ")) {
		return errEval
	}
	return nil
}

func (a *app) runFile(name string) error {
	var in io.Reader
	if name == "-" {
		in = a.in
	} else {
		f, err := os.Open(name)
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		in = f
	}
	failed := 0
	scan := bufio.NewScanner(in)
	for scan.Scan() {
		line := scan.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !a.evaluate(line) {
			failed++
		}
	}
	if err := scan.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	if failed > 0 {
		a.log.WithFields(logrus.Fields{"file": name, "failed": failed}).Info("some expressions failed")
		return errEval
	}
	return nil
}
