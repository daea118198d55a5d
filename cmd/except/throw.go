package main

import (
	"fmt"
	"io"

	"github.com/deepnoodle-ai/except"
	"github.com/deepnoodle-ai/except/engine"
	"github.com/deepnoodle-ai/except/errors"
	"github.com/deepnoodle-ai/except/exception"
	"github.com/spf13/cobra"
)

func newThrowCmd(cfg *settings) *cobra.Command {
	var (
		catches []string
		nest    int
	)
	cmd := &cobra.Command{
		Use:   "throw <kind>",
		Short: "Throw an exception through nested regions",
		Long: `Throw an exception of the given kind inside --nest nested protected
regions. The innermost region declares the --catch clauses in order; the
outer ones declare none and forward whatever reaches them.`,
		Example: "  except throw out_of_range --catch domain_error --catch logic_error",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(args[0], false)
			if err != nil {
				return err
			}
			clauses := make([]exception.Kind, 0, len(catches))
			for _, name := range catches {
				k, err := parseKind(name, true)
				if err != nil {
					return err
				}
				clauses = append(clauses, k)
			}
			opts, err := cfg.runOptions(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return runThrow(cmd.OutOrStdout(), kind, clauses, nest, opts...)
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			names := exception.Names()
			return names[:len(names)-1], cobra.ShellCompDirectiveNoFileComp
		},
	}
	cmd.Flags().StringArrayVarP(&catches, "catch", "c", nil, "Kind declared by a catch clause (repeatable, \"any\" catches all)")
	cmd.Flags().IntVarP(&nest, "nest", "n", 1, "Number of nested protected regions")
	_ = cmd.RegisterFlagCompletionFunc("catch", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return exception.Names(), cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func parseKind(name string, clause bool) (exception.Kind, error) {
	k, ok := exception.ParseKind(name)
	if ok && (clause || k != exception.Any) {
		return k, nil
	}
	msg := fmt.Sprintf("unknown exception kind %q", name)
	if ok {
		msg = "any can only be used in a catch clause"
	}
	return exception.None, errors.NewDiagnostic(errors.E1001, msg, errors.SuggestKind(name, clause))
}

func runThrow(out io.Writer, kind exception.Kind, clauses []exception.Kind, nest int, opts ...except.Option) error {
	if nest < 1 {
		nest = 1
	}
	return except.Run(func(rt *engine.Runtime) {
		var region func(level int)
		region = func(level int) {
			if level < nest {
				rt.Try(func() { region(level + 1) })
				return
			}
			r := rt.Begin(func() {
				fmt.Fprintf(out, "throwing %s at depth %d\n", bold(kind), rt.Depth())
				rt.Throw(kind)
			})
			for _, declared := range clauses {
				r.Catch(declared, func(k exception.Kind) {
					fmt.Fprintf(out, "caught %s by %s clause at depth %d: %s\n",
						k, declared, rt.Depth(), green(k.Describe()))
				})
			}
			r.End()
		}
		region(1)
	}, opts...)
}
