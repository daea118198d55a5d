package main

import (
	"fmt"
	"io"

	"github.com/deepnoodle-ai/except"
	"github.com/deepnoodle-ai/except/engine"
	"github.com/deepnoodle-ai/except/exception"
	"github.com/spf13/cobra"
)

func newDemoCmd(cfg *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the nested rethrow scenario",
		Long: `Run a fixed scenario: out_of_range is thrown in an inner region, caught
there through its logic_error parent and rethrown. The outer region skips its
domain_error clause, catches out_of_range and throws bad_alloc inside a new
region that only catches runtime_error, so the program terminates.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := cfg.runOptions(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return runDemo(cmd.OutOrStdout(), opts...)
		},
	}
}

func runDemo(out io.Writer, opts ...except.Option) error {
	caught := func(k exception.Kind) {
		fmt.Fprintf(out, "Caught exception: %s\n", green(k.Describe()))
	}
	return except.Run(func(rt *engine.Runtime) {
		rt.Try(func() {
			rt.Try(func() {
				rt.Throw(exception.OutOfRange)
			},
				engine.Catch(exception.LogicError, func(exception.Kind) {
					caught(exception.LogicError)
					rt.Rethrow()
				}),
			)
		},
			engine.Catch(exception.DomainError, func(exception.Kind) {
				caught(exception.DomainError)
			}),
			engine.Catch(exception.OutOfRange, func(exception.Kind) {
				caught(exception.OutOfRange)
				rt.Try(func() {
					rt.Throw(exception.BadAlloc)
				},
					engine.Catch(exception.RuntimeError, func(exception.Kind) {
						caught(exception.RuntimeError)
					}),
				)
			}),
		)
	}, opts...)
}
