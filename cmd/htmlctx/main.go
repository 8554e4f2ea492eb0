/*
Command htmlctx builds a small example HTML document with package markup
and writes it to stdout or to a file.

Usage:

   htmlctx [--output FILE] [--tree] [--dot FILE] [--trace]

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/htmlctx/markup"
	"github.com/npillmayer/htmlctx/markup/dbg"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

func tracer() tracing.Trace {
	return tracing.Select("htmlctx.markup")
}

type options struct {
	output string // output file; stdout if empty
	tree   bool   // print an outline of the tree to stderr
	dot    string // GraphViz output file
	trace  bool   // trace at debug level
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "htmlctx",
		Short:         "Build an example HTML document and write it to stdout or a file",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write document to `file` instead of stdout")
	cmd.Flags().BoolVar(&opts.tree, "tree", false, "print an outline of the document tree to stderr")
	cmd.Flags().StringVar(&opts.dot, "dot", "", "write a GraphViz diagram of the document tree to `file`")
	cmd.Flags().BoolVar(&opts.trace, "trace", false, "trace building and writing at debug level")
	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	if opts.trace {
		for _, key := range []string{"htmlctx.tree", "htmlctx.markup", "htmlctx.dbg"} {
			tracing.Select(key).SetTraceLevel(tracing.LevelDebug)
		}
	}
	var out markup.OutputOption
	if opts.output != "" {
		out = markup.ToFile(opts.output)
	} else {
		out = markup.ToWriter(cmd.OutOrStdout())
	}
	doc := markup.NewDocument(out)
	if err := doc.With(buildExample); err != nil {
		return err
	}
	if opts.tree {
		fmt.Fprint(cmd.ErrOrStderr(), dbg.TreePrint(doc))
	}
	if opts.dot != "" {
		f, err := os.Create(opts.dot)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := dbg.ToGraphViz(doc, f); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		tracer().Errorf("htmlctx: %v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
