package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dgallion1/mdlorem/internal/corpus"
	"github.com/dgallion1/mdlorem/internal/lorem"
	"github.com/dgallion1/mdlorem/internal/render"
	"github.com/spf13/cobra"
)

type options struct {
	cfg         lorem.Config
	headerStyle string
	listStyle   string
	corpusFile  string
	format      string
	out         string
	render      bool
	style       string
	width       int
	languages   bool
}

func newRootCmd() *cobra.Command {
	opts := &options{cfg: lorem.DefaultConfig()}

	cmd := &cobra.Command{
		Use:   "mdlorem",
		Short: "Generate deterministic lorem ipsum Markdown",
		Long: "mdlorem builds placeholder Markdown from a seed. The same flags always\n" +
			"produce the same document.",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), opts)
		},
	}

	f := cmd.Flags()
	c := &opts.cfg
	f.StringVarP(&c.Seed, "seed", "s", c.Seed, "seed string")
	f.IntVarP(&c.Blocks, "blocks", "b", c.Blocks, "number of blocks")
	f.Float64Var(&c.AvgSentencesPerParagraph, "sentences", c.AvgSentencesPerParagraph, "average sentences per paragraph")
	f.StringVarP(&c.Language, "language", "l", c.Language, "corpus language")

	f.BoolVar(&c.EnableHeaders, "headers", c.EnableHeaders, "emit headers")
	f.BoolVar(&c.EnableLists, "lists", c.EnableLists, "emit lists")
	f.BoolVar(&c.EnableCode, "code", c.EnableCode, "emit fenced code blocks")
	f.BoolVar(&c.EnableBlockquotes, "quotes", c.EnableBlockquotes, "emit blockquotes")

	f.BoolVar(&c.InlineEmphasis, "emphasis", c.InlineEmphasis, "inline *emphasis*")
	f.BoolVar(&c.InlineStrong, "strong", c.InlineStrong, "inline **strong**")
	f.BoolVar(&c.InlineLinks, "links", c.InlineLinks, "inline links and reference definitions")
	f.BoolVar(&c.InlineCode, "code-spans", c.InlineCode, "inline `code` spans")

	f.StringVar(&opts.headerStyle, "header-style", string(c.HeaderStyle), "header style: atx or setext")
	f.StringVar(&opts.listStyle, "list-style", string(c.ListStyle), "list style: unordered or ordered")

	f.Float64Var(&c.HeaderFrequency, "header-freq", c.HeaderFrequency, "header band width")
	f.Float64Var(&c.ListFrequency, "list-freq", c.ListFrequency, "list band width")
	f.Float64Var(&c.CodeFrequency, "code-freq", c.CodeFrequency, "code band width")
	f.Float64Var(&c.QuoteFrequency, "quote-freq", c.QuoteFrequency, "blockquote band width")

	f.StringVar(&opts.corpusFile, "corpus", "", "YAML corpus table to use instead of the built-in one")
	f.StringVarP(&opts.format, "format", "f", "markdown", "output format: markdown or html")
	f.StringVarP(&opts.out, "out", "o", "", "write to file instead of stdout")
	f.BoolVar(&opts.render, "render", false, "render for the terminal")
	f.StringVar(&opts.style, "style", "dark", "terminal style used with --render")
	f.IntVar(&opts.width, "width", 80, "word wrap width used with --render")
	f.BoolVar(&opts.languages, "languages", false, "list supported languages and exit")

	return cmd
}

func (o *options) validate() error {
	switch o.format {
	case "markdown":
	case "html":
		if o.render {
			return fmt.Errorf("--render prints styled markdown and cannot be combined with --format html")
		}
	default:
		return fmt.Errorf("unsupported format: %s", o.format)
	}
	return nil
}

func run(stdout io.Writer, opts *options) error {
	if err := opts.validate(); err != nil {
		return err
	}

	corpora := corpus.Default()
	if opts.corpusFile != "" {
		reg, err := corpus.LoadFile(opts.corpusFile)
		if err != nil {
			return err
		}
		corpora = reg
	}

	if opts.languages {
		_, err := fmt.Fprintln(stdout, strings.Join(corpora.Languages(), "\n"))
		return err
	}

	cfg := opts.cfg
	cfg.HeaderStyle = lorem.HeaderStyle(strings.ToLower(opts.headerStyle))
	cfg.ListStyle = lorem.ListStyle(strings.ToLower(opts.listStyle))

	doc, err := lorem.NewGenerator(corpora).Generate(cfg)
	if err != nil {
		return err
	}

	var out string
	switch {
	case opts.render:
		out, err = render.Terminal(doc, opts.style, opts.width)
	case opts.format == "html":
		var b []byte
		b, err = render.HTML([]byte(doc))
		out = string(b)
	default:
		out = doc + "\n"
	}
	if err != nil {
		return err
	}

	if opts.out != "" {
		if err := os.WriteFile(opts.out, []byte(out), 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}
	_, err = io.WriteString(stdout, out)
	return err
}
