package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/lestrrat-go/xmlbuilder"
	"github.com/lestrrat-go/xmlbuilder/encoding"
	"github.com/lestrrat-go/xmlbuilder/internal/cliutil"
	"golang.org/x/text/transform"
)

type cmdopts struct {
	Root     string `long:"root" default:"records"`
	Record   string `long:"record" default:"record"`
	Encoding string `long:"encoding"`
	Output   string `long:"output"`
	Version  bool   `long:"version"`
}

func main() {
	os.Exit(_main())
}

func showVersion() {
	fmt.Printf("csv2xml: using xmlbuilder version %s\n", xmlbuilder.Version)
}

func showUsage() {
	fmt.Printf(`Usage : csv2xml [options] CSVfiles ...
	Convert the CSV files into a single XML document
	--root=NAME    : name of the root element (default: records)
	--record=NAME  : name of the element emitted per CSV row (default: record)
	--encoding=ENC : character encoding of the input (default: utf-8)
	--output=FILE  : write the document to FILE instead of stdout
	--version      : display the version of the XML library used
`)
}

func _main() int {
	opts := cmdopts{}
	args, err := flags.ParseArgs(&opts, os.Args[1:])
	if err != nil {
		showUsage()
		return 1
	}

	if opts.Version {
		showVersion()
		return 0
	}

	inputCh := make(chan io.Reader)
	errCh := make(chan error, 1)
	switch {
	case len(args) > 0: // filenames present
		go func() {
			defer close(inputCh)
			for _, f := range args {
				fh, err := os.Open(f)
				if err != nil {
					errCh <- err
					return
				}
				inputCh <- fh
			}
		}()
	case !cliutil.IsTty(os.Stdin):
		go func() {
			defer close(inputCh)
			inputCh <- os.Stdin
		}()
	default:
		showUsage()
		return 1
	}

	root := xmlbuilder.New(opts.Root)
	for in := range inputCh {
		if err := appendRecords(root, in, &opts); err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}
		if c, ok := in.(io.Closer); ok && in != os.Stdin {
			c.Close()
		}
	}

	select {
	case err := <-errCh:
		fmt.Fprintf(os.Stderr, "%s\n", err)
		return 1
	default:
	}

	out := os.Stdout
	if opts.Output != "" {
		fh, err := os.Create(opts.Output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}
		defer fh.Close()
		out = fh
	}

	if err := root.Write(out); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		return 1
	}
	return 0
}

// appendRecords reads one CSV stream and appends one record element per
// data row to root. The first row names the fields; cells become text
// content, empty cells become self-closing field elements.
func appendRecords(root *xmlbuilder.Element, in io.Reader, opts *cmdopts) error {
	if opts.Encoding != "" {
		e := encoding.Load(opts.Encoding)
		if e == nil {
			return fmt.Errorf("unsupported encoding %q", opts.Encoding)
		}
		in = transform.NewReader(in, e.NewDecoder())
	}

	r := csv.NewReader(in)
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err != nil {
		if err == io.EOF {
			// empty input contributes nothing
			return nil
		}
		return err
	}

	for {
		row, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		rec := xmlbuilder.New(opts.Record)
		for i, cell := range row {
			if i >= len(header) {
				break
			}
			field := xmlbuilder.New(header[i])
			if cell != "" {
				field.AddText(cell)
			}
			rec.AddChild(field)
		}
		root.AddChild(rec)
	}
}
