// Command xmlmap converts documents between XML, JSON, and YAML using the
// schema-less folding rules of the xmlmap library.
//
//	xmlmap x2j doc.xml     XML to JSON
//	xmlmap x2y doc.xml     XML to YAML
//	xmlmap j2x doc.json    JSON to XML
//
// With no file argument, input is read from stdin. Output goes to stdout.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/xmlmap/xmlmap"
	"github.com/xmlmap/xmlmap/document"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "xmlmap:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "xmlmap",
		Short:         "Convert between XML, JSON, and YAML without a schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newConvertCommand("x2j", "Convert an XML document to JSON", xmlToJSON),
		newConvertCommand("x2y", "Convert an XML document to YAML", xmlToYAML),
		newConvertCommand("j2x", "Convert a JSON document to XML", jsonToXML),
	)

	return root
}

func newConvertCommand(use, short string, convert func([]byte, io.Writer) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [file]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args)
			if err != nil {
				return err
			}
			return convert(input, cmd.OutOrStdout())
		},
	}
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}

func xmlToJSON(input []byte, w io.Writer) error {
	doc, err := xmlmap.Parse(input)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return err
	}
	out.WriteByte('\n')

	_, err = w.Write(out.Bytes())
	return err
}

func xmlToYAML(input []byte, w io.Writer) error {
	doc, err := xmlmap.Parse(input)
	if err != nil {
		return err
	}

	out, err := doc.ToYAML()
	if err != nil {
		return err
	}

	_, err = w.Write(out)
	return err
}

func jsonToXML(input []byte, w io.Writer) error {
	doc := document.NewObject()
	if err := json.Unmarshal(input, doc); err != nil {
		return err
	}

	out, err := xmlmap.Render(doc)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, out)
	return err
}
