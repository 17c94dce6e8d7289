package main

import (
	"fmt"
	"io"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Silicon27/Parser-Combinators/format"
	"github.com/Silicon27/Parser-Combinators/jsonval"
)

func newJSONCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "json [file]",
		Short: "Parse a JSON value with the jsonval grammar",
		Long: heredoc.Doc(`
			Parse a JSON value (null, booleans, integers, strings,
			arrays) and print it back.

			Reads the named file, or standard input when the argument is
			missing or "-".
		`),
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args)
			if err != nil {
				return err
			}

			v, err := jsonval.Parse(string(data))
			if err != nil {
				return fmt.Errorf("parse input: %w", err)
			}

			var encoder format.Encoder
			switch outputFormat {
			case "json":
				encoder = format.NewJSONEncoder(cmd.OutOrStdout())
			case "tree":
				encoder = format.NewTreeEncoder(cmd.OutOrStdout())
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			if err := encoder.Encode(v); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, tree)")

	return cmd
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return data, nil
}
