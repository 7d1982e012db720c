package cmd

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/AnyUserName/imgconv/internal/convert"
	"github.com/AnyUserName/imgconv/internal/encoder"
	"github.com/AnyUserName/imgconv/internal/format"
	"github.com/AnyUserName/imgconv/internal/hasher"
	"github.com/AnyUserName/imgconv/internal/progress"
	"github.com/spf13/cobra"
)

var (
	convertTo       string
	convertFrom     string
	convertOut      string
	convertMinimal  bool
	convertZstd     bool
	convertProgress bool
	convertTuning   tuningFlags
)

var convertCmd = &cobra.Command{
	Use:   "convert <input>",
	Short: "Convert one image to another format",
	Long: `Decodes <input> ("-" for stdin, zstd-compressed input is accepted) and
writes it re-encoded as --to. Without --from the input format is sniffed
from its content.

--minimal uses the legacy call: output resolved through the legacy table
(png, jpeg/jpg, gif, bmp, ico, tiff, webp), input sniffed, no tuning.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertTo, "to", "t", "", "output format identifier (required)")
	convertCmd.Flags().StringVarP(&convertFrom, "from", "f", "", "input format identifier (default: sniff)")
	convertCmd.Flags().StringVarP(&convertOut, "out", "o", "", `output path, "-" for stdout (default: input name with new extension)`)
	convertCmd.Flags().BoolVar(&convertMinimal, "minimal", false, "legacy call: sniffed input, legacy output table, no tuning")
	convertCmd.Flags().BoolVar(&convertZstd, "zstd", false, "zstd-compress the output")
	convertCmd.Flags().BoolVar(&convertProgress, "progress", false, "print progress messages as JSON lines on stderr")
	convertCmd.MarkFlagRequired("to")
	convertTuning.register(convertCmd)
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	input := args[0]
	start := time.Now()

	ids, err := convertTuning.resolver()
	if err != nil {
		return err
	}
	policy, err := convertTuning.progressPolicy()
	if err != nil {
		return err
	}
	tuning, prof := convertTuning.tuning(cmd)

	data, err := readPayload(input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var sink progress.Sink = progress.SinkFunc(func(msg any) error {
		if m, ok := msg.(progress.Message); ok {
			logVerbose("%s", m.Message)
		}
		return nil
	})
	if convertProgress {
		sink = progress.NewJSONLines(cmd.ErrOrStderr())
	}
	engine := convert.NewEngine(convert.Config{Identifiers: ids, Sink: sink, Policy: policy})

	var out []byte
	var target format.Format
	if convertMinimal {
		if target, err = format.Legacy.Resolve(convertTo); err == nil {
			logVerbose("minimal conversion to %s", target)
		}
		out, err = engine.ConvertMinimal(data, convertTo)
	} else {
		if target, err = engine.Target(convertTo); err == nil {
			logVerbose("preset %s, options %s", prof.Name, encoder.Resolve(target, tuning))
		}
		out, err = engine.Convert(data, convertFrom, convertTo, tuning)
	}
	if err != nil {
		return err
	}

	dst := convertOut
	if dst == "" {
		if input == "-" {
			dst = "-"
		} else {
			dst = strings.TrimSuffix(input, filepath.Ext(input)) + "." + target.Extension()
			if convertZstd {
				dst += ".zst"
			}
		}
	}
	if err := writePayload(dst, out, convertZstd); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logVerbose("wrote %s (%d bytes, xxh64 %s) in %s",
		dst, len(out), hasher.ContentHash(out, 0), time.Since(start).Round(time.Millisecond))
	return nil
}
