// Command linemerge merges individually sorted line-oriented files into
// a single sorted stream on standard output.
package main

import (
	"fmt"
	"os"

	"github.com/davidvella/linemerge/merge"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newRootCmd() *cobra.Command {
	var (
		outputPath string
		bufferSize int
	)

	cmd := &cobra.Command{
		Use:   "linemerge [file...]",
		Short: "Merge sorted line-oriented files into one sorted stream",
		Long: `Linemerge performs an external k-way merge: each input file must already
be sorted in ascending lexicographic order, and the merged output is the
fully sorted interleaving of every input line. Files are streamed, never
loaded into memory, so inputs of any size can be merged.

An input file that turns out not to be sorted aborts the merge with an
error naming the offending file.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := merge.New(merge.WithBufferSize(bufferSize))

			files := make([]*os.File, 0, len(args))
			defer func() {
				for _, f := range files {
					//nolint:errcheck // read-only handles
					_ = f.Close()
				}
			}()

			for _, path := range args {
				f, err := os.Open(path)
				if err != nil {
					return err
				}
				files = append(files, f)
				if _, _, err := m.Register(path, f); err != nil {
					return err
				}
			}

			if outputPath == "" {
				return m.WriteAll(cmd.OutOrStdout())
			}

			out, err := os.Create(outputPath)
			if err != nil {
				return err
			}
			if err := m.WriteAll(out); err != nil {
				//nolint:errcheck // the merge error takes precedence
				_ = out.Close()
				return err
			}
			return out.Close()
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write merged lines to a file instead of stdout")
	cmd.Flags().IntVar(&bufferSize, "buffer-size", 64*1024, "per-stream read buffer size in bytes")

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// Console encoding to match user expectations (CLI tool).
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.DisableStacktrace = true

		l, logErr := cfg.Build()
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
