// Package main provides the crock32 command line interface.
//
// crock32 converts files or stdin to and from human-typeable base32 text,
// streaming the input in chunks.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tanagraspace/crock32/crock32"
	"go.uber.org/zap"
)

const banner = `crock32 - human-typeable base32

         by  T A N A G R A  S P A C E`

// app carries the state shared by the commands of one run.
type app struct {
	cfg       config
	lookupEnv func(string) (string, bool)
	logger    *zap.Logger
	cleanup   func()
}

func (a *app) close() {
	if a.cleanup != nil {
		a.cleanup()
		a.cleanup = nil
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "crock32",
		Short: "Encode and decode human-typeable base32",
		Long: banner + `

Alphabet: 0123456789abcdefghjkmnpqrstvwxyz
Decoding ignores case, reads o as 0 and i, l as 1, and skips any other
character, so separators and line breaks may be left in the input.`,
		Version:       crock32.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := applyEnv(cmd.Flags(), a.lookupEnv); err != nil {
				return err
			}
			if err := a.cfg.validate(); err != nil {
				return err
			}
			logger, cleanup, err := newLogger(&a.cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.logger = logger
			a.cleanup = cleanup
			return nil
		},
	}
	root.SetVersionTemplate("crock32 {{.Version}} (Go)\n")
	a.cfg.bindFlags(root.PersistentFlags())

	root.AddCommand(a.encodeCmd(), a.decodeCmd(), a.versionCmd())
	return root
}

func (a *app) encodeCmd() *cobra.Command {
	var marker, newline bool

	cmd := &cobra.Command{
		Use:   "encode [file]",
		Short: "Encode bytes from file or stdin to base32 text",
		Example: `  crock32 encode data.bin -o data.txt
  echo -n hello | crock32 encode --newline`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runStream(cmd, args, "encode", func(dst io.Writer, src io.Reader) (streamStats, error) {
				return encodeStream(dst, src, a.cfg.ChunkSize, marker, newline)
			}, zap.Bool("marker", marker))
		},
	}
	cmd.Flags().BoolVar(&marker, "marker", false, fmt.Sprintf("append the %q trailer", crock32.Marker))
	cmd.Flags().BoolVarP(&newline, "newline", "n", false, "end the output with a newline")
	return cmd
}

func (a *app) decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode base32 text from file or stdin to bytes",
		Example: `  crock32 decode data.txt -o data.bin
  echo D1JP-RV3F | crock32 decode`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runStream(cmd, args, "decode", func(dst io.Writer, src io.Reader) (streamStats, error) {
				return decodeStream(dst, src, a.cfg.ChunkSize)
			})
		},
	}
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "crock32 %s (Go)\n", crock32.Version)
			return err
		},
	}
}

func (a *app) runStream(cmd *cobra.Command, args []string, mode string,
	stream func(io.Writer, io.Reader) (streamStats, error), fields ...zap.Field) (err error) {
	src, inputName, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, outputName, err := openOutput(cmd, a.cfg.Output)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := dst.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "close output %s", outputName)
		}
	}()

	log := a.logger.With(
		zap.String("mode", mode),
		zap.String("input", inputName),
		zap.String("output", outputName),
		zap.Int("chunk_size", a.cfg.ChunkSize),
	)
	log.Debug("start", fields...)

	stats, err := stream(dst, src)
	log = log.With(zap.Int64("bytes_in", stats.BytesIn), zap.Int64("bytes_out", stats.BytesOut))
	if err != nil {
		log.Debug("failed", zap.Error(err))
		return err
	}
	log.Info("done", fields...)
	return nil
}

// run executes the command line and returns the process exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer, lookupEnv func(string) (string, bool)) int {
	a := &app{
		lookupEnv: lookupEnv,
		logger:    zap.NewNop(),
	}
	defer a.close()

	root := a.rootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, os.LookupEnv))
}
