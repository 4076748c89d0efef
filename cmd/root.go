package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/streambinder/lyricsfinder/config"
	"github.com/streambinder/lyricsfinder/util"
	"github.com/streambinder/lyricsfinder/util/anchor"
)

var (
	conf    = config.Default()
	logger  = zerolog.Nop()
	tui     = anchor.New(anchor.Cyan)
	cmdRoot = &cobra.Command{
		Use:           "lyricsfinder",
		Short:         "Find songs out of fragments of their lyrics",
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) (err error) {
			var (
				path    = util.ErrWrap("")(cmd.Flags().GetString("config"))
				verbose = util.ErrWrap(false)(cmd.Flags().GetBool("verbose"))
			)

			level := zerolog.WarnLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
				Level(level).With().Timestamp().Logger()

			conf, err = config.Load(path)
			return err
		},
	}
)

func init() {
	cmdRoot.PersistentFlags().StringP("config", "c", "", "Configuration file (defaults to the user config directory)")
	cmdRoot.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

func Execute() {
	if err := cmdRoot.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
