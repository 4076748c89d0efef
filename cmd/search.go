package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/streambinder/lyricsfinder/util"
)

func init() {
	cmdRoot.AddCommand(cmdSearch())
}

func cmdSearch() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "search <phrase...>",
		Short:        "Find the songs containing a lyrics fragment",
		SilenceUsage: true,
		Args:         cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				asJSON = util.ErrWrap(false)(cmd.Flags().GetBool("json"))
				phrase = strings.Join(args, " ")
			)

			if cmd.Flags().Changed("threshold") {
				conf.Finder.Threshold = util.ErrWrap(conf.Finder.Threshold)(cmd.Flags().GetInt("threshold"))
			}
			if cmd.Flags().Changed("max-matches") {
				conf.Finder.MaxMatches = util.ErrWrap(conf.Finder.MaxMatches)(cmd.Flags().GetInt("max-matches"))
			}
			if cmd.Flags().Changed("fanout") {
				conf.Finder.Fanout = util.ErrWrap(conf.Finder.Fanout)(cmd.Flags().GetInt("fanout"))
			}
			if err := conf.Validate(); err != nil {
				return err
			}

			instance, err := newFinder(cmd.Context(), conf, logger)
			if err != nil {
				return err
			}

			if !asJSON {
				tui.Lot("search").Printf("looking for %q", phrase)
			}
			result, err := instance.Process(cmd.Context(), phrase)
			if asJSON {
				if err != nil {
					return err
				}
				return encode(cmd.OutOrStdout(), result)
			}
			if err != nil {
				tui.Lot("search").Wipe()
				return err
			}
			tui.Lot("search").Close(summary(result))
			render(tui, result)
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "Print the result as JSON")
	cmd.Flags().IntP("threshold", "t", conf.Finder.Threshold, "Minimum similarity (0-100) for a word to be corrected")
	cmd.Flags().IntP("max-matches", "m", conf.Finder.MaxMatches, "Maximum number of matches worth looking up")
	cmd.Flags().IntP("fanout", "f", conf.Finder.Fanout, "Number of concurrent track lookups")
	return cmd
}
