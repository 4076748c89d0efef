package cmd

import (
	"github.com/spf13/cobra"
	"github.com/streambinder/lyricsfinder/util"
)

func init() {
	cmdRoot.AddCommand(cmdSong())
}

func cmdSong() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "song <id>",
		Short:        "Show the metadata of a track",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON := util.ErrWrap(false)(cmd.Flags().GetBool("json"))

			instance, err := newFinder(cmd.Context(), conf, logger)
			if err != nil {
				return err
			}

			track, err := instance.Song(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if asJSON {
				return encode(cmd.OutOrStdout(), track)
			}
			renderTrack(tui, track)
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "Print the track as JSON")
	return cmd
}
