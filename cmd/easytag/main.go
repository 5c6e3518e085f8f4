// Command easytag inspects and edits ID3v2 tags using easyid3's flat
// keys.
//
//	easytag dump song.mp3
//	easytag get song.mp3 performer:guitar
//	easytag set song.mp3 genre Rock Pop
//	easytag del song.mp3 date
//	easytag strip song.mp3
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/simonhull/easyid3"
)

var rootCmd = &cobra.Command{
	Use:     "easytag",
	Short:   "Inspect and edit ID3v2 tags with flat keys",
	Long:    "easytag reads and writes ID3v2 tags through easyid3's flat, case-insensitive keys (title, genre, performer:guitar, ...).",
	Version: versionString(),

	SilenceUsage: true,
}

// versionString renders the --version output, including build metadata
// when the binary was built with -ldflags.
func versionString() string {
	info := easyid3.GetBuildInfo()
	return fmt.Sprintf("%s (commit %s, built %s, %s)",
		info.Version, info.GitCommit, info.BuildTime, info.GoVersion)
}

var dumpCmd = &cobra.Command{
	Use:   "dump FILE",
	Short: "Print all tag values as sorted key=value lines",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tag, err := easyid3.Open(args[0])
		if err != nil {
			return err
		}
		if out := tag.String(); out != "" {
			fmt.Fprintln(cmd.OutOrStdout(), out)
		}
		return nil
	},
}

var keysCmd = &cobra.Command{
	Use:   "keys FILE",
	Short: "List the keys that currently have values",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tag, err := easyid3.Open(args[0])
		if err != nil {
			return err
		}
		for _, key := range tag.Keys() {
			fmt.Fprintln(cmd.OutOrStdout(), key)
		}
		return nil
	},
}

var getCmd = &cobra.Command{
	Use:   "get FILE KEY",
	Short: "Print the values for one key",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tag, err := easyid3.Open(args[0])
		if err != nil {
			return err
		}
		values, err := tag.Get(args[1])
		if err != nil {
			return err
		}
		for _, v := range values {
			fmt.Fprintln(cmd.OutOrStdout(), v)
		}
		return nil
	},
}

var setCmd = &cobra.Command{
	Use:   "set FILE KEY VALUE...",
	Short: "Set the values for one key and save",
	Args:  cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		tag, err := openOrNew(args[0])
		if err != nil {
			return err
		}
		if err := tag.Set(args[1], args[2:]...); err != nil {
			return err
		}
		return tag.Save()
	},
}

var delCmd = &cobra.Command{
	Use:   "del FILE KEY",
	Short: "Delete one key and save",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tag, err := easyid3.Open(args[0])
		if err != nil {
			return err
		}
		if err := tag.Delete(args[1]); err != nil {
			return err
		}
		return tag.Save()
	},
}

var stripCmd = &cobra.Command{
	Use:   "strip FILE",
	Short: "Remove the ID3v2 tag from a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tag := easyid3.New()
		tag.SetFilename(args[0])
		return tag.DeleteTag()
	},
}

// openOrNew loads the tag from path, or starts an empty one bound to
// path when the file has no usable ID3v2 tag yet.
func openOrNew(path string) (*easyid3.Tag, error) {
	tag, err := easyid3.Open(path)
	if err == nil {
		return tag, nil
	}
	var ferr *easyid3.FormatError
	if errors.As(err, &ferr) {
		tag = easyid3.New()
		tag.SetFilename(path)
		return tag, nil
	}
	return nil, err
}

func init() {
	rootCmd.AddCommand(dumpCmd, keysCmd, getCmd, setCmd, delCmd, stripCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
