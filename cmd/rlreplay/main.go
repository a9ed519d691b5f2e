// A simple CLI to parse and print a Rocket League replay as JSON, passed
// as a file argument. CLI framing is explicitly out of the decoder's core
// scope; this only exists to give the decoder a runnable front door.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/heatmap-gg/rlreplay/rlparser"
)

const (
	appName    = "rlreplay"
	appVersion = "v0.1.0"
)

var (
	flagNetwork bool
	flagCrc     bool
	flagIndent  bool
	flagOut     string
)

func main() {
	root := &cobra.Command{
		Use:     appName + " [replay file]",
		Short:   "Decode a Rocket League replay and print it as JSON",
		Version: appVersion,
		Args:    cobra.ExactArgs(1),
		RunE:    run,
	}

	root.Flags().BoolVar(&flagNetwork, "network", true, "decode the network stream (frame sequence)")
	root.Flags().BoolVar(&flagCrc, "crc", true, "verify header and body CRCs up front")
	root.Flags().BoolVar(&flagIndent, "indent", true, "indent the JSON output")
	root.Flags().StringVar(&flagOut, "outfile", "", "write JSON to this file instead of stdout")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg := rlparser.Config{}
	if flagCrc {
		cfg.Crc = rlparser.CrcAlways
	} else {
		cfg.Crc = rlparser.CrcNever
	}
	if flagNetwork {
		cfg.Network = rlparser.NetworkAlways
	} else {
		cfg.Network = rlparser.NetworkNever
	}

	replay, err := rlparser.ParseFileConfig(args[0], cfg)
	if err != nil {
		return fmt.Errorf("rlreplay: %w", err)
	}

	var out []byte
	if flagIndent {
		out, err = json.MarshalIndent(replay, "", "  ")
	} else {
		out, err = json.Marshal(replay)
	}
	if err != nil {
		return fmt.Errorf("rlreplay: marshaling result: %w", err)
	}

	if flagOut == "" {
		fmt.Println(string(out))
		return nil
	}
	return os.WriteFile(flagOut, out, 0o644)
}
