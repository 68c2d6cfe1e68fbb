package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var hashCmd = &cobra.Command{
	Use:   "hash FILE...",
	Short: "Print the leaf digest of each file.",
	Long: `Print the Merkle leaf digest of each file's contents, using the
configured tree hasher.`,
	Args: cobra.MinimumNArgs(1),
	RunE: hashRunFunc,
}

func init() {
	RootCmd.AddCommand(hashCmd)
}

func hashRunFunc(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	h, err := conf.TreeHasher()
	if err != nil {
		return err
	}
	for _, file := range args {
		data, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", h.Data(data), file)
	}
	return nil
}
