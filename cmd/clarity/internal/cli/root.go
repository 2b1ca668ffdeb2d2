// Package cli wires the clarity command-line interface: flag parsing via
// cobra, and structured logging via logrus at the process boundary only.
// Nothing under internal/ or report/ ever logs — logging is strictly an
// outer-surface concern, same as error formatting and file I/O.
package cli

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arguelabs/clarity-engine/wire"
)

var (
	inputPath  string
	outputPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "clarity",
	Short: "Analyze an argument graph for contradictions, fallacies, and biases",
	Long: "clarity reads a proposition/relationship graph as JSON and reports " +
		"structural weaknesses: contradictions, logical fallacies, cognitive " +
		"biases, per-proposition robustness scores, dependency cycles, and a " +
		"topological ordering.",
	RunE: runAnalyze,
}

func init() {
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "path to the input graph JSON file (default: stdin)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "path to write the report JSON (default: stdout)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command, exiting the process with a non-zero
// status on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Fatal("clarity: analysis failed")
	}
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	input, err := readInput()
	if err != nil {
		return err
	}

	logrus.WithField("bytes", len(input)).Debug("decoded input graph")

	out, err := wire.AnalyzeJSON(input)
	if err != nil {
		return err
	}

	return writeOutput(cmd, out)
}

func readInput() (string, error) {
	if inputPath == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}

		return string(data), nil
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

func writeOutput(cmd *cobra.Command, report string) error {
	if outputPath == "" {
		_, err := cmd.OutOrStdout().Write([]byte(report + "\n"))

		return err
	}

	return os.WriteFile(outputPath, []byte(report+"\n"), 0o644)
}
