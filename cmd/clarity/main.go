// Command clarity runs the argument-graph analysis pipeline from the
// command line: it reads an input graph document as JSON, from a file or
// stdin, and writes the analysis report as JSON, to a file or stdout.
package main

import (
	"github.com/sirupsen/logrus"

	"github.com/arguelabs/clarity-engine/cmd/clarity/internal/cli"
)

func init() {
	logrus.SetLevel(logrus.InfoLevel)
}

func main() {
	cli.Execute()
}
