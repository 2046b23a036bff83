// Command linealign aligns near-duplicate OCR lines from the command line.
//
//	linealign distance "Mojave" "MOJAVE"
//	linealign rank copies.txt
//	linealign align "aa" "a" --best
//	linealign align-all copies.txt --table subs.yaml --order --consensus
//
// Every subcommand reads its tunables from --config (YAML), then LINEALIGN_*
// environment variables, then flags. Logging goes through glog; pass
// --logtostderr --v=1 to watch the pipeline.
package main

import (
	"flag"
	"os"

	"github.com/golang/glog"
)

func main() {
	root := newRootCmd()
	// glog's flags live on the Go flag set and are parsed by cobra; this
	// only marks the set as parsed so glog does not warn.
	if err := flag.CommandLine.Parse(nil); err != nil {
		glog.Exitf("flags: %v", err)
	}

	err := root.Execute()
	glog.Flush()
	if err != nil {
		os.Exit(1)
	}
}
