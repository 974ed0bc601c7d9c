// chatmine - Chat Export Statistics Miner
//
// chatmine is a batch analysis tool for exported chat transcripts. Point it
// at a folder of .txt exports and it reports message volume, activity
// patterns, word frequencies and response latencies.
package main

import (
	"os"

	"github.com/giada-balinzo/chatmine/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
