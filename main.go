// main is the entry point for the qmetrics CLI.
package main

import (
	"github.com/huangsam/qmetrics/cmd"
	"github.com/huangsam/qmetrics/internal/contract"
	"github.com/huangsam/qmetrics/internal/history"
)

func main() {
	cmd.SetHistoryManager(history.Manager)
	err := cmd.Execute()
	history.CloseStore()
	if err != nil {
		contract.LogFatal("Error starting CLI", err)
	}
}
