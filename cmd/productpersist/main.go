package main

import (
	"os"

	"github.com/atuluttam/productpersist/internal/cli"
	"github.com/atuluttam/productpersist/internal/utils"
)

func main() {
	if err := cli.Execute(); err != nil {
		utils.PrintError("%v", err)
		os.Exit(1)
	}
}
