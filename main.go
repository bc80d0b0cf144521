package main

import (
	_ "embed"

	"github.com/noteful-labs/noteful-service/cmd"
)

//go:embed config/config.yaml
var c string

func main() {
	cmd.Execute(c)
}
