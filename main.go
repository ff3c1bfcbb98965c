// alphachat is a terminal chat panel for a remote answer service.
package main

import (
	"github.com/alphaui/alphachat/cmd"
	"github.com/alphaui/alphachat/logger"
)

func main() {
	defer logger.Close()
	cmd.Execute()
}
