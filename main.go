package main

import (
	"github.com/koberec/eshop/cmd"
)

func main() {
	cmd.Start()
}
