package main

import "github.com/datdenkikniet/ieee802-3-miim/cmd/miimctl/cmd"

func main() {
	cmd.Execute()
}
