package main

import "xwing-inventory/cmd"

func main() {
	cmd.Execute()
}
