package main

import "relief-coordination.com/relief-coordination/cmd"

func main() {
	cmd.Execute()
}
