package main

import "github.com/lunixbochs/asmcorn/go/cmd"

func main() { cmd.Execute() }
