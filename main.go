package main

import "github.com/efvlib/goefv/cmd"

func main() {
	cmd.Execute()
}
