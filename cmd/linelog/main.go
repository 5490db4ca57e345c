package main

import (
	"github.com/kralicky/linelog/pkg/cli/linelog"
)

func main() {
	linelog.Execute()
}
