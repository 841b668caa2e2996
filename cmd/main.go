package main

import (
	"github.com/lemmalab/go-lemma/pkg/cmd"
)

func main() {
	cmd.Execute()
}
