package main

import "github.com/vietddude/bfhl/internal/cli"

func main() {
	cli.Execute()
}
