package main

import "github.com/streambinder/lyricsfinder/cmd"

func main() {
	cmd.Execute()
}
