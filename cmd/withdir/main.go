package main

import "github.com/huwper/with-dir/cmd/withdir/cmd"

func main() {
	cmd.Execute()
}
