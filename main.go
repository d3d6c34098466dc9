package main

import "ghost-storage-gcs/cmd"

func main() {
	cmd.Execute()
}
