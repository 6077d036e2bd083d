package main

import "github.com/meditrack/aggregator-worker/worker"

func main() {
	worker.New().Run()
}
