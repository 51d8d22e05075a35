package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"quizbuilder/internal/adminclient"
)

func main() {
	server := flag.String("server", "http://127.0.0.1:5000", "quiz service base URL")
	timeout := flag.Duration("timeout", 5*time.Second, "HTTP timeout")
	flag.Parse()

	err := adminclient.Run(context.Background(), os.Stdin, os.Stdout, adminclient.Config{
		ServerURL:   *server,
		HTTPTimeout: *timeout,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
