package main

import (
	"context"
	"os"
)

func main() {
	if err := newApp().command().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
