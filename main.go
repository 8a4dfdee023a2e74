package main

import "github.com/mordilloSan/go-consolelog/internal/app"

// Usage:
//
//	go-consolelog --level warn --goroutines 8 --count 100 disk almost full
//	go-consolelog levels
//	CONSOLELOG_LEVEL=debug go-consolelog
func main() {
	app.Execute()
}
