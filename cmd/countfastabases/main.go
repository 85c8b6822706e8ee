// cmd/countfastabases/main.go
package main

import (
	"varanno/internal/appshell"
	"varanno/internal/countapp"
)

func main() {
	appshell.Main(countapp.RunContext)
}
