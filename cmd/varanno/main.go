// cmd/varanno/main.go
package main

import (
	"varanno/internal/app"
	"varanno/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
