// cmd/prdesign/main.go
package main

import (
	"prdesign/internal/app"
	"prdesign/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
