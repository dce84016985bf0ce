package main

import "civicfix_backend/internal/app"

func main() {
	app.Run()
}
