package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/sposioggi/espositori-api/cmd/app"
)

// @contact.name   Sposi Oggi Magazine
// @contact.email  redazione@sposioggi.it
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token issued by the auth provider
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
