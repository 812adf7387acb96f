package main

import (
	_ "furniture_warehouse/docs"
	"furniture_warehouse/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Furniture Warehouse API
// @version         1.0
// @description     Suppliers, clients, furniture stock and orders behind bearer-token authentication.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:5000

// @BasePath  /api

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
