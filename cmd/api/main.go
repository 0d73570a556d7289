package main

import (
	_ "brightworks/docs"
	"brightworks/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Brightworks Portal API
// @version         1.0
// @description     Quote, project and payment workflow service backed by DynamoDB.

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
