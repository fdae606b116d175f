package main

import (
	_ "reform_flow/docs"
	"reform_flow/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Proposal Review Service API
// @version         1.0
// @description     Product reformulation proposals with stakeholder approval workflows, backed by DynamoDB.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
