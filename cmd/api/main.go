package main

import (
	_ "bengkel_audio/docs"
	"bengkel_audio/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Workshop Booking API
// @version         1.0
// @description     Car-audio workshop booking service (bookings + Midtrans payment reconciliation) backed by DynamoDB.

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
