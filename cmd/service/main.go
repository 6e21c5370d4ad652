package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/surajikf/IKF-PhoneBook/internal/repository"
	"github.com/surajikf/IKF-PhoneBook/internal/service"
)

// Usage example on the command line:
// > PORT=8080 DBHOST=localhost DBUSER=dirk DBPWD=bullo92 GIN_MODE=release GIN_LOGGING=OFF go run main.go
//
// The same variables can be supplied through a .env file in the working
// directory.
func main() {
	if err := godotenv.Load(); err == nil {
		fmt.Println("Loaded configuration from .env file.")
	}
	sqlDB := repository.CreateDatabase()
	service.SetupDatabaseWrapper(sqlDB)
	router := service.SetupHttpRouter()
	_, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil {
		fmt.Println("could not parse PORT env variable", err)
		panic(err)
	}
	router.Run(":" + os.Getenv("PORT"))
}
