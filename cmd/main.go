package main

import (
	"belrates/internal/app"

	"github.com/sirupsen/logrus"
)

// @title belrates API
// @version 1.0
// @description Official exchange rates of the National Bank of the Republic of Belarus.
// @BasePath /api/v1
func main() {
	if err := app.Run(); err != nil {
		logrus.WithError(err).Fatal("Application stopped")
	}
}
