package main

import (
	stdLog "log"
	"time"

	"github.com/dimasfauzan/perpus-service/app"
	"github.com/dimasfauzan/perpus-service/config"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Println("no .env file, relying on environment")
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
	)

	app.Run(cfg)
}
