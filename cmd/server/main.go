package main

import (
	"os"

	"github.com/blogmux/blogmux/server"
	"github.com/blogmux/blogmux/server/middlewares"
	"github.com/blogmux/blogmux/store"
	"github.com/blogmux/blogmux/utils"
	"github.com/blogmux/blogmux/utils/dotenv"
	"github.com/blogmux/blogmux/utils/flag"
	. "github.com/blogmux/blogmux/utils/log"
)

func cleanup() {
	utils.CloseProfiler()
	utils.CloseTracer()
	Log.Info("api server shutdown")
}

func main() {
	defer cleanup()

	flag.Parse()
	if err := dotenv.LoadDotEnvs(); err != nil {
		panic(err)
	}

	middlewares.Setup()
	utils.InitTracer()
	utils.InitProfiler()

	db, err := utils.GetDBConnection()
	if err != nil {
		Log.Fatal("cannot connect to DB: ", err)
	}
	utils.DatabaseSetupAndMigration(db)

	stores := store.New(db, store.NewLikeCacheFromEnv())
	router := server.BuildRouter(server.New(stores))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	Log.Info("api server starts up")
	router.Run(":" + port)
}
