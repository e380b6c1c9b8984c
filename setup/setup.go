package setup

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"qboard-server/db"
	"qboard-server/session"

	"github.com/gorilla/mux"
)

func MustInitDb() *db.Store {
	store, err := db.Connect()
	if err != nil {
		log.Fatal("Error initializing database: ", err)
	}

	err = store.MigrationsUp()
	if err != nil {
		log.Fatal("Error running migrations: ", err)
	}

	return store
}

func MustInitSessionStore() session.Store {
	store, err := session.Connect()
	if err != nil {
		log.Fatal("Error initializing session store: ", err)
	}

	return store
}

func StartServer(r *mux.Router) {
	if os.Getenv("GOENV") == "development" {
		log.Println("In development mode.")
	}

	// Get externalPort from the environment variable or default to 4000
	externalPort := os.Getenv("PORT")
	if externalPort == "" {
		externalPort = "4000"
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", externalPort),
		Handler: r,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server on port %s: %v", externalPort, err)
		}
	}()
	log.Println("Started server on port " + externalPort)

	sigTermChan := make(chan os.Signal, 1)
	signal.Notify(sigTermChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigTermChan
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error shutting down server: %v\n", err)
	}
}
