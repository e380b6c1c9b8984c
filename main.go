package main

import (
	"log"

	"qboard-server/auth"
	"qboard-server/graph"
	"qboard-server/routes"
	"qboard-server/setup"
)

func main() {
	store := setup.MustInitDb()
	defer store.Close()

	sessions := setup.MustInitSessionStore()

	resolver := &graph.Resolver{
		Users:  store,
		Posts:  store,
		Hasher: auth.Argon2Hasher{},
	}

	r, err := routes.New(resolver, sessions)
	if err != nil {
		log.Fatal("Error building routes: ", err)
	}

	setup.StartServer(r)
}
