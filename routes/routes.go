package routes

import (
	"fmt"
	"net/http"

	"qboard-server/graph"
	"qboard-server/handlers"
	"qboard-server/session"

	"github.com/gorilla/mux"
)

func New(resolver *graph.Resolver, sessions session.Store) (*mux.Router, error) {
	r := mux.NewRouter()

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "hello world")
	}).Methods("GET")

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "OK")
	})

	gql, err := handlers.NewGraphQL(resolver)
	if err != nil {
		return nil, err
	}

	r.Handle("/graphql", session.Middleware(sessions)(gql))

	return r, nil
}
