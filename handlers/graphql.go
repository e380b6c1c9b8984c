package handlers

import (
	"net/http"
	"os"

	"qboard-server/graph"

	"github.com/graphql-go/handler"
)

// NewGraphQL builds the /graphql HTTP handler. GraphiQL is only served
// outside production.
func NewGraphQL(resolver *graph.Resolver) (http.Handler, error) {
	schema, err := graph.NewSchema(resolver)
	if err != nil {
		return nil, err
	}

	return handler.New(&handler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: os.Getenv("GOENV") != "production",
	}), nil
}
