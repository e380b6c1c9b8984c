package graph

import (
	"qboard-server/types"

	"github.com/graphql-go/graphql"
)

// NewSchema builds the GraphQL schema around the given resolver. The
// schema is constructed explicitly here, separate from the data types it
// exposes.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	userType := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"username":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"createdAt": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		},
	})

	postType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Post",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"title":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"creatorId": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"createdAt": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
			"updatedAt": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		},
	})

	fieldErrorType := graphql.NewObject(graphql.ObjectConfig{
		Name: "FieldError",
		Fields: graphql.Fields{
			"field":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"message": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	userResponseType := graphql.NewObject(graphql.ObjectConfig{
		Name: "UserResponse",
		Fields: graphql.Fields{
			"errors": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(fieldErrorType)),
				// an empty error list serializes as null, not []
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					resp := p.Source.(*types.UserResponse)
					if len(resp.Errors) == 0 {
						return nil, nil
					}
					return resp.Errors, nil
				},
			},
			"user": &graphql.Field{Type: userType},
		},
	})

	usernamePasswordInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UsernamePasswordInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"username": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"me": &graphql.Field{
				Type: userType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Me(p.Context)
				},
			},
			"post": &graphql.Field{
				Type: postType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Post(p.Context, int64(p.Args["id"].(int)))
				},
			},
			"posts": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(postType))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.ListPosts(p.Context)
				},
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"register": &graphql.Field{
				Type: graphql.NewNonNull(userResponseType),
				Args: graphql.FieldConfigArgument{
					"options": &graphql.ArgumentConfig{Type: graphql.NewNonNull(usernamePasswordInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					options := p.Args["options"].(map[string]interface{})
					username, _ := options["username"].(string)
					password, _ := options["password"].(string)
					return r.Register(p.Context, username, password)
				},
			},
			"login": &graphql.Field{
				Type: graphql.NewNonNull(userResponseType),
				Args: graphql.FieldConfigArgument{
					"options": &graphql.ArgumentConfig{Type: graphql.NewNonNull(usernamePasswordInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					options := p.Args["options"].(map[string]interface{})
					username, _ := options["username"].(string)
					password, _ := options["password"].(string)
					return r.Login(p.Context, username, password)
				},
			},
			"logout": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Logout(p.Context)
				},
			},
			"createPost": &graphql.Field{
				Type: graphql.NewNonNull(postType),
				Args: graphql.FieldConfigArgument{
					"title": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					title, _ := p.Args["title"].(string)
					return r.CreatePost(p.Context, title)
				},
			},
			"updatePost": &graphql.Field{
				Type: postType,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"title": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					title, _ := p.Args["title"].(string)
					return r.UpdatePost(p.Context, int64(p.Args["id"].(int)), title)
				},
			},
			"deletePost": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.DeletePost(p.Context, int64(p.Args["id"].(int)))
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
