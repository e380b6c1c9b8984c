package graph

import (
	"context"
	"log"

	"qboard-server/db"
	"qboard-server/session"
	"qboard-server/types"
)

// validateRegisterInput checks register input before anything touches the
// store. Validation lives here, apart from the data types, so the rules
// are explicit in one place.
func validateRegisterInput(username, password string) []*types.FieldError {
	if len(username) <= 2 {
		return []*types.FieldError{
			{Field: "username", Message: "Provided Username is Too Short"},
		}
	}

	if len(password) <= 5 {
		return []*types.FieldError{
			{Field: "password", Message: "Provided Password is Too Short"},
		}
	}

	return nil
}

func (r *Resolver) Register(ctx context.Context, username, password string) (*types.UserResponse, error) {
	if errs := validateRegisterInput(username, password); errs != nil {
		return &types.UserResponse{Errors: errs}, nil
	}

	passwordHash, err := r.Hasher.Hash(password)
	if err != nil {
		log.Printf("error hashing password: %v\n", err)
		return nil, err
	}

	user, err := r.Users.CreateUser(username, passwordHash)

	if err != nil {
		if db.IsNonUniqueErr(err) {
			return &types.UserResponse{
				Errors: []*types.FieldError{
					{Field: "username", Message: "Username has already been taken."},
				},
			}, nil
		}

		// Unknown persistence failures surface as resolver errors, never
		// as an empty success shape.
		log.Printf("error creating user: %v\n", err)
		return nil, err
	}

	if err := r.createSession(ctx, user.Id); err != nil {
		return nil, err
	}

	return &types.UserResponse{User: user.ToApi()}, nil
}

func (r *Resolver) Login(ctx context.Context, username, password string) (*types.UserResponse, error) {
	user, err := r.Users.GetUserByUsername(username)

	if err != nil {
		log.Printf("error getting user: %v\n", err)
		return nil, err
	}

	if user == nil {
		return &types.UserResponse{
			Errors: []*types.FieldError{
				{Field: "username", Message: "Username Not Found."},
			},
		}, nil
	}

	valid, err := r.Hasher.Verify(user.Password, password)
	if err != nil {
		log.Printf("error verifying password: %v\n", err)
		return nil, err
	}

	if !valid {
		return &types.UserResponse{
			Errors: []*types.FieldError{
				{Field: "password", Message: "Password Is Incorrect"},
			},
		}, nil
	}

	if err := r.createSession(ctx, user.Id); err != nil {
		return nil, err
	}

	return &types.UserResponse{User: user.ToApi()}, nil
}

// Me returns the session's user, or nil for anonymous requests. An
// anonymous request never touches the user store, and a session whose
// user id no longer resolves is treated as no user, not as an error.
func (r *Resolver) Me(ctx context.Context) (*types.User, error) {
	sess := session.FromContext(ctx)
	if sess == nil {
		return nil, nil
	}

	userId, ok := sess.UserId()
	if !ok {
		return nil, nil
	}

	user, err := r.Users.GetUser(userId)
	if err != nil {
		log.Printf("error getting user: %v\n", err)
		return nil, err
	}

	if user == nil {
		return nil, nil
	}

	return user.ToApi(), nil
}

func (r *Resolver) Logout(ctx context.Context) (bool, error) {
	sess := session.FromContext(ctx)
	if sess == nil {
		return true, nil
	}

	if err := sess.Destroy(ctx); err != nil {
		log.Printf("error destroying session: %v\n", err)
		return false, err
	}

	return true, nil
}

func (r *Resolver) createSession(ctx context.Context, userId int64) error {
	sess := session.FromContext(ctx)
	if sess == nil {
		return nil
	}

	if err := sess.Create(ctx, userId); err != nil {
		log.Printf("error creating session: %v\n", err)
		return err
	}

	return nil
}
