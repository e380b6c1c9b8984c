package db

import (
	"database/sql"
	"fmt"
)

func (s *Store) GetUser(userId int64) (*User, error) {
	var user User
	err := s.conn.Get(&user, "SELECT * FROM users WHERE id = $1", userId)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, fmt.Errorf("error getting user: %v", err)
	}

	return &user, nil
}

func (s *Store) GetUserByUsername(username string) (*User, error) {
	var user User
	err := s.conn.Get(&user, "SELECT * FROM users WHERE username = $1", username)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, fmt.Errorf("error getting user: %v", err)
	}

	return &user, nil
}

// CreateUser inserts a new user. A duplicate username surfaces as the
// database's unique violation — callers distinguish it with
// IsNonUniqueErr. Two concurrent inserts of the same username race only
// at the constraint; there is no application-level guard.
func (s *Store) CreateUser(username, passwordHash string) (*User, error) {
	user := User{
		Username: username,
		Password: passwordHash,
	}

	err := s.conn.QueryRow("INSERT INTO users (username, password) VALUES ($1, $2) RETURNING id, created_at, updated_at", user.Username, user.Password).Scan(&user.Id, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if IsNonUniqueErr(err) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %v", err)
	}

	return &user, nil
}
