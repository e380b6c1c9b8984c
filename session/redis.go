package session

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	client *redis.Client
}

func Connect() (*RedisStore, error) {
	redisUrl := os.Getenv("REDIS_URL")
	if redisUrl == "" {
		redisUrl = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisUrl)
	if err != nil {
		return nil, fmt.Errorf("error parsing redis url: %v", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("error connecting to redis: %v", err)
	}

	log.Println("connected to session store")

	return &RedisStore{client: client}, nil
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func sessionKey(token string) string {
	return "qsess:" + token
}

func (s *RedisStore) Set(ctx context.Context, token string, userId int64) error {
	err := s.client.Set(ctx, sessionKey(token), strconv.FormatInt(userId, 10), MaxAge).Err()

	if err != nil {
		return fmt.Errorf("error storing session: %v", err)
	}

	return nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (int64, error) {
	val, err := s.client.Get(ctx, sessionKey(token)).Result()

	if err != nil {
		if err == redis.Nil {
			return 0, ErrNotFound
		}

		return 0, fmt.Errorf("error getting session: %v", err)
	}

	userId, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error parsing session user id: %v", err)
	}

	return userId, nil
}

func (s *RedisStore) Destroy(ctx context.Context, token string) error {
	err := s.client.Del(ctx, sessionKey(token)).Err()

	if err != nil {
		return fmt.Errorf("error destroying session: %v", err)
	}

	return nil
}
