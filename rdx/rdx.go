package rdx

import (
	"log"
	"os"
	"time"

	"savoria/globals"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

func init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	Conn = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
	if err := Conn.Ping(globals.Ctx).Err(); err != nil {
		log.Printf("Redis not reachable at %s: %v", addr, err)
	}
}

func RdxSet(key, value string) error {
	return Conn.Set(globals.Ctx, key, value, 0).Err()
}

func RdxSetWithTTL(key, value string, ttl time.Duration) error {
	return Conn.Set(globals.Ctx, key, value, ttl).Err()
}

func RdxGet(key string) (string, error) {
	return Conn.Get(globals.Ctx, key).Result()
}

func RdxDel(key string) error {
	return Conn.Del(globals.Ctx, key).Err()
}

func RdxHset(hash, field, value string) error {
	return Conn.HSet(globals.Ctx, hash, field, value).Err()
}

func RdxHget(hash, field string) (string, error) {
	return Conn.HGet(globals.Ctx, hash, field).Result()
}

func RdxHdel(hash, field string) error {
	return Conn.HDel(globals.Ctx, hash, field).Err()
}
