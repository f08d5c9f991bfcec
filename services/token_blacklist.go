package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"main/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

type RedisTokenBlacklist struct {
	Client *redis.Client
}

// TokenBlacklist is the global instance, nil when Redis is not configured.
var TokenBlacklist *RedisTokenBlacklist

func NewTokenBlacklist(redisURL string) (*RedisTokenBlacklist, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &RedisTokenBlacklist{Client: client}, nil
}

// BlacklistTokens invalidates an access/refresh token pair on logout.
func BlacklistTokens(accessToken, refreshToken string) error {
	if TokenBlacklist == nil {
		return fmt.Errorf("token blacklist not initialized")
	}
	if err := TokenBlacklist.blacklistSingleToken(accessToken, "access"); err != nil {
		return fmt.Errorf("failed to blacklist access token: %v", err)
	}
	if refreshToken != "" {
		if err := TokenBlacklist.blacklistSingleToken(refreshToken, "refresh"); err != nil {
			return fmt.Errorf("failed to blacklist refresh token: %v", err)
		}
	}
	return nil
}

// BlacklistRefreshToken invalidates a single refresh token, used for
// rotation on refresh.
func BlacklistRefreshToken(refreshToken string) error {
	if TokenBlacklist == nil {
		return fmt.Errorf("token blacklist not initialized")
	}
	return TokenBlacklist.blacklistSingleToken(refreshToken, "refresh")
}

func (tb *RedisTokenBlacklist) blacklistSingleToken(tokenString, tokenType string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(utils.JWTSecretKey), nil
	})
	if err != nil && !strings.Contains(err.Error(), "token is expired") {
		return fmt.Errorf("failed to parse token: %v", err)
	}

	expirationTime := time.Now().Add(24 * time.Hour)
	if token != nil {
		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if exp, ok := claims["exp"].(float64); ok {
				expirationTime = time.Unix(int64(exp), 0)
			}
		}
	}

	ttl := time.Until(expirationTime)
	if ttl <= 0 {
		return nil // already expired, nothing to block
	}

	ctx := context.Background()
	key := fmt.Sprintf("blacklist:%s:%s", tokenType, tokenString)
	return tb.Client.Set(ctx, key, "true", ttl).Err()
}

// IsTokenBlacklisted checks both the access and refresh blacklists in one
// round trip.
func IsTokenBlacklisted(tokenString string) bool {
	if TokenBlacklist == nil {
		return false
	}
	return TokenBlacklist.isTokenBlacklisted(tokenString)
}

func (tb *RedisTokenBlacklist) isTokenBlacklisted(tokenString string) bool {
	ctx := context.Background()

	pipe := tb.Client.Pipeline()
	accessCmd := pipe.Exists(ctx, fmt.Sprintf("blacklist:access:%s", tokenString))
	refreshCmd := pipe.Exists(ctx, fmt.Sprintf("blacklist:refresh:%s", tokenString))
	if _, err := pipe.Exec(ctx); err != nil {
		return false
	}

	return accessCmd.Val() > 0 || refreshCmd.Val() > 0
}

func (tb *RedisTokenBlacklist) IsConnected() bool {
	if tb == nil || tb.Client == nil {
		return false
	}
	return tb.Client.Ping(context.Background()).Err() == nil
}

func (tb *RedisTokenBlacklist) Close() error {
	return tb.Client.Close()
}
