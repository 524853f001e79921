package dbcheck

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/inputkit"
)

// Redis answers existence checks with set membership: the descriptor's
// entity names a Redis set and the field value is the candidate member.
// Useful for fast-path checks like reserved usernames or seen tokens.
type Redis struct {
	client redis.UniversalClient
}

// NewRedis wraps an existing client.
func NewRedis(client redis.UniversalClient) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Check(ctx context.Context, req inputkit.CheckRequest) (bool, error) {
	member, err := r.client.SIsMember(ctx, req.Check.Entity, fmt.Sprint(req.Value)).Result()
	if err != nil {
		return false, fmt.Errorf("set membership check failed: %w", err)
	}
	if req.Name == "ifnotexist" {
		return !member, nil
	}
	return member, nil
}
