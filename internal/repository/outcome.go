package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
)

var ErrEmptyChannel = errors.New("outcome channel is empty")

// OutcomeRepository announces concluded games. Nothing is stored: records are published
// to a pub/sub channel and only reach subscribers listening at that moment.
type OutcomeRepository interface {
	Publish(ctx context.Context, record entity.GameRecord) error
}

type pubSubOutcome struct {
	client  *redis.Client
	channel string
}

func NewOutcomeRepository(client *redis.Client, channel string) (OutcomeRepository, error) {
	if channel == "" {
		return nil, ErrEmptyChannel
	}

	return &pubSubOutcome{
		client:  client,
		channel: channel,
	}, nil
}

func (that *pubSubOutcome) Publish(ctx context.Context, record entity.GameRecord) error {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("could not marshal game record: %w", err)
	}

	if err = that.client.Publish(ctx, that.channel, recordJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish game record: %w", err)
	}

	return nil
}
