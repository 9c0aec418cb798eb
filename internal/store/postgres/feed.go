package postgres

import (
	"context"

	"concierge-system/internal/common/logger"
	"concierge-system/internal/common/mq"
	"concierge-system/internal/store"
)

// Feed propagates collection changes between concierge instances over the
// RabbitMQ sync fanout. Every writer publishes the collection name; every
// instance, the writer included, re-fetches on receipt. Re-fetching after a
// local write is redundant but harmless: replacement is last-writer-wins.
type Feed struct {
	client *mq.Client
	name   string
	lg     *logger.Logger
}

func NewFeed(client *mq.Client, instanceName string, lg *logger.Logger) (*Feed, error) {
	if err := client.DeclareSync(); err != nil {
		return nil, err
	}
	return &Feed{client: client, name: instanceName, lg: lg}, nil
}

func (f *Feed) Subscribe(ctx context.Context, onChange func(collection string)) error {
	deliveries, err := f.client.ConsumeSync(f.name)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return nil
			}
			collection := string(d.Body)
			f.lg.Debug("sync_event", map[string]any{"collection": collection})
			onChange(collection)
		}
	}
}

func (f *Feed) Publish(ctx context.Context, collection string) error {
	return f.client.PublishSync(ctx, collection)
}

func (f *Feed) Close() { f.client.Close() }

var _ store.Feed = (*Feed)(nil)
