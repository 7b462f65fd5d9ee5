package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNoopPublisher(t *testing.T) {
	p := NoopPublisher{}
	require.NoError(t, p.Publish(context.Background(), OrderCreated, nil))
	require.NoError(t, p.Close())
}

func TestFakePublisher(t *testing.T) {
	// 未設定時為 no-op
	p := &FakePublisher{}
	require.NoError(t, p.Publish(context.Background(), OrderCreated, nil))
	require.NoError(t, p.Close())

	var gotSubject string
	var gotData any
	p = &FakePublisher{
		PublishFn: func(_ context.Context, subject string, data any) error {
			gotSubject = subject
			gotData = data
			return errors.New("pub")
		},
		CloseFn: func() error { return errors.New("close") },
	}
	evt := OrderCreatedEvent{OrderID: 7, Amount: 200}
	require.EqualError(t, p.Publish(context.Background(), OrderStatusUpdated, evt), "pub")
	require.Equal(t, OrderStatusUpdated, gotSubject)
	require.Equal(t, evt, gotData)
	require.EqualError(t, p.Close(), "close")
}
