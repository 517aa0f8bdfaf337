package mocks

import (
	"context"

	"collector-stats/core/rowstore"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of rowstore.Client
type Client struct {
	mock.Mock
}

func (m *Client) Fetch(ctx context.Context, req rowstore.Request) (*rowstore.Result, error) {
	args := m.Called(ctx, req)
	if res, ok := args.Get(0).(*rowstore.Result); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}
