package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dominions-mapgen/internal/redis"
)

type ClientTestSuite struct {
	suite.Suite
	mr  *miniredis.Miniredis
	ctx context.Context
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.mr = miniredis.RunT(s.T())
	s.ctx = context.Background()
}

func (s *ClientTestSuite) TestConnectSingleInstance() {
	client, err := redis.Connect(s.ctx, s.mr.Addr(), nil, nil)
	s.Require().NoError(err)
	defer func() { _ = client.Close() }()

	s.Require().NoError(client.Set(s.ctx, "k", "v", 0).Err())
	got, err := s.mr.Get("k")
	s.Require().NoError(err)
	s.Equal("v", got)
}

func (s *ClientTestSuite) TestConnectUnreachable() {
	addr := s.mr.Addr()
	s.mr.Close()

	_, err := redis.Connect(s.ctx, addr, nil, &redis.Options{MaxRetries: -1})
	s.Require().Error(err)
	s.Contains(err.Error(), "ping failed")
}

func (s *ClientTestSuite) TestConstructorsRequireEndpoints() {
	testCases := []struct {
		name    string
		connect func() (redis.Client, error)
	}{
		{
			name:    "single",
			connect: func() (redis.Client, error) { return redis.NewClient("", nil) },
		},
		{
			name:    "cluster",
			connect: func() (redis.Client, error) { return redis.NewClusterClient(nil, nil) },
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			client, err := tc.connect()
			s.Error(err)
			s.Nil(client)
		})
	}
}
