package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPostgresRejectsMalformedDSN(t *testing.T) {
	_, err := NewPostgres(context.Background(), "postgres://shop@localhost:notaport/shop", 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse search dsn")
}
