package data_access

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestMapWriteError(t *testing.T) {
	dup := func(index string) error {
		return mongo.WriteException{WriteErrors: []mongo.WriteError{{
			Code:    11000,
			Message: "E11000 duplicate key error collection: netflixClone.users index: " + index + " dup key",
		}}}
	}

	assert.ErrorIs(t, mapWriteError(dup(emailIndex)), ErrEmailTaken)
	assert.ErrorIs(t, mapWriteError(dup(usernameIndex)), ErrUsernameTaken)

	other := errors.New("boom")
	assert.Equal(t, other, mapWriteError(other))
}
