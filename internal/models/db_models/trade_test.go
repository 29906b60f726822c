package db_models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTradeParties(t *testing.T) {
	initiator := uuid.New()
	recipient := uuid.New()
	stranger := uuid.New()

	trade := &Trade{
		InitiatorID: initiator,
		RecipientID: recipient,
	}

	assert.True(t, trade.IsParty(initiator))
	assert.True(t, trade.IsParty(recipient))
	assert.False(t, trade.IsParty(stranger))

	assert.Equal(t, recipient, trade.CounterpartyOf(initiator))
	assert.Equal(t, initiator, trade.CounterpartyOf(recipient))
}
