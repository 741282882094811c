package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/modernhub/ecommerce-api/models"
)

func TestResolveVoteAction(t *testing.T) {
	assert.Equal(t, VoteActionCreated, ResolveVoteAction(nil, true))
	assert.Equal(t, VoteActionCreated, ResolveVoteAction(nil, false))

	helpful := &models.ReviewVote{IsHelpful: true}
	assert.Equal(t, VoteActionDuplicate, ResolveVoteAction(helpful, true))
	assert.Equal(t, VoteActionUpdated, ResolveVoteAction(helpful, false))

	notHelpful := &models.ReviewVote{IsHelpful: false}
	assert.Equal(t, VoteActionDuplicate, ResolveVoteAction(notHelpful, false))
	assert.Equal(t, VoteActionUpdated, ResolveVoteAction(notHelpful, true))
}
