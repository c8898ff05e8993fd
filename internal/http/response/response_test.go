package response

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	body, err := json.Marshal(Error(MsgNotFound))
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"No subscription found"}`, string(body))

	body, err = json.Marshal(Error(MsgValidationFailed, "a", "b"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"Validation failed","details":["a","b"]}`, string(body))
}

func TestMessage(t *testing.T) {
	body, err := json.Marshal(Message(MsgCancelled))
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"Subscription cancelled successfully"}`, string(body))
}
