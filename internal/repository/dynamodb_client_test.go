package repository

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/require"

	"star-gazer/internal/domain"
)

type fakeDynamo struct {
	getOut       *dynamodb.GetItemOutput
	getErr       error
	txErr        error
	lastGetInput *dynamodb.GetItemInput
	lastTxInput  *dynamodb.TransactWriteItemsInput
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.lastGetInput = in
	return f.getOut, f.getErr
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.lastTxInput = in
	return &dynamodb.TransactWriteItemsOutput{}, f.txErr
}

var fixedNow = time.Date(2026, 10, 15, 21, 30, 0, 0, time.UTC)

func mustNewClient(t *testing.T, db *fakeDynamo) *Client {
	t.Helper()
	c, err := New(db, "turns")
	require.NoError(t, err)
	c.now = func() time.Time { return fixedNow }
	return c
}

func makeMetaItem(turns string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK":    &types.AttributeValueMemberS{Value: "SESSION#s-1"},
		"SK":    &types.AttributeValueMemberS{Value: skMeta},
		"turns": &types.AttributeValueMemberN{Value: turns},
	}
}

func strValue(t *testing.T, item map[string]types.AttributeValue, key string) string {
	t.Helper()
	v, ok := item[key].(*types.AttributeValueMemberS)
	require.True(t, ok, "attribute %q is not a string", key)
	return v.Value
}

func numValue(t *testing.T, item map[string]types.AttributeValue, key string) string {
	t.Helper()
	v, ok := item[key].(*types.AttributeValueMemberN)
	require.True(t, ok, "attribute %q is not a number", key)
	return v.Value
}

func TestNew_Validates(t *testing.T) {
	_, err := New(nil, "turns")
	require.Error(t, err)
	_, err = New(&fakeDynamo{}, " ")
	require.Error(t, err)
}

func TestGetSessionTurnCount(t *testing.T) {
	db := &fakeDynamo{getOut: &dynamodb.GetItemOutput{Item: makeMetaItem("4")}}
	c := mustNewClient(t, db)

	turns, err := c.GetSessionTurnCount(context.Background(), "s-1")
	require.NoError(t, err)
	require.Equal(t, 4, turns)
	require.Equal(t, "turns", aws.ToString(db.lastGetInput.TableName))
	require.True(t, aws.ToBool(db.lastGetInput.ConsistentRead))
	require.Equal(t, "SESSION#s-1", strValue(t, db.lastGetInput.Key, "PK"))
}

func TestGetSessionTurnCount_MissingMeta(t *testing.T) {
	c := mustNewClient(t, &fakeDynamo{getOut: &dynamodb.GetItemOutput{}})
	turns, err := c.GetSessionTurnCount(context.Background(), "s-1")
	require.NoError(t, err)
	require.Zero(t, turns)
}

func TestGetSessionTurnCount_Errors(t *testing.T) {
	c := mustNewClient(t, &fakeDynamo{getErr: errors.New("boom")})
	_, err := c.GetSessionTurnCount(context.Background(), "s-1")
	require.ErrorContains(t, err, "GetSessionTurnCount")

	c = mustNewClient(t, &fakeDynamo{getOut: &dynamodb.GetItemOutput{Item: makeMetaItem("bad")}})
	_, err = c.GetSessionTurnCount(context.Background(), "s-1")
	require.ErrorContains(t, err, "decode turns")
}

func TestSaveTurn_RequiresKeys(t *testing.T) {
	c := mustNewClient(t, &fakeDynamo{})
	err := c.SaveTurn(context.Background(), domain.Turn{}, domain.SessionMeta{PK: "p", SK: "s"})
	require.ErrorContains(t, err, "turn PK and SK")

	err = c.SaveTurn(context.Background(), domain.Turn{PK: "p", SK: "s"}, domain.SessionMeta{})
	require.ErrorContains(t, err, "meta PK and SK")
}

func TestRecordTurn_WritesTurnAndMeta(t *testing.T) {
	db := &fakeDynamo{getOut: &dynamodb.GetItemOutput{Item: makeMetaItem("2")}}
	c := mustNewClient(t, db)

	err := c.RecordTurn(context.Background(), domain.Turn{
		SessionID:     "s-1",
		RequestID:     "r-9",
		RequestType:   string(domain.RequestTypeIntent),
		Intent:        string(domain.IntentConstellations),
		Constellation: "orion",
		Speech:        "Orion is the hunter.",
	}, "user-1")
	require.NoError(t, err)
	require.NotNil(t, db.lastTxInput)
	require.Len(t, db.lastTxInput.TransactItems, 2)

	turn := db.lastTxInput.TransactItems[0].Put
	require.Equal(t, "attribute_not_exists(PK) AND attribute_not_exists(SK)", aws.ToString(turn.ConditionExpression))
	require.Equal(t, "SESSION#s-1", strValue(t, turn.Item, "PK"))
	require.Equal(t, "TURN#2026-10-15T21:30:00Z", strValue(t, turn.Item, "SK"))
	require.Equal(t, "orion", strValue(t, turn.Item, "constellation"))
	require.Equal(t, "ConstellationsIntent", strValue(t, turn.Item, "intent"))

	ttl := fixedNow.Add(ttlDuration).Unix()
	meta := db.lastTxInput.TransactItems[1].Put
	require.Equal(t, skMeta, strValue(t, meta.Item, "SK"))
	require.Equal(t, "user-1", strValue(t, meta.Item, "userId"))
	require.Equal(t, "3", numValue(t, meta.Item, "turns"))
	require.Equal(t, "2026-10-15T21:30:00Z", strValue(t, meta.Item, "lastActivity"))
	require.Equal(t, numValue(t, turn.Item, "ttl"), numValue(t, meta.Item, "ttl"))
	require.Equal(t, strconv.FormatInt(ttl, 10), numValue(t, turn.Item, "ttl"))
}

func TestRecordTurn_Errors(t *testing.T) {
	c := mustNewClient(t, &fakeDynamo{})
	require.ErrorContains(t, c.RecordTurn(context.Background(), domain.Turn{}, "u"), "session id is required")

	c = mustNewClient(t, &fakeDynamo{getErr: errors.New("throttled")})
	require.ErrorContains(t, c.RecordTurn(context.Background(), domain.Turn{SessionID: "s-1"}, "u"), "throttled")

	c = mustNewClient(t, &fakeDynamo{getOut: &dynamodb.GetItemOutput{}, txErr: errors.New("TransactionCanceledException")})
	err := c.RecordTurn(context.Background(), domain.Turn{SessionID: "s-1"}, "u")
	require.ErrorContains(t, err, "SaveTurn")
	require.ErrorContains(t, err, "TransactionCanceledException")
}
