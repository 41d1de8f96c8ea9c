package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"star-gazer/internal/domain"
)

const (
	skPrefixTurn = "TURN#"
	skMeta       = "META#"
	ttlDuration  = 30 * 24 * time.Hour // 30-day TTL
)

// dynamodbAPI is the minimal DynamoDB interface required by Client.
type dynamodbAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	TransactWriteItems(ctx context.Context, in *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// Client writes the turn audit log for skill sessions to a DynamoDB table.
// Nothing in the skill reads the log back.
type Client struct {
	api       dynamodbAPI
	tableName string
	now       func() time.Time
}

func New(api dynamodbAPI, tableName string) (*Client, error) {
	if api == nil {
		return nil, errors.New("repository: api must not be nil")
	}
	if strings.TrimSpace(tableName) == "" {
		return nil, errors.New("repository: table name must not be empty")
	}
	return &Client{api: api, tableName: tableName, now: time.Now}, nil
}

func sessionPK(sessionID string) string {
	return "SESSION#" + sessionID
}

func turnSK(ts time.Time) string {
	return skPrefixTurn + ts.UTC().Format(time.RFC3339Nano)
}

func (c *Client) ttlValue() int64 {
	return c.now().Add(ttlDuration).Unix()
}

// GetSessionTurnCount returns the number of turns recorded for a session.
func (c *Client) GetSessionTurnCount(ctx context.Context, sessionID string) (int, error) {
	out, err := c.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(c.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: sessionPK(sessionID)},
			"SK": &types.AttributeValueMemberS{Value: skMeta},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return 0, fmt.Errorf("repository: GetSessionTurnCount get item: %w", err)
	}
	if out == nil || len(out.Item) == 0 {
		return 0, nil
	}

	turns, err := intAttr(out.Item, "turns")
	if err != nil {
		return 0, fmt.Errorf("repository: GetSessionTurnCount decode turns: %w", err)
	}
	return turns, nil
}

// SaveTurn writes the turn and the updated session metadata in one transaction.
func (c *Client) SaveTurn(ctx context.Context, turn domain.Turn, meta domain.SessionMeta) error {
	if turn.PK == "" || turn.SK == "" {
		return errors.New("repository: SaveTurn: turn PK and SK are required")
	}
	if meta.PK == "" || meta.SK == "" {
		return errors.New("repository: SaveTurn: meta PK and SK are required")
	}

	_, err := c.api.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(c.tableName),
					Item:                turnItem(turn),
					ConditionExpression: aws.String("attribute_not_exists(PK) AND attribute_not_exists(SK)"),
				},
			},
			{
				Put: &types.Put{
					TableName: aws.String(c.tableName),
					Item:      metaItem(meta),
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("repository: SaveTurn: %w", err)
	}
	return nil
}

// RecordTurn appends turn to its session's log and bumps the turn count.
// Only the descriptive fields of turn are used; keys and TTL are assigned here.
func (c *Client) RecordTurn(ctx context.Context, turn domain.Turn, userID string) error {
	if strings.TrimSpace(turn.SessionID) == "" {
		return errors.New("repository: RecordTurn: session id is required")
	}
	count, err := c.GetSessionTurnCount(ctx, turn.SessionID)
	if err != nil {
		return fmt.Errorf("repository: RecordTurn: %w", err)
	}
	now := c.now().UTC()
	turn.PK = sessionPK(turn.SessionID)
	turn.SK = turnSK(now)
	turn.TTL = c.ttlValue()

	meta := domain.SessionMeta{
		PK:           sessionPK(turn.SessionID),
		SK:           skMeta,
		SessionID:    turn.SessionID,
		UserID:       userID,
		LastActivity: now.Format(time.RFC3339),
		Turns:        count + 1,
		TTL:          turn.TTL,
	}
	if err := c.SaveTurn(ctx, turn, meta); err != nil {
		return fmt.Errorf("repository: RecordTurn: %w", err)
	}
	return nil
}

func turnItem(t domain.Turn) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK":            &types.AttributeValueMemberS{Value: t.PK},
		"SK":            &types.AttributeValueMemberS{Value: t.SK},
		"sessionId":     &types.AttributeValueMemberS{Value: t.SessionID},
		"requestId":     &types.AttributeValueMemberS{Value: t.RequestID},
		"requestType":   &types.AttributeValueMemberS{Value: t.RequestType},
		"intent":        &types.AttributeValueMemberS{Value: t.Intent},
		"constellation": &types.AttributeValueMemberS{Value: t.Constellation},
		"speech":        &types.AttributeValueMemberS{Value: t.Speech},
		"endedSession":  &types.AttributeValueMemberBOOL{Value: t.EndedSession},
		"ttl":           &types.AttributeValueMemberN{Value: strconv.FormatInt(t.TTL, 10)},
	}
}

func metaItem(meta domain.SessionMeta) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK":           &types.AttributeValueMemberS{Value: meta.PK},
		"SK":           &types.AttributeValueMemberS{Value: meta.SK},
		"sessionId":    &types.AttributeValueMemberS{Value: meta.SessionID},
		"userId":       &types.AttributeValueMemberS{Value: meta.UserID},
		"lastActivity": &types.AttributeValueMemberS{Value: meta.LastActivity},
		"turns":        &types.AttributeValueMemberN{Value: strconv.Itoa(meta.Turns)},
		"ttl":          &types.AttributeValueMemberN{Value: strconv.FormatInt(meta.TTL, 10)},
	}
}

func intAttr(item map[string]types.AttributeValue, key string) (int, error) {
	v, ok := item[key]
	if !ok {
		return 0, fmt.Errorf("repository: missing attribute %q", key)
	}
	n, ok := v.(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("repository: attribute %q is not a number", key)
	}
	parsed, err := strconv.Atoi(n.Value)
	if err != nil {
		return 0, fmt.Errorf("repository: parse attribute %q: %w", key, err)
	}
	return parsed, nil
}
