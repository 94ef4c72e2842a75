package services

import (
	"context"
	"errors"
	"sync"

	"companion_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDB is an in-memory stand-in for the DynamoDB-backed gateway.
type fakeDB struct {
	mu     sync.Mutex
	tables map[string][]map[string]types.AttributeValue
	putErr map[string]error
	delErr map[string]error
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		tables: make(map[string][]map[string]types.AttributeValue),
		putErr: make(map[string]error),
		delErr: make(map[string]error),
	}
}

func (f *fakeDB) PutItem(ctx context.Context, tableName string, item interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.putErr[tableName]; err != nil {
		return err
	}
	row, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	f.tables[tableName] = append(f.tables[tableName], row)
	return nil
}

func (f *fakeDB) GetItem(ctx context.Context, tableName string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, row := range f.tables[tableName] {
		if rowMatchesKey(row, key) {
			return row, nil
		}
	}
	return nil, errors.New("item not found")
}

func (f *fakeDB) DeleteItem(ctx context.Context, tableName string, key map[string]types.AttributeValue) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.delErr[tableName]; err != nil {
		return err
	}
	rows := f.tables[tableName]
	for i, row := range rows {
		if rowMatchesKey(row, key) {
			f.tables[tableName] = append(rows[:i], rows[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeDB) UpdateItem(ctx context.Context, tableName string, updateExpression string, key map[string]types.AttributeValue, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string) (map[string]types.AttributeValue, error) {
	return nil, errors.New("not supported by fakeDB")
}

func (f *fakeDB) ScanItems(ctx context.Context, tableName string, matchFields map[string]string, result interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	var filtered []map[string]types.AttributeValue
	for _, row := range f.tables[tableName] {
		matches := true
		for field, want := range matchFields {
			if stringAttr(row[field]) != want {
				matches = false
				break
			}
		}
		if matches {
			filtered = append(filtered, row)
		}
	}
	return attributevalue.UnmarshalListOfMaps(filtered, result)
}

func (f *fakeDB) count(tableName string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.tables[tableName])
}

func rowMatchesKey(row, key map[string]types.AttributeValue) bool {
	for attr, want := range key {
		if stringAttr(row[attr]) != stringAttr(want) {
			return false
		}
	}
	return true
}

func stringAttr(attr types.AttributeValue) string {
	if s, ok := attr.(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

// fakeChatClient records chat-SDK calls.
type fakeChannel struct {
	createdBy string
	members   []string
	name      string
}

type fakeChatClient struct {
	mu        sync.Mutex
	upserts   []ChatUser
	channels  map[string]fakeChannel
	deleted   []string
	upsertErr error
	createErr error
}

func newFakeChatClient() *fakeChatClient {
	return &fakeChatClient{channels: make(map[string]fakeChannel)}
}

func (f *fakeChatClient) UpsertUser(ctx context.Context, user ChatUser) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.upsertErr != nil {
		return "", f.upsertErr
	}
	f.upserts = append(f.upserts, user)
	return user.ID, nil
}

func (f *fakeChatClient) CreateChannel(ctx context.Context, channelID, createdByID string, members []string, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.channels[channelID] = fakeChannel{createdBy: createdByID, members: members, name: name}
	return nil
}

func (f *fakeChatClient) DeleteChannel(ctx context.Context, channelID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.channels, channelID)
	f.deleted = append(f.deleted, channelID)
	return nil
}

// recordingNotifier captures matched events.
type recordingNotifier struct {
	mu      sync.Mutex
	matched []string
}

func (n *recordingNotifier) NotifyMatched(userID string, match models.Match, agent models.AIAgent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.matched = append(n.matched, match.MatchID)
}
