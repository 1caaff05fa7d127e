package repository

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"ticket_checkout/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dynamoStub answers DynamoDB JSON calls with a fixed status and body and keeps
// the last request it saw.
type dynamoStub struct {
	status int
	body   string

	target  string
	request map[string]any
}

func (s *dynamoStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.target = r.Header.Get("X-Amz-Target")
	raw, _ := io.ReadAll(r.Body)
	s.request = nil
	_ = json.Unmarshal(raw, &s.request)

	w.Header().Set("Content-Type", "application/x-amz-json-1.0")
	w.WriteHeader(s.status)
	_, _ = w.Write([]byte(s.body))
}

func newDynamoRepo(t *testing.T, stub *dynamoStub) *RegistrationDynamoRepository {
	t.Helper()
	srv := httptest.NewServer(stub)
	t.Cleanup(srv.Close)

	client := dynamodb.New(dynamodb.Options{
		Region:           "us-east-1",
		Credentials:      credentials.NewStaticCredentialsProvider("local", "local", ""),
		BaseEndpoint:     aws.String(srv.URL),
		RetryMaxAttempts: 1,
	})
	return NewRegistrationDynamoRepository(client, "")
}

func TestRegistrationDynamoRepository_UpdateStatusIfPending(t *testing.T) {
	t.Run("applies while pending", func(t *testing.T) {
		stub := &dynamoStub{status: http.StatusOK, body: `{}`}
		repo := newDynamoRepo(t, stub)

		applied, err := repo.UpdateStatusIfPending(context.Background(), "reg-1", entities.PaymentStatusConfirmed, "")
		require.NoError(t, err)
		assert.True(t, applied)

		assert.Equal(t, "DynamoDB_20120810.UpdateItem", stub.target)
		assert.Equal(t, DefaultRegistrationsTableName, stub.request["TableName"])
		assert.Equal(t, "attribute_exists(#id) AND #payment_status = :pending", stub.request["ConditionExpression"])
		values, ok := stub.request["ExpressionAttributeValues"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, map[string]any{"S": "confirmed"}, values[":status"])
		assert.Equal(t, map[string]any{"S": "pending"}, values[":pending"])
	})

	t.Run("failed condition is not an error", func(t *testing.T) {
		stub := &dynamoStub{
			status: http.StatusBadRequest,
			body:   `{"__type":"com.amazonaws.dynamodb.v20120810#ConditionalCheckFailedException","message":"The conditional request failed"}`,
		}
		repo := newDynamoRepo(t, stub)

		applied, err := repo.UpdateStatusIfPending(context.Background(), "reg-1", entities.PaymentStatusFailed, "Declined")
		require.NoError(t, err)
		assert.False(t, applied)
	})

	t.Run("other errors are returned", func(t *testing.T) {
		stub := &dynamoStub{
			status: http.StatusBadRequest,
			body:   `{"__type":"com.amazonaws.dynamodb.v20120810#ResourceNotFoundException","message":"Requested resource not found"}`,
		}
		repo := newDynamoRepo(t, stub)

		applied, err := repo.UpdateStatusIfPending(context.Background(), "reg-1", entities.PaymentStatusFailed, "Declined")
		require.Error(t, err)
		assert.False(t, applied)
	})
}

func TestRegistrationDynamoRepository_GetByIDMissingItem(t *testing.T) {
	stub := &dynamoStub{status: http.StatusOK, body: `{}`}
	repo := newDynamoRepo(t, stub)

	got, err := repo.GetByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Empty(t, got.ID)
	assert.Equal(t, "DynamoDB_20120810.GetItem", stub.target)
	assert.Equal(t, true, stub.request["ConsistentRead"])
}
