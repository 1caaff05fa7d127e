package repository

import (
	"context"
	"errors"
	"time"

	"ticket_checkout/internal/domain/entities"
	"ticket_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	DefaultRegistrationsTableName = "registrations"
	registrationsEventIDIndex     = "event_id-index"
)

type registrationItem struct {
	ID                string   `dynamodbav:"id"`
	EventID           string   `dynamodbav:"event_id"`
	Name              string   `dynamodbav:"name"`
	Email             string   `dynamodbav:"email,omitempty"`
	Phone             string   `dynamodbav:"phone"`
	Participants      int      `dynamodbav:"participants"`
	Notes             string   `dynamodbav:"notes,omitempty"`
	Amount            string   `dynamodbav:"amount"`
	PaymentStatus     string   `dynamodbav:"payment_status"`
	PaymentReason     string   `dynamodbav:"payment_reason,omitempty"`
	Network           string   `dynamodbav:"network,omitempty"`
	Narration         string   `dynamodbav:"narration,omitempty"`
	PaymentReferences []string `dynamodbav:"payment_references,omitempty"`
	CreatedAt         string   `dynamodbav:"created_at"`
	UpdatedAt         string   `dynamodbav:"updated_at"`
}

// RegistrationDynamoRepository persists Registration entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: event_id-index (PK: event_id)
//
// Status changes use a condition on payment_status so a terminal status is written
// at most once.

type RegistrationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRegistrationRepository = (*RegistrationDynamoRepository)(nil)

func NewRegistrationDynamoRepository(ddb *dynamodb.Client, tableName string) *RegistrationDynamoRepository {
	if tableName == "" {
		tableName = DefaultRegistrationsTableName
	}
	return &RegistrationDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *RegistrationDynamoRepository) Create(ctx context.Context, reg entities.Registration) (entities.Registration, error) {
	if reg.ID == "" {
		reg.ID = uuid.NewString()
	}
	av, err := attributevalue.MarshalMap(toRegistrationItem(reg))
	if err != nil {
		return entities.Registration{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Registration{}, err
	}
	return reg, nil
}

func (r *RegistrationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Registration, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Registration{}, err
	}
	if len(out.Item) == 0 {
		return entities.Registration{}, nil
	}

	var it registrationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Registration{}, err
	}
	return fromRegistrationItem(it), nil
}

func (r *RegistrationDynamoRepository) ListByEventID(ctx context.Context, eventID string) ([]entities.Registration, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(registrationsEventIDIndex),
		KeyConditionExpression: aws.String("event_id = :eid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":eid": &types.AttributeValueMemberS{Value: eventID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Registration, 0, len(out.Items))
	for _, raw := range out.Items {
		var it registrationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromRegistrationItem(it))
	}
	return items, nil
}

// RecordAttempt stores the initiation summary while the registration is still pending.
func (r *RegistrationDynamoRepository) RecordAttempt(ctx context.Context, id string, attempt entities.PaymentAttempt) error {
	refs, err := attributevalue.Marshal(attempt.References)
	if err != nil {
		return err
	}
	_, err = r.update(ctx, id,
		"SET #network = :network, #narration = :narration, #refs = :refs, #updated_at = :updated_at",
		map[string]types.AttributeValue{
			":network":   &types.AttributeValueMemberS{Value: attempt.Network},
			":narration": &types.AttributeValueMemberS{Value: attempt.Narration},
			":refs":      refs,
		},
		map[string]string{
			"#network":   "network",
			"#narration": "narration",
			"#refs":      "payment_references",
		},
	)
	return err
}

// UpdateStatusIfPending writes a terminal status only while payment_status is pending.
// A failed condition is reported as false, not as an error.
func (r *RegistrationDynamoRepository) UpdateStatusIfPending(ctx context.Context, id string, status entities.PaymentStatus, reason string) (bool, error) {
	return r.update(ctx, id,
		"SET #payment_status = :status, #payment_reason = :reason, #updated_at = :updated_at",
		map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
			":reason": &types.AttributeValueMemberS{Value: reason},
		},
		map[string]string{
			"#payment_reason": "payment_reason",
		},
	)
}

// update runs a SET expression guarded by "item exists and is pending".
func (r *RegistrationDynamoRepository) update(
	ctx context.Context,
	id string,
	updateExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (bool, error) {
	values[":updated_at"] = &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)}
	values[":pending"] = &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPending)}

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #payment_status = :pending"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames: mergeNames(names, map[string]string{
			"#id":             "id",
			"#payment_status": "payment_status",
			"#updated_at":     "updated_at",
		}),
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func toRegistrationItem(reg entities.Registration) registrationItem {
	return registrationItem{
		ID:                reg.ID,
		EventID:           reg.EventID,
		Name:              reg.Name,
		Email:             reg.Email,
		Phone:             reg.Phone,
		Participants:      reg.Participants,
		Notes:             reg.Notes,
		Amount:            reg.Amount.String(),
		PaymentStatus:     string(reg.PaymentStatus),
		PaymentReason:     reg.PaymentReason,
		Network:           reg.Network,
		Narration:         reg.Narration,
		PaymentReferences: reg.PaymentReferences,
		CreatedAt:         reg.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:         reg.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromRegistrationItem(it registrationItem) entities.Registration {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Registration{
		ID:                it.ID,
		EventID:           it.EventID,
		Name:              it.Name,
		Email:             it.Email,
		Phone:             it.Phone,
		Participants:      it.Participants,
		Notes:             it.Notes,
		Amount:            parseAmount(it.Amount),
		PaymentStatus:     entities.PaymentStatus(it.PaymentStatus),
		PaymentReason:     it.PaymentReason,
		Network:           it.Network,
		Narration:         it.Narration,
		PaymentReferences: it.PaymentReferences,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
