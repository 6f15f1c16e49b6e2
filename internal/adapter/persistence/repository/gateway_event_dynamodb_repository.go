package repository

import (
	"context"
	"encoding/json"
	"time"

	"bengkel_audio/internal/domain/entities"
	"bengkel_audio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultGatewayEventsTableName = "gateway_events"
	gatewayEventsBookingIDIndex   = "booking_id-index"
)

type gatewayEventItem struct {
	ID            string `dynamodbav:"id"`
	BookingID     string `dynamodbav:"booking_id,omitempty"`
	OrderID       string `dynamodbav:"order_id"`
	TransactionID string `dynamodbav:"transaction_id,omitempty"`
	RawStatus     string `dynamodbav:"raw_status"`
	FraudStatus   string `dynamodbav:"fraud_status,omitempty"`
	Outcome       string `dynamodbav:"outcome"`
	Applied       bool   `dynamodbav:"applied"`
	Reason        string `dynamodbav:"reason"`
	RawPayload    string `dynamodbav:"raw_payload,omitempty"`
	ReceivedAt    string `dynamodbav:"received_at"`
}

// GatewayEventDynamoRepository persists GatewayEvent audit records.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: booking_id-index (PK: booking_id)
//
// RawPayload keeps the original notification body for traceability/audit.

type GatewayEventDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IGatewayEventRepository = (*GatewayEventDynamoRepository)(nil)

func NewGatewayEventDynamoRepository(ddb *dynamodb.Client) *GatewayEventDynamoRepository {
	return &GatewayEventDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("GATEWAY_EVENTS_TABLE", defaultGatewayEventsTableName),
	}
}

func (r *GatewayEventDynamoRepository) Create(ctx context.Context, ev entities.GatewayEvent) (entities.GatewayEvent, error) {
	it := toGatewayEventItem(ev)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.GatewayEvent{}, err
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
		return entities.GatewayEvent{}, err
	}
	return ev, nil
}

func (r *GatewayEventDynamoRepository) ListByBookingID(ctx context.Context, bookingID string) ([]entities.GatewayEvent, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(gatewayEventsBookingIDIndex),
		KeyConditionExpression: aws.String("booking_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: bookingID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.GatewayEvent, 0, len(out.Items))
	for _, raw := range out.Items {
		var it gatewayEventItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromGatewayEventItem(it))
	}
	return items, nil
}

func toGatewayEventItem(ev entities.GatewayEvent) gatewayEventItem {
	return gatewayEventItem{
		ID:            ev.ID,
		BookingID:     ev.BookingID,
		OrderID:       ev.OrderID,
		TransactionID: ev.TransactionID,
		RawStatus:     ev.RawStatus,
		FraudStatus:   ev.FraudStatus,
		Outcome:       string(ev.Outcome),
		Applied:       ev.Applied,
		Reason:        ev.Reason,
		RawPayload:    string(ev.RawPayload),
		ReceivedAt:    ev.ReceivedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromGatewayEventItem(it gatewayEventItem) entities.GatewayEvent {
	receivedAt, _ := time.Parse(time.RFC3339Nano, it.ReceivedAt)
	return entities.GatewayEvent{
		ID:            it.ID,
		BookingID:     it.BookingID,
		OrderID:       it.OrderID,
		TransactionID: it.TransactionID,
		RawStatus:     it.RawStatus,
		FraudStatus:   it.FraudStatus,
		Outcome:       entities.PaymentOutcome(it.Outcome),
		Applied:       it.Applied,
		Reason:        it.Reason,
		RawPayload:    json.RawMessage(it.RawPayload),
		ReceivedAt:    receivedAt,
	}
}
