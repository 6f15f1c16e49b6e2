package repository

import (
	"context"
	"errors"
	"time"

	"bengkel_audio/internal/domain/entities"
	"bengkel_audio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBookingsTableName = "bookings"
	bookingsOrderIDIndex     = "order_id-index"
)

type bookingItem struct {
	ID               string `dynamodbav:"id"`
	CustomerName     string `dynamodbav:"customer_name"`
	CustomerPhone    string `dynamodbav:"customer_phone"`
	VehicleModel     string `dynamodbav:"vehicle_model,omitempty"`
	ServiceType      string `dynamodbav:"service_type,omitempty"`
	ScheduledAt      string `dynamodbav:"scheduled_at,omitempty"`
	TotalPrice       int64  `dynamodbav:"total_price"`
	DPAmount         int64  `dynamodbav:"dp_amount"`
	RemainingPayment int64  `dynamodbav:"remaining_payment"`
	PaymentStatus    string `dynamodbav:"payment_status"`
	BookingStatus    string `dynamodbav:"booking_status"`
	GatewayOrderID   string `dynamodbav:"gateway_order_id"`
	GatewayTxnID     string `dynamodbav:"gateway_transaction_id,omitempty"`
	PaidAt           string `dynamodbav:"paid_at,omitempty"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// BookingDynamoRepository persists Booking entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: gateway_order_id)
//
// UpdatePaymentStatus is a conditional update on payment_status equality, so
// concurrent webhook redeliveries serialize on the booking record instead of
// racing a bare read-then-write.

type BookingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBookingRepository = (*BookingDynamoRepository)(nil)

func NewBookingDynamoRepository(ddb *dynamodb.Client) *BookingDynamoRepository {
	return &BookingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BOOKINGS_TABLE", defaultBookingsTableName),
	}
}

func (r *BookingDynamoRepository) Create(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	it := toBookingItem(b)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Booking{}, err
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
		return entities.Booking{}, err
	}
	return b, nil
}

func (r *BookingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Booking{}, err
	}
	if len(out.Item) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func (r *BookingDynamoRepository) UpdatePaymentStatus(ctx context.Context, id string, expected entities.PaymentStatus, patch entities.BookingPatch) (entities.Booking, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	expr := "SET #payment_status = :payment_status, #updated_at = :updated_at"
	values := map[string]types.AttributeValue{
		":payment_status": &types.AttributeValueMemberS{Value: string(patch.PaymentStatus)},
		":updated_at":     &types.AttributeValueMemberS{Value: now},
		":expected":       &types.AttributeValueMemberS{Value: string(expected)},
	}
	names := map[string]string{
		"#id":             "id",
		"#payment_status": "payment_status",
		"#updated_at":     "updated_at",
	}

	if patch.GatewayTransactionID != "" {
		expr += ", #gateway_transaction_id = :gateway_transaction_id"
		values[":gateway_transaction_id"] = &types.AttributeValueMemberS{Value: patch.GatewayTransactionID}
		names["#gateway_transaction_id"] = "gateway_transaction_id"
	}
	if patch.BookingStatus != nil {
		expr += ", #booking_status = :booking_status"
		values[":booking_status"] = &types.AttributeValueMemberS{Value: string(*patch.BookingStatus)}
		names["#booking_status"] = "booking_status"
	}
	if patch.PaidAt != nil {
		// paid_at is written at most once; if_not_exists keeps the first value.
		expr += ", #paid_at = if_not_exists(#paid_at, :paid_at)"
		values[":paid_at"] = &types.AttributeValueMemberS{Value: patch.PaidAt.UTC().Format(time.RFC3339Nano)}
		names["#paid_at"] = "paid_at"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #payment_status = :expected"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Booking{}, interfaces.ErrBookingStatusConflict
		}
		return entities.Booking{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Booking{}, interfaces.ErrBookingStatusConflict
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func toBookingItem(b entities.Booking) bookingItem {
	it := bookingItem{
		ID:               b.ID,
		CustomerName:     b.CustomerName,
		CustomerPhone:    b.CustomerPhone,
		VehicleModel:     b.VehicleModel,
		ServiceType:      b.ServiceType,
		TotalPrice:       b.TotalPrice,
		DPAmount:         b.DPAmount,
		RemainingPayment: b.RemainingPayment,
		PaymentStatus:    string(b.PaymentStatus),
		BookingStatus:    string(b.BookingStatus),
		GatewayOrderID:   b.GatewayOrderID,
		GatewayTxnID:     b.GatewayTransactionID,
		CreatedAt:        b.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        b.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if !b.ScheduledAt.IsZero() {
		it.ScheduledAt = b.ScheduledAt.UTC().Format(time.RFC3339Nano)
	}
	if b.PaidAt != nil {
		it.PaidAt = b.PaidAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromBookingItem(it bookingItem) entities.Booking {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	b := entities.Booking{
		ID:                   it.ID,
		CustomerName:         it.CustomerName,
		CustomerPhone:        it.CustomerPhone,
		VehicleModel:         it.VehicleModel,
		ServiceType:          it.ServiceType,
		TotalPrice:           it.TotalPrice,
		DPAmount:             it.DPAmount,
		RemainingPayment:     it.RemainingPayment,
		PaymentStatus:        entities.PaymentStatus(it.PaymentStatus),
		BookingStatus:        entities.BookingStatus(it.BookingStatus),
		GatewayOrderID:       it.GatewayOrderID,
		GatewayTransactionID: it.GatewayTxnID,
		CreatedAt:            createdAt,
		UpdatedAt:            updatedAt,
	}
	if it.ScheduledAt != "" {
		scheduledAt, _ := time.Parse(time.RFC3339Nano, it.ScheduledAt)
		b.ScheduledAt = scheduledAt
	}
	if it.PaidAt != "" {
		paidAt, _ := time.Parse(time.RFC3339Nano, it.PaidAt)
		b.PaidAt = &paidAt
	}
	return b
}
