package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"brightworks/internal/domain/entities"
	"brightworks/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName = "quotes"
	quotesReferenceIndex   = "reference_number-index"
	quotesUserIDIndex      = "user_id-index"
)

type quoteItem struct {
	ID                     string `dynamodbav:"id"`
	ReferenceNumber        string `dynamodbav:"reference_number"`
	UserID                 string `dynamodbav:"user_id"`
	ContactName            string `dynamodbav:"contact_name,omitempty"`
	ContactEmail           string `dynamodbav:"contact_email,omitempty"`
	Phone                  string `dynamodbav:"phone,omitempty"`
	Company                string `dynamodbav:"company,omitempty"`
	ServiceCategory        string `dynamodbav:"service_category"`
	ServiceType            string `dynamodbav:"service_type,omitempty"`
	EstimatedBudget        string `dynamodbav:"estimated_budget,omitempty"`
	ProjectDescription     string `dynamodbav:"project_description,omitempty"`
	Timeline               string `dynamodbav:"timeline,omitempty"`
	AdditionalRequirements string `dynamodbav:"additional_requirements,omitempty"`
	Amount                 string `dynamodbav:"amount"`
	Status                 string `dynamodbav:"status"`
	ProjectID              string `dynamodbav:"project_id,omitempty"`
	CreatedAt              string `dynamodbav:"created_at"`
	UpdatedAt              string `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: reference_number-index (PK: reference_number)
//   - GSI: user_id-index (PK: user_id)

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	it := toQuoteItem(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, storageErr(err)
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, storageErr(err)
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) GetByReferenceNumber(ctx context.Context, ref string) (entities.Quote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesReferenceIndex),
		KeyConditionExpression: aws.String("reference_number = :ref"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ref": &types.AttributeValueMemberS{Value: ref},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Quote{}, storageErr(err)
	}
	if len(out.Items) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Quote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, storageErr(err)
	}
	return unmarshalQuotes(out.Items)
}

func (r *QuoteDynamoRepository) ListAll(ctx context.Context, status entities.QuoteStatus) ([]entities.Quote, error) {
	in := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}
	if status != "" {
		in.FilterExpression = aws.String("#status = :status")
		in.ExpressionAttributeNames = map[string]string{"#status": "status"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		}
	}

	quotes := make([]entities.Quote, 0)
	for {
		out, err := r.ddb.Scan(ctx, in)
		if err != nil {
			return nil, storageErr(err)
		}
		page, err := unmarshalQuotes(out.Items)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, page...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return quotes, nil
}

func (r *QuoteDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *QuoteDynamoRepository) MarkConverted(ctx context.Context, id string, projectID string) (entities.Quote, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #project_id = :project_id, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(entities.QuoteStatusConverted)},
			":project_id": &types.AttributeValueMemberS{Value: projectID},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#project_id": "project_id",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *QuoteDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Quote, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, storageErr(err)
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}
	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func unmarshalQuotes(raw []map[string]types.AttributeValue) ([]entities.Quote, error) {
	quotes := make([]entities.Quote, 0, len(raw))
	for _, item := range raw {
		var it quoteItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		quotes = append(quotes, fromQuoteItem(it))
	}
	return quotes, nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		ID:                     q.ID,
		ReferenceNumber:        q.ReferenceNumber,
		UserID:                 q.UserID,
		ContactName:            q.ContactName,
		ContactEmail:           q.ContactEmail,
		Phone:                  q.Phone,
		Company:                q.Company,
		ServiceCategory:        q.ServiceCategory,
		ServiceType:            q.ServiceType,
		EstimatedBudget:        q.EstimatedBudget,
		ProjectDescription:     q.ProjectDescription,
		Timeline:               q.Timeline,
		AdditionalRequirements: q.AdditionalRequirements,
		Amount:                 floatToString(q.Amount),
		Status:                 string(q.Status),
		ProjectID:              q.ProjectID,
		CreatedAt:              q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:              q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	return entities.Quote{
		ID:                     it.ID,
		ReferenceNumber:        it.ReferenceNumber,
		UserID:                 it.UserID,
		ContactName:            it.ContactName,
		ContactEmail:           it.ContactEmail,
		Phone:                  it.Phone,
		Company:                it.Company,
		ServiceCategory:        it.ServiceCategory,
		ServiceType:            it.ServiceType,
		EstimatedBudget:        it.EstimatedBudget,
		ProjectDescription:     it.ProjectDescription,
		Timeline:               it.Timeline,
		AdditionalRequirements: it.AdditionalRequirements,
		Amount:                 amount,
		Status:                 entities.QuoteStatus(it.Status),
		ProjectID:              it.ProjectID,
		CreatedAt:              createdAt,
		UpdatedAt:              updatedAt,
	}
}
