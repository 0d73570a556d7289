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
	defaultProjectsTableName = "projects"
	projectsQuoteIDIndex     = "quote_id-index"
	projectsClientIDIndex    = "client_id-index"
)

type projectItem struct {
	ID          string `dynamodbav:"id"`
	ProjectName string `dynamodbav:"project_name"`
	ClientID    string `dynamodbav:"client_id,omitempty"`
	ClientName  string `dynamodbav:"client_name,omitempty"`
	ClientEmail string `dynamodbav:"client_email,omitempty"`
	QuoteID     string `dynamodbav:"quote_id,omitempty"`
	Description string `dynamodbav:"description,omitempty"`
	StartDate   string `dynamodbav:"start_date,omitempty"`
	Deadline    string `dynamodbav:"deadline,omitempty"`
	TotalAmount string `dynamodbav:"total_amount"`
	Status      string `dynamodbav:"status"`
	Notes       string `dynamodbav:"notes,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// ProjectDynamoRepository persists Project entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quote_id-index (PK: quote_id)
//   - GSI: client_id-index (PK: client_id)

type ProjectDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb *dynamodb.Client) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
	}
}

func (r *ProjectDynamoRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	it := toProjectItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Project{}, err
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
		return entities.Project{}, storageErr(err)
	}
	return p, nil
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Project{}, storageErr(err)
	}
	if len(out.Item) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) GetByQuoteID(ctx context.Context, quoteID string) (entities.Project, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(projectsQuoteIDIndex),
		KeyConditionExpression: aws.String("quote_id = :qid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": &types.AttributeValueMemberS{Value: quoteID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Project{}, storageErr(err)
	}
	if len(out.Items) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Project, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(projectsClientIDIndex),
		KeyConditionExpression: aws.String("client_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: clientID},
		},
	})
	if err != nil {
		return nil, storageErr(err)
	}
	return unmarshalProjects(out.Items)
}

func (r *ProjectDynamoRepository) ListAll(ctx context.Context) ([]entities.Project, error) {
	in := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}

	projects := make([]entities.Project, 0)
	for {
		out, err := r.ddb.Scan(ctx, in)
		if err != nil {
			return nil, storageErr(err)
		}
		page, err := unmarshalProjects(out.Items)
		if err != nil {
			return nil, err
		}
		projects = append(projects, page...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return projects, nil
}

func (r *ProjectDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.ProjectStatus) (entities.Project, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Project{}, nil
		}
		return entities.Project{}, storageErr(err)
	}
	if len(out.Attributes) == 0 {
		return entities.Project{}, nil
	}
	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

// Delete hard-deletes the document. Quotes referencing it are left
// untouched; readers handle the dangling reference.
func (r *ProjectDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return storageErr(err)
	}
	return nil
}

func unmarshalProjects(raw []map[string]types.AttributeValue) ([]entities.Project, error) {
	projects := make([]entities.Project, 0, len(raw))
	for _, item := range raw {
		var it projectItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		projects = append(projects, fromProjectItem(it))
	}
	return projects, nil
}

func toProjectItem(p entities.Project) projectItem {
	return projectItem{
		ID:          p.ID,
		ProjectName: p.ProjectName,
		ClientID:    p.ClientID,
		ClientName:  p.ClientName,
		ClientEmail: p.ClientEmail,
		QuoteID:     p.QuoteID,
		Description: p.Description,
		StartDate:   p.StartDate,
		Deadline:    p.Deadline,
		TotalAmount: floatToString(p.TotalAmount),
		Status:      string(p.Status),
		Notes:       p.Notes,
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromProjectItem(it projectItem) entities.Project {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	amount, _ := strconv.ParseFloat(it.TotalAmount, 64)
	return entities.Project{
		ID:          it.ID,
		ProjectName: it.ProjectName,
		ClientID:    it.ClientID,
		ClientName:  it.ClientName,
		ClientEmail: it.ClientEmail,
		QuoteID:     it.QuoteID,
		Description: it.Description,
		StartDate:   it.StartDate,
		Deadline:    it.Deadline,
		TotalAmount: amount,
		Status:      entities.ProjectStatus(it.Status),
		Notes:       it.Notes,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}
